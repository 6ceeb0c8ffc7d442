package file

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const maxDownloadBytes = 50 << 20

// Reader reads media files from the local filesystem.
type Reader struct{}

// ReadFile returns the content at path. Filesystem errors are returned as they are, so callers can
// match them with errors.Is(err, fs.ErrNotExist).
func (Reader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Download returns the body of a GET on url. The client is expected to carry its own timeout.
func Download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code on download: %d", res.StatusCode)
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, maxDownloadBytes))
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	return buf, nil
}

// Save writes data to dir/name, creating dir when needed, and returns the written path. A partially
// written file is removed.
func Save(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating directory: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		remove(path)
		return "", fmt.Errorf("error writing file: %w", err)
	}
	if err := f.Close(); err != nil {
		remove(path)
		return "", fmt.Errorf("error closing file: %w", err)
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("saved file")

	return path, nil
}

func remove(path string) {
	if err := os.Remove(path); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up partial file")
	}
}

// RandomName returns a uuid based file name with the given extension, e.g. ".jpg".
func RandomName(ext string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("error generating file name: %w", err)
	}
	return id.String() + ext, nil
}

package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"telegramapis/internal/adapters/file"
)

type MediaType string

const (
	MediaPhoto    MediaType = "photo"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

type inputKind int

const (
	inputURL inputKind = iota + 1
	inputFileID
	inputPath
	inputBlob
)

// InputFile is a media reference: a remote URL, a file id already stored by Telegram, a local path, or
// in-memory content. Remote references are sent as parameters, local ones are uploaded.
type InputFile struct {
	kind   inputKind
	ref    string
	name   string
	data   []byte
	stream *stream
}

func FileURL(u string) InputFile {
	return InputFile{kind: inputURL, ref: u}
}

func FileID(id string) InputFile {
	return InputFile{kind: inputFileID, ref: id}
}

func FilePath(path string) InputFile {
	return InputFile{kind: inputPath, ref: path}
}

// FileBytes uploads data. name may be empty; a random one is generated then.
func FileBytes(name string, data []byte) InputFile {
	return InputFile{kind: inputBlob, name: name, data: data}
}

// FileStream uploads everything r yields. r is drained on the first upload and closed when it is an
// io.Closer; copies of the returned InputFile, e.g. in a retried call, send the same content again.
func FileStream(name string, r io.Reader) InputFile {
	return InputFile{kind: inputBlob, name: name, stream: &stream{r: r}}
}

// stream reads its reader exactly once and keeps the result.
type stream struct {
	once sync.Once
	r    io.Reader
	data []byte
	err  error
}

func (s *stream) bytes() ([]byte, error) {
	s.once.Do(func() {
		s.data, s.err = readAllAndClose(s.r)
		s.r = nil
	})
	return s.data, s.err
}

// ParseInput treats http:// and https:// URLs as remote references and anything else, including names
// like "http_cat.jpg", as a local path.
func ParseInput(s string) InputFile {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return FileURL(s)
	}
	return FilePath(s)
}

// IsUpload reports whether the reference has to be sent as a multipart file part.
func (f InputFile) IsUpload() bool {
	return f.kind == inputPath || f.kind == inputBlob
}

func (f InputFile) IsZero() bool {
	return f.kind == 0
}

func (f InputFile) String() string {
	switch f.kind {
	case inputURL, inputFileID, inputPath:
		return f.ref
	case inputBlob:
		return "blob:" + f.name
	default:
		return ""
	}
}

// upload is a local file loaded into memory, ready to be written as a form part.
type upload struct {
	filename    string
	contentType string
	data        []byte
}

func (c *Client) loadUpload(ctx context.Context, in InputFile) (*upload, error) {
	switch in.kind {
	case inputPath:
		data, err := c.files.ReadFile(ctx, in.ref)
		if err != nil {
			return nil, err
		}
		name := filepath.Base(in.ref)
		return &upload{filename: name, contentType: c.mime.TypeByFilename(name), data: data}, nil
	case inputBlob:
		data := in.data
		if in.stream != nil {
			var err error
			data, err = in.stream.bytes()
			if err != nil {
				return nil, fmt.Errorf("error reading upload: %w", err)
			}
		}
		return c.blobUpload(in.name, data)
	default:
		return nil, fmt.Errorf("%w: %s is not an upload", ErrEmptyInput, in.String())
	}
}

func (c *Client) blobUpload(name string, data []byte) (*upload, error) {
	if name != "" {
		return &upload{filename: name, contentType: c.mime.TypeByFilename(name), data: data}, nil
	}

	contentType := http.DetectContentType(data)
	ext := ""
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	name, err := file.RandomName(ext)
	if err != nil {
		return nil, err
	}
	return &upload{filename: name, contentType: contentType, data: data}, nil
}

func readAllAndClose(r io.Reader) ([]byte, error) {
	if rc, ok := r.(io.Closer); ok {
		defer rc.Close()
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// namedUpload is an extra file part sent next to the main media, e.g. a document thumbnail.
type namedUpload struct {
	field string
	input InputFile
}

// resolveMedia decides how a single media reference travels: remote references become URL-encoded
// parameters, local files and blobs become a multipart form.
func (c *Client) resolveMedia(
	ctx context.Context, kind MediaType, in InputFile, chatID ChatID, opts any, extra ...namedUpload,
) (*request, error) {
	if in.IsZero() {
		return nil, ErrEmptyInput
	}

	fields, err := encodeOptions(opts)
	if err != nil {
		return nil, err
	}

	if !in.IsUpload() {
		for _, e := range extra {
			if e.input.IsZero() {
				continue
			}
			c.logger.Debug().Str("field", e.field).Str("kind", string(kind)).
				Msg("dropping upload, remote media cannot carry file parts")
		}
		q := append([]field{{string(kind), in.ref}, {"chat_id", chatID.String()}}, fields...)
		return queryRequest(q), nil
	}

	u, err := c.loadUpload(ctx, in)
	if err != nil {
		return nil, err
	}

	f := newForm()
	if err := f.field("chat_id", chatID.String()); err != nil {
		return nil, err
	}
	if err := f.file(string(kind), u); err != nil {
		return nil, err
	}
	if err := f.fields(fields); err != nil {
		return nil, err
	}
	for _, e := range extra {
		if e.input.IsZero() {
			continue
		}
		eu, err := c.loadUpload(ctx, e.input)
		if err != nil {
			return nil, err
		}
		if err := f.file(e.field, eu); err != nil {
			return nil, err
		}
	}

	return f.request()
}

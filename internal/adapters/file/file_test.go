package file

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	tests := []struct {
		name       string
		inputBytes []byte
		status     int
		wantErr    bool
	}{
		{
			name:       "success",
			inputBytes: []byte("test\n"),
			status:     http.StatusOK,
			wantErr:    false,
		},
		{
			name:       "not found",
			inputBytes: []byte("not found"),
			status:     http.StatusNotFound,
			wantErr:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, err := w.Write(tc.inputBytes)
				assert.NoError(t, err)
			}))
			defer srv.Close()

			res, err := Download(t.Context(), srv.Client(), srv.URL)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.inputBytes, res)
			}
		})
	}
}

func TestSave(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		file     string
		wantSize int64
	}{
		{
			name:     "success",
			content:  []byte("test\n"),
			file:     "AgADBAADr6cxGw.txt",
			wantSize: 5,
		},
		{
			name:     "empty file",
			content:  []byte(""),
			file:     "empty.dat",
			wantSize: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested")

			path, err := Save(dir, tc.file, tc.content)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tc.file), path)

			stat, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSize, stat.Size())
		})
	}
}

func TestReader_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.jpg")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8}, 0o600))

	data, err := Reader{}.ReadFile(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8}, data)

	_, err = Reader{}.ReadFile(t.Context(), filepath.Join(dir, "missing.jpg"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDetector_TypeByFilename(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "jpeg", file: "/tmp/img.jpg", want: "image/jpeg"},
		{name: "upper case", file: "IMG.JPEG", want: "image/jpeg"},
		{name: "video", file: "clip.mp4", want: "video/mp4"},
		{name: "pdf", file: "report.pdf", want: "application/pdf"},
		{name: "no extension", file: "README", want: "application/octet-stream"},
		{name: "unknown", file: "blob.zzzunknown", want: "application/octet-stream"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Detector{}.TypeByFilename(tc.file))
		})
	}
}

func TestRandomName(t *testing.T) {
	a, err := RandomName(".png")
	require.NoError(t, err)
	b, err := RandomName(".png")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.Len(t, a, 36+len(".png"))
}

package telegram

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "123456:TEST-token"

type formPart struct {
	name        string
	filename    string
	contentType string
	data        []byte
}

// capturedRequest is what the fake Bot API saw of one call.
type capturedRequest struct {
	method        string
	path          string
	rawQuery      string
	contentType   string
	contentLength int64
	body          []byte
	form          url.Values
	parts         []formPart
}

func (r capturedRequest) part(name string) (formPart, bool) {
	for _, p := range r.parts {
		if p.name == name {
			return p, true
		}
	}
	return formPart{}, false
}

func (r capturedRequest) fileParts() []formPart {
	var files []formPart
	for _, p := range r.parts {
		if p.filename != "" {
			files = append(files, p)
		}
	}
	return files
}

type fakeAPI struct {
	t        *testing.T
	srv      *httptest.Server
	status   int
	response string
	// byMethod overrides response for single Bot API methods.
	byMethod map[string]string

	mu       sync.Mutex
	requests []capturedRequest
}

func newFakeAPI(t *testing.T, status int, response string) *fakeAPI {
	t.Helper()
	return newFakeAPIByMethod(t, status, response, nil)
}

func newFakeAPIByMethod(t *testing.T, status int, response string, byMethod map[string]string) *fakeAPI {
	t.Helper()

	f := &fakeAPI{t: t, status: status, response: response, byMethod: byMethod}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	require.NoError(f.t, err)

	captured := capturedRequest{
		method:        r.Method,
		path:          r.URL.Path,
		rawQuery:      r.URL.RawQuery,
		contentType:   r.Header.Get("Content-Type"),
		contentLength: r.ContentLength,
		body:          body,
	}

	captured.form, captured.parts = parseBody(f.t, captured.contentType, body)

	f.mu.Lock()
	f.requests = append(f.requests, captured)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	response := f.response
	if m, ok := f.byMethod[path.Base(r.URL.Path)]; ok {
		response = m
	}
	_, _ = w.Write([]byte(response))
}

// parseBody decodes a URL-encoded or multipart body. Other bodies yield nothing.
func parseBody(t *testing.T, contentType string, body []byte) (url.Values, []formPart) {
	t.Helper()

	if contentType == "" {
		return nil, nil
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	switch mediaType {
	case contentTypeForm:
		form, err := url.ParseQuery(string(body))
		require.NoError(t, err)
		return form, nil
	case "multipart/form-data":
		var parts []formPart
		mr := multipart.NewReader(bytes.NewReader(body), params["boundary"])
		for {
			p, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			data, err := io.ReadAll(p)
			require.NoError(t, err)
			parts = append(parts, formPart{
				name:        p.FormName(),
				filename:    p.FileName(),
				contentType: p.Header.Get("Content-Type"),
				data:        data,
			})
		}
		return nil, parts
	default:
		return nil, nil
	}
}

// decode exposes a built request the way the server would see it.
func decode(t *testing.T, r *request) capturedRequest {
	t.Helper()

	c := capturedRequest{contentType: r.contentType, contentLength: int64(len(r.body)), body: r.body}
	c.form, c.parts = parseBody(t, r.contentType, r.body)
	return c
}

func (f *fakeAPI) only() capturedRequest {
	f.t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.Len(f.t, f.requests, 1)
	return f.requests[0]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) client(opts ...Option) *Client {
	f.t.Helper()

	c, err := New(testToken, append([]Option{WithBaseURL(f.srv.URL), WithLogger(zerolog.Nop())}, opts...)...)
	require.NoError(f.t, err)
	return c
}

type mockFileReader struct {
	mock.Mock
}

func (m *mockFileReader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

const (
	okMessage = `{"ok":true,"result":{"message_id":7,"date":1700000000,"chat":{"id":123,"type":"private"},"text":"hello"}}`
	okTrue    = `{"ok":true,"result":true}`
)

package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
)

type encoding int

const (
	encodingNone encoding = iota
	encodingQuery
	encodingMultipart
	encodingJSON
)

func (e encoding) String() string {
	switch e {
	case encodingQuery:
		return "query"
	case encodingMultipart:
		return "multipart"
	case encodingJSON:
		return "json"
	default:
		return "none"
	}
}

// request is a fully built payload, ready for the dispatcher. Exactly one encoding is set.
type request struct {
	encoding    encoding
	body        []byte
	contentType string
}

func queryRequest(fields []field) *request {
	return &request{
		encoding:    encodingQuery,
		body:        []byte(encodeFields(fields)),
		contentType: contentTypeForm,
	}
}

func jsonRequest(v any) (*request, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding request: %w", err)
	}
	return &request{
		encoding:    encodingJSON,
		body:        body,
		contentType: contentTypeJSON,
	}, nil
}

func emptyRequest() *request {
	return &request{encoding: encodingNone}
}

// form accumulates a multipart/form-data body. Parts are written in call order.
type form struct {
	buf bytes.Buffer
	w   *multipart.Writer
}

func newForm() *form {
	f := &form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *form) field(key, value string) error {
	if err := f.w.WriteField(key, value); err != nil {
		return fmt.Errorf("error writing form field %s: %w", key, err)
	}
	return nil
}

func (f *form) fields(fields []field) error {
	for _, fl := range fields {
		if err := f.field(fl.key, fl.value); err != nil {
			return err
		}
	}
	return nil
}

func (f *form) file(name string, u *upload) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     name,
		"filename": u.filename,
	}))
	h.Set("Content-Type", u.contentType)

	part, err := f.w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("error creating form file %s: %w", name, err)
	}
	if _, err := part.Write(u.data); err != nil {
		return fmt.Errorf("error writing form file %s: %w", name, err)
	}
	return nil
}

func (f *form) request() (*request, error) {
	if err := f.w.Close(); err != nil {
		return nil, fmt.Errorf("error closing form: %w", err)
	}
	return &request{
		encoding:    encodingMultipart,
		body:        f.buf.Bytes(),
		contentType: f.w.FormDataContentType(),
	}, nil
}

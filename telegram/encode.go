package telegram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// field is one serialized parameter, kept in declaration order.
type field struct {
	key   string
	value string
}

// encodeOptions flattens an options struct into fields. Unset (nil) fields are absent; false, 0 and ""
// are sent. Strings are passed through, everything else is sent as JSON text.
func encodeOptions(opts any) ([]field, error) {
	if opts == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(opts); err != nil {
		return nil, fmt.Errorf("error encoding options: %w", err)
	}

	dec := json.NewDecoder(&buf)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error reading options: %w", err)
	}
	if tok == nil {
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("options must encode to a JSON object")
	}

	var fields []field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error reading options: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("error reading option %s: %w", key, err)
		}

		value := string(raw)
		if len(raw) > 0 && raw[0] == '"' {
			if err := json.Unmarshal(raw, &value); err != nil {
				return nil, fmt.Errorf("error reading option %s: %w", key, err)
			}
		}
		fields = append(fields, field{key: key, value: value})
	}

	return fields, nil
}

// optionsFields returns base followed by the serialized options, in that order.
func optionsFields(opts any, base ...field) ([]field, error) {
	fields, err := encodeOptions(opts)
	if err != nil {
		return nil, err
	}
	return append(base, fields...), nil
}

// encodeFields renders fields as application/x-www-form-urlencoded text, keeping their order.
func encodeFields(fields []field) string {
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(f.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(f.value))
	}
	return sb.String()
}

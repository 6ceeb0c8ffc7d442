package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChatID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ChatID
	}{
		{name: "user", input: "123", want: ChatIDFromInt(123)},
		{name: "supergroup", input: "-1001234567890", want: ChatIDFromInt(-1001234567890)},
		{name: "channel handle", input: "@mychannel", want: ChatIDFromUsername("@mychannel")},
		{name: "padded", input: " 42 ", want: ChatIDFromInt(42)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseChatID(tc.input)
			assert.Equal(t, tc.want, got)
			assert.False(t, got.IsZero())
		})
	}

	assert.True(t, ChatID{}.IsZero())
	assert.Equal(t, "-1001234567890", ChatIDFromInt(-1001234567890).String())
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantUpload bool
	}{
		{name: "https url", input: "https://example.com/cat.jpg", wantUpload: false},
		{name: "http url", input: "http://example.com/cat.jpg", wantUpload: false},
		{name: "absolute path", input: "/tmp/img.jpg", wantUpload: true},
		{name: "relative path", input: "img.jpg", wantUpload: true},
		{name: "upper case scheme", input: "HTTPS://example.com/cat.jpg", wantUpload: false},
		{name: "scheme lookalike", input: "ftp://example.com/cat.jpg", wantUpload: true},
		{name: "name starting with http", input: "http_cat.jpg", wantUpload: true},
		{name: "directory starting with http", input: "httpd/photo.jpg", wantUpload: true},
		{name: "name starting with https", input: "https-backup.png", wantUpload: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := ParseInput(tc.input)
			assert.Equal(t, tc.wantUpload, in.IsUpload())
			assert.Equal(t, tc.input, in.String())
		})
	}
}

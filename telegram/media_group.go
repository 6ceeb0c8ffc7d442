package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot/models"
)

// InputMedia is one item of an album. Its kind is fixed by the constructor.
type InputMedia struct {
	kind MediaType

	Media           InputFile
	Caption         *string           `validate:"omitempty,max=1024"`
	ParseMode       *models.ParseMode `validate:"omitempty,oneof=Markdown MarkdownV2 HTML"`
	CaptionEntities []models.MessageEntity
	HasSpoiler      *bool

	// Video only, ignored for photos.
	Width             *int `validate:"omitempty,min=0"`
	Height            *int `validate:"omitempty,min=0"`
	Duration          *int `validate:"omitempty,min=0"`
	SupportsStreaming *bool
}

func NewInputMediaPhoto(media InputFile) InputMedia {
	return InputMedia{kind: MediaPhoto, Media: media}
}

func NewInputMediaVideo(media InputFile) InputMedia {
	return InputMedia{kind: MediaVideo, Media: media}
}

func (m InputMedia) Kind() MediaType {
	return m.kind
}

// inputMediaWire is the manifest entry actually sent. media holds either the remote reference or an
// attach:// pointer to a file part.
type inputMediaWire struct {
	Type              MediaType              `json:"type"`
	Media             string                 `json:"media"`
	Caption           *string                `json:"caption,omitempty"`
	ParseMode         *models.ParseMode      `json:"parse_mode,omitempty"`
	CaptionEntities   []models.MessageEntity `json:"caption_entities,omitempty"`
	HasSpoiler        *bool                  `json:"has_spoiler,omitempty"`
	Width             *int                   `json:"width,omitempty"`
	Height            *int                   `json:"height,omitempty"`
	Duration          *int                   `json:"duration,omitempty"`
	SupportsStreaming *bool                  `json:"supports_streaming,omitempty"`
}

func (m InputMedia) wire(media string) inputMediaWire {
	w := inputMediaWire{
		Type:            m.kind,
		Media:           media,
		Caption:         m.Caption,
		ParseMode:       m.ParseMode,
		CaptionEntities: m.CaptionEntities,
		HasSpoiler:      m.HasSpoiler,
	}
	if m.kind == MediaVideo {
		w.Width = m.Width
		w.Height = m.Height
		w.Duration = m.Duration
		w.SupportsStreaming = m.SupportsStreaming
	}
	return w
}

// assembleMediaGroup builds the multipart body of sendMediaGroup. Uploaded items are attached under their
// index in items, remote items keep their reference. items is not modified.
func (c *Client) assembleMediaGroup(
	ctx context.Context, chatID ChatID, items []InputMedia, opts *SendMediaGroupOptions,
) (*request, error) {
	if len(items) == 0 {
		return nil, ErrEmptyMediaGroup
	}

	fields, err := encodeOptions(opts)
	if err != nil {
		return nil, err
	}

	f := newForm()
	if err := f.field("chat_id", chatID.String()); err != nil {
		return nil, err
	}

	manifest := make([]inputMediaWire, 0, len(items))
	for i, item := range items {
		if item.kind != MediaPhoto && item.kind != MediaVideo {
			return nil, fmt.Errorf("%w: item %d has kind %q", ErrInvalidMediaKind, i, item.kind)
		}
		if item.Media.IsZero() {
			return nil, fmt.Errorf("%w: item %d", ErrEmptyInput, i)
		}

		if !item.Media.IsUpload() {
			manifest = append(manifest, item.wire(item.Media.ref))
			continue
		}

		u, err := c.loadUpload(ctx, item.Media)
		if err != nil {
			return nil, err
		}
		name := strconv.Itoa(i)
		if err := f.file(name, u); err != nil {
			return nil, err
		}
		manifest = append(manifest, item.wire("attach://"+name))
	}

	media, err := json.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("error encoding media group: %w", err)
	}
	if err := f.field("media", string(media)); err != nil {
		return nil, err
	}
	if err := f.fields(fields); err != nil {
		return nil, err
	}

	return f.request()
}

package telegram

import (
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"
)

// ChatID identifies a destination chat, either by numeric id or by @username.
type ChatID struct {
	id       int64
	username string
}

func ChatIDFromInt(id int64) ChatID {
	return ChatID{id: id}
}

func ChatIDFromUsername(username string) ChatID {
	return ChatID{username: username}
}

// ParseChatID reads a numeric id when s is an integer and a username otherwise.
func ParseChatID(s string) ChatID {
	s = strings.TrimSpace(s)
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ChatIDFromInt(id)
	}
	return ChatIDFromUsername(s)
}

func (c ChatID) String() string {
	if c.username != "" {
		return c.username
	}
	return strconv.FormatInt(c.id, 10)
}

func (c ChatID) IsZero() bool {
	return c.id == 0 && c.username == ""
}

// Ptr returns a pointer to v, for filling optional parameters.
func Ptr[T any](v T) *T {
	return &v
}

// SendBasicOptions are shared by every send method. Nil fields are not sent.
type SendBasicOptions struct {
	MessageThreadID          *int                    `json:"message_thread_id,omitempty"`
	DisableNotification      *bool                   `json:"disable_notification,omitempty"`
	ReplyToMessageID         *int                    `json:"reply_to_message_id,omitempty"`
	ReplyParameters          *models.ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup              models.ReplyMarkup      `json:"reply_markup,omitempty"`
	ProtectContent           *bool                   `json:"protect_content,omitempty"`
	AllowSendingWithoutReply *bool                   `json:"allow_sending_without_reply,omitempty"`
}

type SendMessageOptions struct {
	SendBasicOptions
	ParseMode             *models.ParseMode      `json:"parse_mode,omitempty" validate:"omitempty,oneof=Markdown MarkdownV2 HTML"`
	Entities              []models.MessageEntity `json:"entities,omitempty"`
	DisableWebPagePreview *bool                  `json:"disable_web_page_preview,omitempty"`
}

type SendPhotoOptions struct {
	SendBasicOptions
	Caption         *string                `json:"caption,omitempty" validate:"omitempty,max=1024"`
	ParseMode       *models.ParseMode      `json:"parse_mode,omitempty" validate:"omitempty,oneof=Markdown MarkdownV2 HTML"`
	CaptionEntities []models.MessageEntity `json:"caption_entities,omitempty"`
	HasSpoiler      *bool                  `json:"has_spoiler,omitempty"`
}

type SendVideoOptions struct {
	SendBasicOptions
	Caption           *string                `json:"caption,omitempty" validate:"omitempty,max=1024"`
	ParseMode         *models.ParseMode      `json:"parse_mode,omitempty" validate:"omitempty,oneof=Markdown MarkdownV2 HTML"`
	CaptionEntities   []models.MessageEntity `json:"caption_entities,omitempty"`
	HasSpoiler        *bool                  `json:"has_spoiler,omitempty"`
	Duration          *int                   `json:"duration,omitempty" validate:"omitempty,min=0"`
	Width             *int                   `json:"width,omitempty" validate:"omitempty,min=0"`
	Height            *int                   `json:"height,omitempty" validate:"omitempty,min=0"`
	SupportsStreaming *bool                  `json:"supports_streaming,omitempty"`
}

type SendDocumentOptions struct {
	SendBasicOptions
	Caption                     *string                `json:"caption,omitempty" validate:"omitempty,max=1024"`
	ParseMode                   *models.ParseMode      `json:"parse_mode,omitempty" validate:"omitempty,oneof=Markdown MarkdownV2 HTML"`
	CaptionEntities             []models.MessageEntity `json:"caption_entities,omitempty"`
	DisableContentTypeDetection *bool                  `json:"disable_content_type_detection,omitempty"`

	// Thumbnail must be an upload; Telegram ignores thumbnails unless the document itself is uploaded.
	Thumbnail *InputFile `json:"-"`
}

type SendMediaGroupOptions struct {
	MessageThreadID     *int  `json:"message_thread_id,omitempty"`
	DisableNotification *bool `json:"disable_notification,omitempty"`
	ReplyToMessageID    *int  `json:"reply_to_message_id,omitempty"`
	ProtectContent      *bool `json:"protect_content,omitempty"`
}

type EditMessageTextOptions struct {
	MessageThreadID       *int                   `json:"message_thread_id,omitempty"`
	ParseMode             *models.ParseMode      `json:"parse_mode,omitempty" validate:"omitempty,oneof=Markdown MarkdownV2 HTML"`
	Entities              []models.MessageEntity `json:"entities,omitempty"`
	DisableWebPagePreview *bool                  `json:"disable_web_page_preview,omitempty"`
	ReplyMarkup           models.ReplyMarkup     `json:"reply_markup,omitempty"`
}

type SetWebhookOptions struct {
	SecretToken        *string  `json:"secret_token,omitempty" validate:"omitempty,max=256"`
	MaxConnections     *int     `json:"max_connections,omitempty" validate:"omitempty,min=1,max=100"`
	AllowedUpdates     []string `json:"allowed_updates,omitempty"`
	DropPendingUpdates *bool    `json:"drop_pending_updates,omitempty"`
}

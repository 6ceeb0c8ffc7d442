package telegram

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"telegramapis/internal/adapters/file"

	"github.com/go-telegram/bot/models"
)

func (c *Client) validate(vs ...any) error {
	for _, v := range vs {
		if err := c.validator.Validate(v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) SendMessage(ctx context.Context, chatID ChatID, text string, opts *SendMessageOptions) (*models.Message, error) {
	if err := c.validate(opts); err != nil {
		return nil, err
	}

	q, err := optionsFields(opts, field{"chat_id", chatID.String()}, field{"text", text})
	if err != nil {
		return nil, err
	}

	res, err := call[models.Message](ctx, c, "sendMessage", queryRequest(q))
	if err != nil {
		return nil, err
	}
	return &res.Result, nil
}

// SendPhoto sends a photo by URL or file id, or uploads it when photo is a local file or a blob.
func (c *Client) SendPhoto(ctx context.Context, chatID ChatID, photo InputFile, opts *SendPhotoOptions) (*models.Message, error) {
	return c.sendMedia(ctx, "sendPhoto", MediaPhoto, chatID, photo, opts)
}

func (c *Client) SendVideo(ctx context.Context, chatID ChatID, video InputFile, opts *SendVideoOptions) (*models.Message, error) {
	return c.sendMedia(ctx, "sendVideo", MediaVideo, chatID, video, opts)
}

// SendDocument sends a document. A thumbnail in opts is only sent along an uploaded document.
func (c *Client) SendDocument(
	ctx context.Context, chatID ChatID, document InputFile, opts *SendDocumentOptions,
) (*models.Message, error) {
	var extra []namedUpload
	if opts != nil && opts.Thumbnail != nil {
		extra = append(extra, namedUpload{field: "thumbnail", input: *opts.Thumbnail})
	}
	return c.sendMedia(ctx, "sendDocument", MediaDocument, chatID, document, opts, extra...)
}

func (c *Client) sendMedia(
	ctx context.Context, method string, kind MediaType, chatID ChatID, in InputFile, opts any, extra ...namedUpload,
) (*models.Message, error) {
	if err := c.validate(opts); err != nil {
		return nil, err
	}

	r, err := c.resolveMedia(ctx, kind, in, chatID, opts, extra...)
	if err != nil {
		return nil, err
	}

	res, err := call[models.Message](ctx, c, method, r)
	if err != nil {
		return nil, err
	}
	return &res.Result, nil
}

// SendMediaGroup sends photos and videos as one album. Messages are returned in the order of media.
func (c *Client) SendMediaGroup(
	ctx context.Context, chatID ChatID, media []InputMedia, opts *SendMediaGroupOptions,
) ([]models.Message, error) {
	if err := c.validate(opts); err != nil {
		return nil, err
	}
	for _, m := range media {
		if err := c.validate(m); err != nil {
			return nil, err
		}
	}

	r, err := c.assembleMediaGroup(ctx, chatID, media, opts)
	if err != nil {
		return nil, err
	}

	res, err := call[[]models.Message](ctx, c, "sendMediaGroup", r)
	if err != nil {
		return nil, err
	}
	return res.Result, nil
}

// SetWebhook registers webhookURL for updates. The response description tells whether it was already set.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string, opts *SetWebhookOptions) (*Response[bool], error) {
	if err := c.validate(opts); err != nil {
		return nil, err
	}

	q, err := optionsFields(opts, field{"url", webhookURL})
	if err != nil {
		return nil, err
	}

	return call[bool](ctx, c, "setWebhook", queryRequest(q))
}

func (c *Client) DeleteWebhook(ctx context.Context) (*Response[bool], error) {
	return call[bool](ctx, c, "deleteWebhook", emptyRequest())
}

// SetMyCommands replaces the bot command list. Commands are sent with a leading slash; commands is not
// modified.
func (c *Client) SetMyCommands(ctx context.Context, commands []models.BotCommand) (bool, error) {
	for _, cmd := range commands {
		if err := c.validate(cmd); err != nil {
			return false, err
		}
	}

	r, err := jsonRequest(struct {
		Commands []models.BotCommand `json:"commands"`
	}{Commands: normalizeCommands(commands)})
	if err != nil {
		return false, err
	}

	res, err := call[bool](ctx, c, "setMyCommands", r)
	if err != nil {
		return false, err
	}
	return res.Result, nil
}

func normalizeCommands(commands []models.BotCommand) []models.BotCommand {
	out := make([]models.BotCommand, len(commands))
	for i, cmd := range commands {
		if !strings.HasPrefix(cmd.Command, "/") {
			cmd.Command = "/" + cmd.Command
		}
		out[i] = cmd
	}
	return out
}

func (c *Client) DeleteMessage(ctx context.Context, chatID ChatID, messageID int) (bool, error) {
	q := []field{{"chat_id", chatID.String()}, {"message_id", strconv.Itoa(messageID)}}

	res, err := call[bool](ctx, c, "deleteMessage", queryRequest(q))
	if err != nil {
		return false, err
	}
	return res.Result, nil
}

func (c *Client) EditMessageText(
	ctx context.Context, chatID ChatID, messageID int, text string, opts *EditMessageTextOptions,
) (*models.Message, error) {
	if err := c.validate(opts); err != nil {
		return nil, err
	}

	q, err := optionsFields(opts,
		field{"chat_id", chatID.String()},
		field{"message_id", strconv.Itoa(messageID)},
		field{"text", text},
	)
	if err != nil {
		return nil, err
	}

	res, err := call[models.Message](ctx, c, "editMessageText", queryRequest(q))
	if err != nil {
		return nil, err
	}
	return &res.Result, nil
}

// GetFile resolves a file id to a downloadable file path.
func (c *Client) GetFile(ctx context.Context, fileID string) (*models.File, error) {
	q := []field{{"file_id", fileID}}

	res, err := call[models.File](ctx, c, "getFile", queryRequest(q))
	if err != nil {
		return nil, err
	}
	return &res.Result, nil
}

// DownloadFile fetches the file behind fileID and stores it in dir as <file_unique_id>.<ext>. It returns
// the path of the written file.
func (c *Client) DownloadFile(ctx context.Context, fileID, dir string) (string, error) {
	f, err := c.GetFile(ctx, fileID)
	if err != nil {
		return "", err
	}

	ext := path.Ext(f.FilePath)
	if ext == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingExtension, f.FilePath)
	}

	data, err := file.Download(ctx, c.http, c.FileURL(f.FilePath))
	if err != nil {
		return "", redactToken(err, c.token)
	}

	saved, err := file.Save(dir, f.FileUniqueID+ext, data)
	if err != nil {
		return "", err
	}

	c.logger.Debug().Str("file_id", fileID).Str("path", saved).Int("bytes", len(data)).Msg("downloaded file")
	return saved, nil
}

package port

import (
	"context"

	"telegramapis/telegram"

	"github.com/go-telegram/bot/models"
)

type MessageSender interface {
	// SendMessage posts text to a chat and returns the sent message.
	SendMessage(ctx context.Context, chatID telegram.ChatID, text string,
		opts *telegram.SendMessageOptions) (*models.Message, error)
	// EditMessageText replaces the text of a message previously sent by the bot.
	EditMessageText(ctx context.Context, chatID telegram.ChatID, messageID int, text string,
		opts *telegram.EditMessageTextOptions) (*models.Message, error)
	// DeleteMessage removes a message from a chat.
	DeleteMessage(ctx context.Context, chatID telegram.ChatID, messageID int) (bool, error)
}

type MediaSender interface {
	// SendPhoto sends a photo given by URL, file id, local path or in-memory content.
	SendPhoto(ctx context.Context, chatID telegram.ChatID, photo telegram.InputFile,
		opts *telegram.SendPhotoOptions) (*models.Message, error)
	// SendVideo sends a video given by URL, file id, local path or in-memory content.
	SendVideo(ctx context.Context, chatID telegram.ChatID, video telegram.InputFile,
		opts *telegram.SendVideoOptions) (*models.Message, error)
	// SendDocument sends a general file, optionally with an uploaded thumbnail.
	SendDocument(ctx context.Context, chatID telegram.ChatID, document telegram.InputFile,
		opts *telegram.SendDocumentOptions) (*models.Message, error)
	// SendMediaGroup sends photos and videos as a single album and returns one message per item.
	SendMediaGroup(ctx context.Context, chatID telegram.ChatID, media []telegram.InputMedia,
		opts *telegram.SendMediaGroupOptions) ([]models.Message, error)
}

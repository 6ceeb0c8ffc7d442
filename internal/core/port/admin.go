package port

import (
	"context"

	"telegramapis/telegram"

	"github.com/go-telegram/bot/models"
)

type BotAdmin interface {
	// SetWebhook registers the URL Telegram delivers updates to.
	SetWebhook(ctx context.Context, url string, opts *telegram.SetWebhookOptions) (*telegram.Response[bool], error)
	// DeleteWebhook removes the webhook integration.
	DeleteWebhook(ctx context.Context) (*telegram.Response[bool], error)
	// SetMyCommands replaces the list of commands shown in the clients' menu.
	SetMyCommands(ctx context.Context, commands []models.BotCommand) (bool, error)
}

type FileDownloader interface {
	// DownloadFile stores the file behind fileID in dir and returns the written path.
	DownloadFile(ctx context.Context, fileID, dir string) (string, error)
}

// Bot is everything the command line needs from a Bot API client.
type Bot interface {
	MessageSender
	MediaSender
	BotAdmin
	FileDownloader
}

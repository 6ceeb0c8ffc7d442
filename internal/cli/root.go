// Package cli exposes every Bot API operation of the client as a sub-command.
package cli

import (
	"context"
	"errors"
	"fmt"

	"telegramapis/internal/config"
	"telegramapis/internal/core/port"
	"telegramapis/retry"
	"telegramapis/telegram"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var ErrNoChat = errors.New("no chat given, use --chat or set telegram.chat_id")

// BotFactory builds the Bot API client once the configuration is known.
type BotFactory func(cfg *config.Config) (port.Bot, error)

type app struct {
	newBot  BotFactory
	cfgPath string
	chat    string

	cfg *config.Config
	bot port.Bot
}

func NewRootCommand(newBot BotFactory) *cobra.Command {
	a := &app{newBot: newBot}

	root := &cobra.Command{
		Use:           "telegramapis",
		Short:         "Call the Telegram Bot API from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default ./config.toml)")
	root.PersistentFlags().StringVar(&a.chat, "chat", "", "target chat id or @channel, overrides telegram.chat_id")

	root.AddCommand(
		a.messageCmd(),
		a.editCmd(),
		a.deleteCmd(),
		a.photoCmd(),
		a.videoCmd(),
		a.documentCmd(),
		a.groupCmd(),
		a.webhookCmd(),
		a.commandsCmd(),
		a.downloadCmd(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.Level())

	b, err := a.newBot(cfg)
	if err != nil {
		return fmt.Errorf("error creating bot client: %w", err)
	}

	a.cfg = cfg
	a.bot = b
	log.Debug().Str("api_url", cfg.APIURL).Msg("bot client ready")
	return nil
}

func (a *app) chatID() (telegram.ChatID, error) {
	chat := a.chat
	if chat == "" {
		chat = a.cfg.ChatID
	}
	if chat == "" {
		return telegram.ChatID{}, ErrNoChat
	}
	return telegram.ParseChatID(chat), nil
}

// call runs op under the configured retry policy.
func call[T any](ctx context.Context, a *app, op func(context.Context) (T, error)) (T, error) {
	return retry.Do(ctx, a.cfg.Retry, op)
}

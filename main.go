package main

import (
	"context"
	"os"
	"os/signal"

	"telegramapis/internal/cli"
	"telegramapis/internal/config"
	"telegramapis/internal/core/port"
	"telegramapis/telegram"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cli.NewRootCommand(newBot).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		cancel()
		os.Exit(1)
	}
}

func newBot(cfg *config.Config) (port.Bot, error) {
	c, err := telegram.New(cfg.Token,
		telegram.WithBaseURL(cfg.APIURL),
		telegram.WithLogger(log.Logger),
		telegram.WithStructValidation(),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

package cli

import (
	"context"
	"fmt"
	"strconv"

	"telegramapis/telegram"

	"github.com/go-telegram/bot/models"
	"github.com/spf13/cobra"
)

func parseMode(s string) *models.ParseMode {
	if s == "" {
		return nil
	}
	return telegram.Ptr(models.ParseMode(s))
}

func (a *app) messageCmd() *cobra.Command {
	var (
		mode   string
		silent bool
	)

	cmd := &cobra.Command{
		Use:   "message <text>",
		Short: "Send a text message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, err := a.chatID()
			if err != nil {
				return err
			}

			opts := &telegram.SendMessageOptions{ParseMode: parseMode(mode)}
			if cmd.Flags().Changed("silent") {
				opts.DisableNotification = telegram.Ptr(silent)
			}

			msg, err := call(cmd.Context(), a, func(ctx context.Context) (*models.Message, error) {
				return a.bot.SendMessage(ctx, chat, args[0], opts)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sent message %d\n", msg.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "parse-mode", "", "Markdown, MarkdownV2 or HTML")
	cmd.Flags().BoolVar(&silent, "silent", false, "send without notification")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "edit <message-id> <text>",
		Short: "Replace the text of a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, err := a.chatID()
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid message id %q: %w", args[0], err)
			}

			opts := &telegram.EditMessageTextOptions{ParseMode: parseMode(mode)}
			msg, err := call(cmd.Context(), a, func(ctx context.Context) (*models.Message, error) {
				return a.bot.EditMessageText(ctx, chat, id, args[1], opts)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "edited message %d\n", msg.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "parse-mode", "", "Markdown, MarkdownV2 or HTML")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <message-id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, err := a.chatID()
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid message id %q: %w", args[0], err)
			}

			ok, err := call(cmd.Context(), a, func(ctx context.Context) (bool, error) {
				return a.bot.DeleteMessage(ctx, chat, id)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted: %t\n", ok)
			return nil
		},
	}
}

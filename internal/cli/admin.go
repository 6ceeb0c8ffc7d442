package cli

import (
	"context"
	"fmt"
	"os"

	"telegramapis/telegram"

	"github.com/go-telegram/bot/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage the update webhook",
	}

	var (
		secret string
		drop   bool
	)
	set := &cobra.Command{
		Use:   "set <url>",
		Short: "Register the webhook URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &telegram.SetWebhookOptions{}
			if secret != "" {
				opts.SecretToken = &secret
			}
			if drop {
				opts.DropPendingUpdates = telegram.Ptr(true)
			}

			res, err := call(cmd.Context(), a, func(ctx context.Context) (*telegram.Response[bool], error) {
				return a.bot.SetWebhook(ctx, args[0], opts)
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Description)
			return nil
		},
	}
	set.Flags().StringVar(&secret, "secret", "", "secret sent back in X-Telegram-Bot-Api-Secret-Token")
	set.Flags().BoolVar(&drop, "drop-pending", false, "drop updates queued while no webhook was set")

	del := &cobra.Command{
		Use:   "delete",
		Short: "Remove the webhook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := call(cmd.Context(), a, func(ctx context.Context) (*telegram.Response[bool], error) {
				return a.bot.DeleteWebhook(ctx)
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Description)
			return nil
		},
	}

	cmd.AddCommand(set, del)
	return cmd
}

type commandsFile struct {
	Commands []struct {
		Command     string `yaml:"command"`
		Description string `yaml:"description"`
	} `yaml:"commands"`
}

func readCommands(path string) ([]models.BotCommand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading commands file: %w", err)
	}

	var f commandsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing commands file: %w", err)
	}

	commands := make([]models.BotCommand, 0, len(f.Commands))
	for _, c := range f.Commands {
		commands = append(commands, models.BotCommand{Command: c.Command, Description: c.Description})
	}
	return commands, nil
}

func (a *app) commandsCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "Replace the bot command menu from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			commands, err := readCommands(path)
			if err != nil {
				return err
			}

			ok, err := call(cmd.Context(), a, func(ctx context.Context) (bool, error) {
				return a.bot.SetMyCommands(ctx, commands)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "set %d commands: %t\n", len(commands), ok)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "commands.yaml", "YAML file with a commands list")
	return cmd
}

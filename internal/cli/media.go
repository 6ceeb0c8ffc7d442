package cli

import (
	"context"
	"fmt"
	"strings"

	"telegramapis/internal/adapters/file"
	"telegramapis/telegram"

	"github.com/go-telegram/bot/models"
	"github.com/spf13/cobra"
)

func caption(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (a *app) sendMediaCmd(
	use, short string, send func(ctx context.Context, chat telegram.ChatID, in telegram.InputFile, caption *string) (*models.Message, error),
) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, err := a.chatID()
			if err != nil {
				return err
			}

			in := telegram.ParseInput(args[0])
			msg, err := call(cmd.Context(), a, func(ctx context.Context) (*models.Message, error) {
				return send(ctx, chat, in, caption(text))
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sent message %d\n", msg.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "caption", "", "media caption")
	return cmd
}

func (a *app) photoCmd() *cobra.Command {
	return a.sendMediaCmd("photo <path-or-url>", "Send a photo",
		func(ctx context.Context, chat telegram.ChatID, in telegram.InputFile, c *string) (*models.Message, error) {
			return a.bot.SendPhoto(ctx, chat, in, &telegram.SendPhotoOptions{Caption: c})
		})
}

func (a *app) videoCmd() *cobra.Command {
	return a.sendMediaCmd("video <path-or-url>", "Send a video",
		func(ctx context.Context, chat telegram.ChatID, in telegram.InputFile, c *string) (*models.Message, error) {
			return a.bot.SendVideo(ctx, chat, in, &telegram.SendVideoOptions{Caption: c})
		})
}

func (a *app) documentCmd() *cobra.Command {
	var thumbnail string

	cmd := a.sendMediaCmd("document <path-or-url>", "Send a file",
		func(ctx context.Context, chat telegram.ChatID, in telegram.InputFile, c *string) (*models.Message, error) {
			opts := &telegram.SendDocumentOptions{Caption: c}
			if thumbnail != "" {
				opts.Thumbnail = telegram.Ptr(telegram.FilePath(thumbnail))
			}
			return a.bot.SendDocument(ctx, chat, in, opts)
		})
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "local thumbnail image, only used for uploaded documents")
	return cmd
}

// mediaItem treats references with a video extension as videos and everything else as photos.
func mediaItem(ref string) telegram.InputMedia {
	in := telegram.ParseInput(ref)
	if strings.HasPrefix(file.Detector{}.TypeByFilename(ref), "video/") {
		return telegram.NewInputMediaVideo(in)
	}
	return telegram.NewInputMediaPhoto(in)
}

func (a *app) groupCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "group <path-or-url>...",
		Short: "Send photos and videos as an album",
		Args:  cobra.RangeArgs(1, 10),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, err := a.chatID()
			if err != nil {
				return err
			}

			items := make([]telegram.InputMedia, 0, len(args))
			for _, ref := range args {
				items = append(items, mediaItem(ref))
			}
			items[0].Caption = caption(text)

			msgs, err := call(cmd.Context(), a, func(ctx context.Context) ([]models.Message, error) {
				return a.bot.SendMediaGroup(ctx, chat, items, nil)
			})
			if err != nil {
				return err
			}

			for _, m := range msgs {
				fmt.Fprintf(cmd.OutOrStdout(), "sent message %d\n", m.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "caption", "", "album caption, shown on the first item")
	return cmd
}

func (a *app) downloadCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "download <file-id>",
		Short: "Download a file by its file id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := call(cmd.Context(), a, func(ctx context.Context) (string, error) {
				return a.bot.DownloadFile(ctx, args[0], dir)
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "target directory")
	return cmd
}

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/minutes-flow/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process recordings dropped into the input folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := deps.build()
			if err != nil {
				return err
			}
			cfg := application.Config
			log := application.Logger

			handler := func(ctx context.Context, path string) error {
				_, err := application.Processor.Process(ctx, path)
				return err
			}

			w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			log.Info(ctx, "========================================")
			log.Info(ctx, "Minutes inbox is ready!")
			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Transcription: %s (%s), summaries: %s (%s)",
				cfg.Transcription.Provider, cfg.Transcription.Model, cfg.Summarization.Provider, cfg.Summarization.Model)
			log.Info(ctx, "Press Ctrl+C to stop")
			log.Info(ctx, "========================================")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			log.Info(context.Background(), "Minutes inbox stopped")
			return nil
		},
	}
}

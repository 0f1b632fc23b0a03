package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndhoang91/vtt-transcripts/internal/watcher"
)

func newWatchCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild transcripts as new segment files are captured",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, log, b, err := buildPipeline(*configPath)
			if err != nil {
				return err
			}

			handler := func(ctx context.Context, videoID string) error {
				return b.Build(ctx, videoID).Err
			}

			settle := time.Duration(cfg.Watch.SettleDelayMS) * time.Millisecond
			w, err := watcher.New(cfg.Paths.Segments, cfg.Segments.Extension, handler, log, cfg.Performance.MaxConcurrent, settle)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && err != context.Canceled {
					errChan <- err
				}
			}()

			log.Info(ctx, "Watching %s for new segments. Press Ctrl+C to stop", cfg.Paths.Segments)

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return err
			}

			cancel()
			return nil
		},
	}
}

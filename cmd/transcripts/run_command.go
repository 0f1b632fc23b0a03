package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndhoang91/vtt-transcripts/internal/builder"
	"github.com/ndhoang91/vtt-transcripts/internal/config"
	"github.com/ndhoang91/vtt-transcripts/internal/logger"
	"github.com/ndhoang91/vtt-transcripts/internal/segments"
	"github.com/ndhoang91/vtt-transcripts/internal/vtt"
)

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run [videoID...]",
		Short: "Rebuild transcripts for all videos, or only the given IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, log, b, err := buildPipeline(*configPath)
			if err != nil {
				return err
			}

			log.Info(ctx, "Segments: %s", cfg.Paths.Segments)
			log.Info(ctx, "Transcripts: %s", cfg.Paths.Transcripts)

			results, err := runBatch(ctx, b, log, args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderResults(results))

			if !builder.AllSucceeded(results) {
				return fmt.Errorf("not every video succeeded")
			}
			return nil
		},
	}
}

func runBatch(ctx context.Context, b builder.Builder, log logger.Logger, videoIDs []string) ([]builder.Result, error) {
	if len(videoIDs) == 0 {
		return b.BuildAll(ctx)
	}

	results := make([]builder.Result, 0, len(videoIDs))
	for _, videoID := range videoIDs {
		result := b.Build(ctx, videoID)
		if result.Err != nil {
			log.Error(ctx, "Failed to process video ID %s: %v", videoID, result.Err)
		}
		results = append(results, result)
	}
	return results, nil
}

// buildPipeline wires the store, parser and builder from the config file.
func buildPipeline(configPath string) (*config.Config, logger.Logger, builder.Builder, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	store := segments.New(cfg.Paths.Segments, cfg.Segments.Extension)
	parser := vtt.NewParser(log)
	b := builder.New(store, parser, log, cfg.Paths.Transcripts)

	return cfg, log, b, nil
}

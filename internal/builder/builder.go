package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ndhoang91/vtt-transcripts/internal/transcript"
	"github.com/ndhoang91/vtt-transcripts/internal/vtt"
)

// Build aggregates all segment files of one video, reconstructs the
// transcript, and writes the artifact. All state (dedup set, paragraph
// accumulator) lives inside this call; nothing persists between videos.
func (b *implBuilder) Build(ctx context.Context, videoID string) Result {
	result := Result{VideoID: videoID}

	files, err := b.store.SegmentFiles(videoID)
	if err != nil {
		result.Err = fmt.Errorf("list segment files: %w", err)
		return result
	}
	if len(files) == 0 {
		result.Err = fmt.Errorf("no segment files found for video ID %s", videoID)
		return result
	}
	result.SegmentFiles = len(files)

	b.logger.Info(ctx, "Found %d segment files for video ID: %s", len(files), videoID)

	// One unreadable file must not sink the rest: every readable capture
	// still contributes cues.
	var cues []vtt.Cue
	for _, path := range files {
		text, err := b.store.ReadSegment(path)
		if err != nil {
			b.logger.Error(ctx, "Error reading file %s: %v", path, err)
			continue
		}
		cues = append(cues, b.parser.Parse(ctx, path, text)...)
	}
	if len(cues) == 0 {
		result.Err = fmt.Errorf("no valid cues parsed for video ID %s", videoID)
		return result
	}
	result.Cues = len(cues)

	paragraphs := transcript.Reconstruct(cues)
	if len(paragraphs) == 0 {
		result.Err = fmt.Errorf("no non-empty paragraphs for video ID %s", videoID)
		return result
	}
	result.Paragraphs = len(paragraphs)

	outputPath, err := b.writeTranscript(videoID, paragraphs)
	if err != nil {
		result.Err = err
		return result
	}
	result.OutputPath = outputPath

	b.logger.Info(ctx, "Transcript for %s saved to %s", videoID, outputPath)
	return result
}

// BuildAll runs the pipeline for every known video identifier. A failed
// video is logged and skipped; the batch always runs to the end.
func (b *implBuilder) BuildAll(ctx context.Context) ([]Result, error) {
	videoIDs, err := b.store.VideoIDs()
	if err != nil {
		return nil, fmt.Errorf("list video IDs: %w", err)
	}
	if len(videoIDs) == 0 {
		return nil, fmt.Errorf("no video IDs found in segments directory")
	}

	results := make([]Result, 0, len(videoIDs))
	successCount := 0
	for _, videoID := range videoIDs {
		result := b.Build(ctx, videoID)
		if result.Err != nil {
			b.logger.Error(ctx, "Failed to process video ID %s: %v", videoID, result.Err)
		} else {
			successCount++
		}
		results = append(results, result)
	}

	b.logger.Info(ctx, "Successfully processed %d out of %d videos", successCount, len(videoIDs))
	return results, nil
}

// writeTranscript serializes the paragraph list, joined by blank lines.
// Prior artifacts for the same video are overwritten: a batch re-run
// rebuilds every transcript from the full segment set.
func (b *implBuilder) writeTranscript(videoID string, paragraphs []string) (string, error) {
	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(b.outputDir, videoID+".txt")
	text := strings.Join(paragraphs, "\n\n")
	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write transcript %s: %w", outputPath, err)
	}

	return outputPath, nil
}

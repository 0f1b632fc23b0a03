package builder

import "context"

// Result records the outcome of building one video's transcript.
type Result struct {
	VideoID      string
	SegmentFiles int
	Cues         int
	Paragraphs   int
	OutputPath   string
	Err          error
}

// Builder runs the per-video pipeline: aggregate segment files, reconstruct
// the transcript, write the artifact.
type Builder interface {
	// Build processes a single video identifier. Failures are reported in
	// the Result, never as a panic; one bad video must not stop a batch.
	Build(ctx context.Context, videoID string) Result
	// BuildAll processes every video the store knows about. It returns an
	// error only when the batch cannot start at all (no identifiers);
	// per-video failures are carried in the results.
	BuildAll(ctx context.Context) ([]Result, error)
}

// AllSucceeded reports whether every result in the batch completed.
func AllSucceeded(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return false
		}
	}
	return true
}

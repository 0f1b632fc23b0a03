package vtt

import "context"

// Parser extracts structured cues from the raw text of one segment file.
// Parsing is best-effort: malformed input degrades to fewer cues, never to
// an error.
type Parser interface {
	Parse(ctx context.Context, name, text string) []Cue
}

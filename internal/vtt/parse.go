package vtt

import (
	"context"
	"strings"
)

// metadataPrefixes are non-cue lines that segment files may carry between
// blocks. They are skipped wholesale during the scan.
var metadataPrefixes = []string{
	"WEBVTT",
	"X-TIMESTAMP-MAP",
	"NOTE",
	"Kind:",
	"Language:",
}

// Parse splits the text of one segment file into cue blocks and extracts a
// Cue from each. The name argument is only used in log messages.
//
// A missing WEBVTT header is logged as a warning but does not stop the
// parse: streaming delivery frequently truncates the first segment of a
// capture window.
func (p *implParser) Parse(ctx context.Context, name, text string) []Cue {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	if len(lines) == 0 || !strings.HasPrefix(strings.TrimSpace(lines[0]), "WEBVTT") {
		p.logger.Warn(ctx, "File %s does not start with WEBVTT header or is empty", name)
	}

	var cues []Cue
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		if cue, ok := p.parseBlock(ctx, block); ok {
			cues = append(cues, cue)
		}
		block = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if isMetadataLine(line) {
			continue
		}

		// Blank line ends the current cue block.
		if line == "" {
			flush()
			continue
		}

		block = append(block, line)
	}

	// A file without a trailing blank line still has a pending block.
	flush()

	return cues
}

// parseBlock extracts a single Cue from the lines of one block. The first
// line containing the arrow token is the time range; an all-digit line
// before it is the content id; everything after it is content, joined with
// single spaces. Blocks without a time range carry no usable cue.
func (p *implParser) parseBlock(ctx context.Context, lines []string) (Cue, bool) {
	rangeIndex := -1
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			rangeIndex = i
			break
		}
	}

	if rangeIndex == -1 {
		p.logger.Debug(ctx, "No time range ('-->') found in block %q, skipping", lines)
		return Cue{}, false
	}

	var contentID string
	if rangeIndex > 0 && isAllDigits(lines[0]) {
		contentID = lines[0]
	}

	content := strings.Join(lines[rangeIndex+1:], " ")

	cue, ok := NewCue(lines[rangeIndex], content, contentID)
	if !ok {
		p.logger.Warn(ctx, "Could not parse start time from time range: %s", cue.TimeRange)
	}

	// Cues with empty content are still returned; filtering happens in the
	// reconstruction pass, not here.
	return cue, true
}

func isMetadataLine(line string) bool {
	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package vtt

import (
	"regexp"
	"strconv"
	"strings"
)

// Cue is one timestamped unit of caption text from a segment file.
// Cues are immutable once constructed; Content is trimmed at construction.
type Cue struct {
	TimeRange string // e.g. "00:00:12.000 --> 00:00:12.320"
	Content   string
	ContentID string // optional numeric label preceding the time range
	StartMS   int    // start of TimeRange in milliseconds, 0 if unparsable
}

// NewCue builds a Cue from its raw parts, trimming content and deriving
// the start offset. ok reports whether the time range parsed; callers
// decide how to log the failure.
func NewCue(timeRange, content, contentID string) (Cue, bool) {
	ms, ok := ParseTimestampMS(timeRange)
	return Cue{
		TimeRange: timeRange,
		Content:   strings.TrimSpace(content),
		ContentID: contentID,
		StartMS:   ms,
	}, ok
}

var timestampRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})\.(\d{3})`)

// ParseTimestampMS converts the start timestamp of a time range
// ("HH:MM:SS.mmm --> HH:MM:SS.mmm") to milliseconds. The end timestamp is
// informational and never inspected. Returns (0, false) when the range
// does not begin with a full fixed-width timestamp.
func ParseTimestampMS(timeRange string) (int, bool) {
	m := timestampRe.FindStringSubmatch(timeRange)
	if m == nil {
		return 0, false
	}

	// Digits are guaranteed by the pattern, so Atoi cannot fail here.
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])

	return (h*3600+min*60+s)*1000 + ms, true
}

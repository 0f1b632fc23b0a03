package transcript

import (
	"sort"

	"github.com/ndhoang91/vtt-transcripts/internal/vtt"
)

// Reconstruct turns the full unordered cue set of one video into ordered
// paragraphs. Cues are stable-sorted by start time (ties keep discovery
// order, which matters for cues duplicated across overlapping segment
// files), deduplicated on exact content, and stitched into sentences.
//
// The dedup set is local to this call: transcripts of different videos must
// never suppress each other's cues.
func Reconstruct(cues []vtt.Cue) []string {
	sorted := make([]vtt.Cue, len(cues))
	copy(sorted, cues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMS < sorted[j].StartMS
	})

	seen := make(map[string]struct{}, len(sorted))

	var result []string
	var current string

	for _, cue := range sorted {
		if cue.Content == "" {
			continue
		}
		if _, dup := seen[cue.Content]; dup {
			continue
		}
		seen[cue.Content] = struct{}{}

		switch {
		case current == "":
			current = cue.Content
		case Decide(current, cue.Content) == StartNew:
			result = append(result, current)
			current = cue.Content
		default:
			current += " " + cue.Content
		}

		if closesSentence(current) {
			result = append(result, current)
			current = ""
		}
	}

	if current != "" {
		result = append(result, current)
	}

	return result
}

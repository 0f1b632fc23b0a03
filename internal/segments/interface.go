package segments

// Store lists and reads the segment files accumulated by the capture side.
// It is the only component that touches the segment directory layout, so
// the builder can be exercised against fixture directories.
type Store interface {
	// VideoIDs returns the identifiers that have a segment directory.
	VideoIDs() ([]string, error)
	// SegmentFiles returns the paths of all segment files for one video.
	SegmentFiles(videoID string) ([]string, error)
	// ReadSegment returns the text of a single segment file.
	ReadSegment(path string) (string, error)
}

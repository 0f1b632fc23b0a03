package segments

import (
	"fmt"
	"os"
	"path/filepath"
)

// VideoIDs lists the subdirectories of the segment root. Each subdirectory
// is one video identifier; plain files at the root are ignored.
func (s *implStore) VideoIDs() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read segments directory %s: %w", s.root, err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}

	return ids, nil
}

// SegmentFiles lists the segment files captured for one video, in directory
// order. Order is not meaningful: cues are globally sorted downstream.
func (s *implStore) SegmentFiles(videoID string) ([]string, error) {
	dir := filepath.Join(s.root, videoID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read segment directory for %s: %w", videoID, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != s.ext {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}

// ReadSegment returns the full text of one segment file. The capture side
// guarantees the content is UTF-8 decodable text.
func (s *implStore) ReadSegment(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read segment file %s: %w", path, err)
	}
	return string(data), nil
}

package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ndhoang91/vtt-transcripts/internal/logger"
)

// New creates a Watcher over the segments root with concurrency control.
// ext is the segment file extension (including the dot); settleDelay is
// how long to wait after a new file before rebuilding its video.
func New(root, ext string, handler EventHandler, log logger.Logger, maxConcurrent int, settleDelay time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to 2 concurrent if not specified
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		root:        root,
		ext:         ext,
		handler:     handler,
		logger:      log,
		watcher:     watcher,
		settleDelay: settleDelay,
		semaphore:   make(chan struct{}, maxConcurrent),
	}, nil
}

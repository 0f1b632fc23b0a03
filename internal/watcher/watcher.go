package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ndhoang91/vtt-transcripts/internal/logger"
)

type implWatcher struct {
	root        string
	ext         string
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration
	semaphore   chan struct{}
	wg          sync.WaitGroup
}

// Start begins monitoring the segments root. The capture side creates one
// subdirectory per video identifier and accumulates segment files inside
// it, so the watcher tracks the root for new video directories and every
// video directory for new segment files.
func (w *implWatcher) Start(ctx context.Context) error {
	if err := w.watchExistingVideoDirs(ctx); err != nil {
		return err
	}

	w.logger.Info(ctx, "Segment watcher started. Monitoring: %s (*%s)", w.root, w.ext)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing rebuilds to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Segment watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				// A new video identifier appeared; follow its segment files.
				if filepath.Dir(event.Name) == w.root {
					if err := w.watcher.Add(event.Name); err != nil {
						w.logger.Error(ctx, "Failed to watch new video directory %s: %v", event.Name, err)
					} else {
						w.logger.Info(ctx, "Watching new video directory: %s", event.Name)
					}
				}
				continue
			}

			if videoID, ok := w.segmentVideoID(event.Name); ok {
				w.logger.Info(ctx, "New segment detected for video ID %s: %s", videoID, event.Name)
				w.scheduleRebuild(ctx, videoID)
			} else {
				w.logger.Debug(ctx, "Ignoring non-segment file: %s", event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// watchExistingVideoDirs adds watches for video directories that already
// exist when the watcher starts, since captures may resume into them.
func (w *implWatcher) watchExistingVideoDirs(ctx context.Context) error {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return fmt.Errorf("read segments root: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(w.root, entry.Name())
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Error(ctx, "Failed to watch video directory %s: %v", dir, err)
		}
	}

	return nil
}

// scheduleRebuild runs the handler for one video under the semaphore after
// the settle delay. Overlapping captures for the same video just rebuild
// again; the builder overwrites the artifact each time.
func (w *implWatcher) scheduleRebuild(ctx context.Context, videoID string) {
	select {
	case w.semaphore <- struct{}{}:
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			defer func() { <-w.semaphore }()

			// Give the capture side time to finish writing the file.
			time.Sleep(w.settleDelay)

			if err := w.handler(ctx, videoID); err != nil {
				w.logger.Error(ctx, "Failed to rebuild transcript for %s: %v", videoID, err)
			}
		}()
	case <-ctx.Done():
	}
}

// segmentVideoID reports whether path is a segment file directly inside a
// video directory, and if so which video it belongs to.
func (w *implWatcher) segmentVideoID(path string) (string, bool) {
	if filepath.Ext(path) != w.ext {
		return "", false
	}

	dir := filepath.Dir(path)
	if filepath.Dir(dir) != w.root {
		return "", false
	}

	return filepath.Base(dir), true
}

package watcher

import "context"

// Watcher defines the interface for monitoring the segments root
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler rebuilds the transcript of one video identifier
type EventHandler func(ctx context.Context, videoID string) error

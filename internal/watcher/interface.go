package watcher

import "context"

// Watcher monitors the queue directory for URL list files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes a single video URL and returns the written output path.
type Handler func(ctx context.Context, url string) (string, error)

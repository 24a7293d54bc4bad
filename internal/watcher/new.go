package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/ndquoc2512/transcript-flow/internal/logger"
)

// New creates a Watcher on the queue directory with concurrency control.
// Processed list files are moved to archivedDir.
func New(queueDir, archivedDir string, handler Handler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(queueDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		queueDir:      queueDir,
		archivedDir:   archivedDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}

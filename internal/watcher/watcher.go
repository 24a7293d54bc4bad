package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ndquoc2512/transcript-flow/internal/logger"
)

type implWatcher struct {
	queueDir      string
	archivedDir   string
	handler       Handler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start begins monitoring the queue directory for new URL list files.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Queue watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.queueDir)
	w.logger.Info(ctx, "Supported list formats: .txt, .url")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing runs to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Queue watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isListFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-list file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New URL list detected: %s", event.Name)

			// Small delay to ensure the file is fully written
			time.Sleep(500 * time.Millisecond)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(path string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()
					w.processFile(ctx, path)
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// processFile runs every URL listed in the file through the handler, then
// moves the file to the archived directory.
func (w *implWatcher) processFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		w.logger.Error(ctx, "Failed to read %s: %v", path, err)
		return
	}

	urls := parseURLList(string(data))
	if len(urls) == 0 {
		w.logger.Warn(ctx, "No URLs found in %s", path)
	}

	for _, u := range urls {
		if ctx.Err() != nil {
			return
		}
		if _, err := w.handler(ctx, u); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", u, err)
		}
	}

	dest := filepath.Join(w.archivedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		w.logger.Warn(ctx, "Failed to archive %s: %v", path, err)
	}
}

// parseURLList extracts one URL per non-empty line, skipping # comments.
func parseURLList(content string) []string {
	var urls []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}

func isListFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".url":
		return true
	}
	return false
}

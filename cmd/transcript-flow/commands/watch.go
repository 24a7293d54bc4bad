package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ndquoc2512/transcript-flow/internal/config"
	"github.com/ndquoc2512/transcript-flow/internal/logger"
	"github.com/ndquoc2512/transcript-flow/internal/processor"
	"github.com/ndquoc2512/transcript-flow/internal/transcript"
	"github.com/ndquoc2512/transcript-flow/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the queue directory for URL list files",
	Long: `Watch monitors the configured queue directory. Each new .txt or .url file
is read as a list of video URLs (one per line, # comments allowed); every URL
is run through the pipeline and the list file is then archived.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	fetcher := transcript.New(log)
	proc := processor.New(cfg, fetcher, log)

	w, err := watcher.New(cfg.Paths.Queue, cfg.Paths.Archived, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for URL list files (output: %s)", cfg.Paths.Queue, cfg.Output.Dir)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		cancel()
		return err
	}

	cancel()
	log.Info(ctx, "Shutting down gracefully...")
	return nil
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Queue,
		cfg.Paths.Archived,
		cfg.Output.Dir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

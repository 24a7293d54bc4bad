package processor

import (
	"context"

	"github.com/ndquoc2512/transcript-flow/internal/bedrock"
	"github.com/ndquoc2512/transcript-flow/internal/config"
	"github.com/ndquoc2512/transcript-flow/internal/logger"
	"github.com/ndquoc2512/transcript-flow/internal/transcript"
)

type implProcessor struct {
	cfg     *config.Config
	fetcher transcript.Fetcher
	logger  logger.Logger

	// newInvoker builds the per-run Bedrock client, so each run owns its
	// own instance. Replaceable in tests.
	newInvoker func(ctx context.Context) (bedrock.Invoker, error)
}

// New creates a Processor instance.
func New(cfg *config.Config, fetcher transcript.Fetcher, log logger.Logger) Processor {
	return &implProcessor{
		cfg:     cfg,
		fetcher: fetcher,
		logger:  log,
		newInvoker: func(ctx context.Context) (bedrock.Invoker, error) {
			return bedrock.New(ctx, cfg, log)
		},
	}
}

package summarizer

import (
	"github.com/ndquoc2512/transcript-flow/internal/bedrock"
	"github.com/ndquoc2512/transcript-flow/internal/logger"
)

type implSummarizer struct {
	invoker bedrock.Invoker // nil disables the AI path
	params  bedrock.Params
	logger  logger.Logger
}

// New creates a Summarizer. Pass a nil invoker to run rule-based only.
func New(invoker bedrock.Invoker, params bedrock.Params, log logger.Logger) Summarizer {
	return &implSummarizer{
		invoker: invoker,
		params:  params,
		logger:  log,
	}
}

package summarizer

import (
	"context"

	"github.com/ndquoc2512/transcript-flow/internal/models"
)

// Summarizer turns a transcript into an overview plus timestamped key
// points. Summarize never fails: when the AI path is disabled or errors,
// the deterministic rule-based extractor produces the result instead.
type Summarizer interface {
	Summarize(ctx context.Context, transcript models.Transcript, maxKeyPoints int) models.Summary
}

package processor

import "context"

// Processor runs the full pipeline for a single video URL and returns the
// path of the written document.
type Processor interface {
	Process(ctx context.Context, url string) (string, error)
}

package transcript

import (
	"context"

	"github.com/ndquoc2512/transcript-flow/internal/models"
)

// Fetcher retrieves the timed transcript for a video. A non-empty
// translateTo requests server-side translation of the selected track.
type Fetcher interface {
	Fetch(ctx context.Context, videoID, language, translateTo string) (models.Transcript, error)
}

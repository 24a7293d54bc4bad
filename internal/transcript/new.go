package transcript

import (
	"net/http"
	"time"

	"github.com/ndquoc2512/transcript-flow/internal/logger"
)

const defaultWatchURL = "https://www.youtube.com/watch?v="

type implFetcher struct {
	client   *http.Client
	watchURL string
	logger   logger.Logger
}

// New creates a Fetcher backed by YouTube's caption endpoints.
func New(log logger.Logger) Fetcher {
	return &implFetcher{
		client:   &http.Client{Timeout: 30 * time.Second},
		watchURL: defaultWatchURL,
		logger:   log,
	}
}

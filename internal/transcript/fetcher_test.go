package transcript

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndquoc2512/transcript-flow/internal/logger"
	"github.com/ndquoc2512/transcript-flow/internal/models"
)

const json3Payload = `{
	"events": [
		{"tStartMs": 0, "dDurationMs": 3000, "segs": [{"utf8": "Welcome to "}, {"utf8": "this tutorial"}]},
		{"tStartMs": 3000, "dDurationMs": 2500, "segs": [{"utf8": "Today we will learn about X"}]},
		{"tStartMs": 5500, "dDurationMs": 1000, "segs": [{"utf8": "\n"}]},
		{"tStartMs": 6500, "dDurationMs": 2000}
	]
}`

func TestParseJSON3(t *testing.T) {
	segments, err := parseJSON3([]byte(json3Payload))
	require.NoError(t, err)

	// Events without text are skipped
	require.Len(t, segments, 2)
	assert.Equal(t, "Welcome to this tutorial", segments[0].Text)
	assert.Equal(t, 0.0, segments[0].StartTime)
	assert.Equal(t, 3.0, segments[0].Duration)
	assert.Equal(t, 3.0, segments[1].StartTime)
}

func TestParseJSON3Invalid(t *testing.T) {
	_, err := parseJSON3([]byte("<html>"))
	assert.Error(t, err)
}

func TestFindTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "http://a", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "http://b", LanguageCode: "en"},
		{BaseURL: "http://c", LanguageCode: "vi"},
	}

	track, ok := findTrack(tracks, "en")
	require.True(t, ok)
	assert.Equal(t, "http://b", track.BaseURL, "manual track preferred over asr")

	track, ok = findTrack(tracks, "vi")
	require.True(t, ok)
	assert.Equal(t, "http://c", track.BaseURL)

	_, ok = findTrack(tracks, "de")
	assert.False(t, ok)
}

func newTestFetcher(server *httptest.Server) *implFetcher {
	return &implFetcher{
		client:   &http.Client{Timeout: 5 * time.Second},
		watchURL: server.URL + "/watch?v=",
		logger:   logger.New("error", "text"),
	}
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		tracks := fmt.Sprintf(
			`"captionTracks":[{"baseUrl":"%s/api/timedtext?lang=en","languageCode":"en","isTranslatable":true}]`,
			server.URL,
		)
		fmt.Fprintf(w, "<html>%s</html>", tracks)
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, json3Payload)
	})

	fetcher := newTestFetcher(server)
	got, err := fetcher.Fetch(context.Background(), "abc123", "en", "")
	require.NoError(t, err)

	assert.Equal(t, "abc123", got.VideoID)
	assert.Equal(t, "en", got.Language)
	require.Len(t, got.Segments, 2)
	assert.Equal(t, "Welcome to this tutorial", got.Segments[0].Text)
}

func TestFetchLanguageNotAvailable(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>"captionTracks":[{"baseUrl":"http://x","languageCode":"vi"}]</html>`)
	})

	fetcher := newTestFetcher(server)
	_, err := fetcher.Fetch(context.Background(), "abc123", "en", "")

	var perr *models.ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, models.ErrLanguageNotAvailable, perr.Type)
}

func TestFetchNoCaptions(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>no captions here</html>")
	})

	fetcher := newTestFetcher(server)
	_, err := fetcher.Fetch(context.Background(), "abc123", "en", "")

	var perr *models.ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, models.ErrTranscriptNotAvailable, perr.Type)
}

func TestFetchVideoNotFound(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>"playabilityStatus": {"status": "ERROR"}</html>`)
	})

	fetcher := newTestFetcher(server)
	_, err := fetcher.Fetch(context.Background(), "gone", "en", "")

	var perr *models.ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, models.ErrVideoNotFound, perr.Type)
}

func TestFetchNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // closed server forces a connection failure

	fetcher := newTestFetcher(server)
	_, err := fetcher.Fetch(context.Background(), "abc123", "en", "")

	var perr *models.ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, models.ErrNetwork, perr.Type)
}

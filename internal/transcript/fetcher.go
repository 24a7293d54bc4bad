package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/ndquoc2512/transcript-flow/internal/models"
)

var (
	reCaptionTracks    = regexp.MustCompile(`"captionTracks":(\[.*?\])`)
	rePlayabilityError = regexp.MustCompile(`"playabilityStatus":\s*\{\s*"status":\s*"ERROR"`)
)

// captionTrack is one entry of the watch page's caption track list.
type captionTrack struct {
	BaseURL        string `json:"baseUrl"`
	LanguageCode   string `json:"languageCode"`
	Kind           string `json:"kind"`
	IsTranslatable bool   `json:"isTranslatable"`
}

// Fetch downloads and decodes the caption track for the requested language.
func (f *implFetcher) Fetch(ctx context.Context, videoID, language, translateTo string) (models.Transcript, error) {
	tracks, err := f.listCaptionTracks(ctx, videoID)
	if err != nil {
		return models.Transcript{}, err
	}

	track, ok := findTrack(tracks, language)
	if !ok {
		return models.Transcript{}, models.NewProcessingError(
			models.ErrLanguageNotAvailable,
			"transcript not available in the requested language",
			language,
		)
	}

	trackURL := track.BaseURL + "&fmt=json3"
	if translateTo != "" && translateTo != language {
		if !track.IsTranslatable {
			return models.Transcript{}, models.NewProcessingError(
				models.ErrLanguageNotAvailable,
				"transcript track cannot be translated",
				translateTo,
			)
		}
		trackURL += "&tlang=" + url.QueryEscape(translateTo)
	}

	body, err := f.get(ctx, trackURL)
	if err != nil {
		return models.Transcript{}, err
	}

	segments, err := parseJSON3(body)
	if err != nil {
		return models.Transcript{}, models.NewProcessingError(
			models.ErrTranscriptNotAvailable,
			"could not decode transcript for this video",
			err.Error(),
		)
	}

	lang := language
	if translateTo != "" {
		lang = translateTo
	}

	f.logger.Debug(ctx, "Fetched %d transcript segments for %s (%s)", len(segments), videoID, lang)

	return models.Transcript{
		Segments: segments,
		Language: lang,
		VideoID:  videoID,
	}, nil
}

// listCaptionTracks scrapes the watch page for its caption track list.
func (f *implFetcher) listCaptionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	page, err := f.get(ctx, f.watchURL+url.QueryEscape(videoID))
	if err != nil {
		return nil, err
	}

	if rePlayabilityError.Match(page) {
		return nil, models.NewProcessingError(
			models.ErrVideoNotFound,
			"video not found or is private/restricted",
			videoID,
		)
	}

	match := reCaptionTracks.FindSubmatch(page)
	if match == nil {
		return nil, models.NewProcessingError(
			models.ErrTranscriptNotAvailable,
			"no transcript available for this video",
			videoID,
		)
	}

	var tracks []captionTrack
	if err := json.Unmarshal(match[1], &tracks); err != nil {
		return nil, models.NewProcessingError(
			models.ErrTranscriptNotAvailable,
			"could not parse caption track list",
			err.Error(),
		)
	}
	if len(tracks) == 0 {
		return nil, models.NewProcessingError(
			models.ErrTranscriptNotAvailable,
			"no transcript available for this video",
			videoID,
		)
	}

	return tracks, nil
}

func (f *implFetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, models.NewProcessingError(models.ErrNetwork, "build request", err.Error())
	}
	req.Header.Set("Accept-Language", "en-US,en")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, models.NewProcessingError(models.ErrNetwork, "connection to YouTube failed", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewProcessingError(
			models.ErrNetwork,
			fmt.Sprintf("unexpected status %d from YouTube", resp.StatusCode),
			rawURL,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewProcessingError(models.ErrNetwork, "read response body", err.Error())
	}
	return body, nil
}

// findTrack selects the track for a language, preferring manually created
// captions over auto-generated (asr) ones.
func findTrack(tracks []captionTrack, language string) (captionTrack, bool) {
	for _, track := range tracks {
		if track.LanguageCode == language && track.Kind != "asr" {
			return track, true
		}
	}
	for _, track := range tracks {
		if track.LanguageCode == language {
			return track, true
		}
	}
	return captionTrack{}, false
}

type json3Event struct {
	StartMs    int `json:"tStartMs"`
	DurationMs int `json:"dDurationMs"`
	Segs       []struct {
		UTF8 string `json:"utf8"`
	} `json:"segs"`
}

// parseJSON3 converts a json3 caption payload into transcript segments,
// skipping events that carry no text.
func parseJSON3(body []byte) ([]models.TranscriptSegment, error) {
	var payload struct {
		Events []json3Event `json:"events"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	var segments []models.TranscriptSegment
	for _, event := range payload.Events {
		var b strings.Builder
		for _, seg := range event.Segs {
			b.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", " "))
		if text == "" {
			continue
		}
		segments = append(segments, models.TranscriptSegment{
			Text:      text,
			StartTime: float64(event.StartMs) / 1000,
			Duration:  float64(event.DurationMs) / 1000,
		})
	}

	return segments, nil
}

// Package youtube extracts video ids from the URL formats YouTube serves.
package youtube

import (
	"net/url"
	"strings"

	"github.com/ndquoc2512/transcript-flow/internal/models"
)

// ExtractVideoID pulls the video id out of a YouTube URL. Supported formats:
//
//	https://www.youtube.com/watch?v=VIDEO_ID
//	https://youtu.be/VIDEO_ID
//	https://www.youtube.com/shorts/VIDEO_ID
func ExtractVideoID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	switch parsed.Host {
	case "youtu.be", "www.youtu.be":
		if id := strings.TrimLeft(parsed.Path, "/"); id != "" {
			return id, true
		}

	case "youtube.com", "www.youtube.com":
		if parsed.Path == "/watch" {
			if id := parsed.Query().Get("v"); id != "" {
				return id, true
			}
		}
		if rest, ok := strings.CutPrefix(parsed.Path, "/shorts/"); ok && rest != "" {
			return rest, true
		}
	}

	return "", false
}

// ParseURL validates a raw URL and returns it with its extracted video id.
func ParseURL(raw string) (models.YouTubeURL, error) {
	id, ok := ExtractVideoID(raw)
	if !ok {
		return models.YouTubeURL{}, models.NewProcessingError(
			models.ErrInvalidURL,
			"invalid YouTube URL format, expected youtube.com/watch?v= or youtu.be/ format",
			"provided URL: "+raw,
		)
	}

	return models.YouTubeURL{VideoID: id, OriginalURL: raw}, nil
}

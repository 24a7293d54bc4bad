package models

import "strings"

// TranscriptSegment is a single timed unit of transcript text.
type TranscriptSegment struct {
	Text      string
	StartTime float64 // seconds from video start
	Duration  float64 // segment duration in seconds
}

// Transcript is the complete transcript for one video.
// Segments are ordered by StartTime ascending.
type Transcript struct {
	Segments []TranscriptSegment
	Language string
	VideoID  string
}

// PlainText concatenates all segment texts with single spaces.
func (t Transcript) PlainText() string {
	parts := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, " ")
}

// TotalDuration returns the end time of the last segment.
func (t Transcript) TotalDuration() float64 {
	if len(t.Segments) == 0 {
		return 0
	}
	last := t.Segments[len(t.Segments)-1]
	return last.StartTime + last.Duration
}

// KeyPoint is a timestamped highlight extracted from the transcript.
type KeyPoint struct {
	Text           string
	Timestamp      string  // MM:SS or HH:MM:SS
	StartTime      float64 // seconds
	RelevanceScore float64 // 0.0 to 1.0
}

// Summary is the condensed representation of a video.
type Summary struct {
	Overview  string
	KeyPoints []KeyPoint
}

// YouTubeURL is a validated YouTube URL with its extracted video id.
type YouTubeURL struct {
	VideoID     string
	OriginalURL string
}

// MarkdownDocument is the rendered output document.
type MarkdownDocument struct {
	Content    string
	VideoTitle string
}

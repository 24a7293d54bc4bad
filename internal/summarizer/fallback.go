package summarizer

import (
	"regexp"
	"strings"

	"github.com/ndquoc2512/transcript-flow/internal/models"
	"github.com/ndquoc2512/transcript-flow/internal/timestamp"
)

// Rule-based extraction, used whenever the AI path is disabled or fails.
// It has no error path: every input, including an empty transcript, is valid.

const noContentSentinel = "No content available."

const (
	maxOverviewSentences = 3

	// contextWindow is how many trailing segments are appended to a
	// selected segment to give the key point surrounding context.
	contextWindow = 5

	// maxPointLength caps key point text length in characters.
	maxPointLength = 250
)

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// Overview builds a naive overview from the leading sentences of the text.
func Overview(text string) string {
	if text == "" {
		return noContentSentinel
	}

	var sentences []string
	for _, s := range sentenceSplitter.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) > maxOverviewSentences {
		sentences = sentences[:maxOverviewSentences]
	}

	overview := strings.Join(sentences, ". ")
	if overview == "" {
		return noContentSentinel
	}
	if !strings.HasSuffix(overview, ".") {
		overview += "."
	}
	return overview
}

// KeyPoints picks evenly spaced segments and turns each into a key point
// with surrounding context. Earlier segments score higher.
func KeyPoints(transcript models.Transcript, count int) []models.KeyPoint {
	if len(transcript.Segments) == 0 || count <= 0 {
		return nil
	}

	total := len(transcript.Segments)
	stride := total / count
	if stride < 1 {
		stride = 1
	}

	var keyPoints []models.KeyPoint
	for i := 0; i < total; i += stride {
		if len(keyPoints) >= count {
			break
		}

		seg := transcript.Segments[i]
		keyPoints = append(keyPoints, models.KeyPoint{
			Text:           contextText(transcript.Segments, i),
			Timestamp:      timestamp.Format(seg.StartTime),
			StartTime:      seg.StartTime,
			RelevanceScore: 1.0 - float64(i)/float64(total),
		})
	}

	return keyPoints
}

// contextText concatenates the segment at index with its following context
// window and trims the result to maxPointLength, preferring a word boundary
// when one falls late enough.
func contextText(segments []models.TranscriptSegment, index int) string {
	end := index + contextWindow + 1
	if end > len(segments) {
		end = len(segments)
	}

	parts := make([]string, 0, end-index)
	for _, seg := range segments[index:end] {
		parts = append(parts, seg.Text)
	}
	combined := strings.TrimSpace(strings.Join(parts, " "))

	if len(combined) <= maxPointLength {
		return combined
	}

	truncated := combined[:maxPointLength]
	if cut := strings.LastIndex(truncated, " "); cut > maxPointLength*7/10 {
		return truncated[:cut] + "..."
	}
	return truncated + "..."
}

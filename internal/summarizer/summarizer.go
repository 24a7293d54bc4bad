package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ndquoc2512/transcript-flow/internal/models"
	"github.com/ndquoc2512/transcript-flow/internal/timestamp"
)

// transcriptCharBudget caps how much transcript is sent to the model, to
// stay inside its context window.
const transcriptCharBudget = 8000

const truncationMarker = "... (transcript truncated due to length)"

const promptTemplate = `Analyze this video transcript and provide:

1. A brief 2-3 sentence overview summarizing the main topic and key takeaways
2. Extract %d key points from the video with their timestamps

Transcript with timestamps:
%s

Please respond in the following JSON format:
{
    "overview": "Your 2-3 sentence overview here",
    "key_points": [
        {"timestamp": "MM:SS", "text": "Key point description"},
        ...
    ]
}

Important:
- Make the overview concise and informative
- Each key point should be a complete, meaningful statement (not fragments)
- Use the exact timestamps from the transcript
- Ensure key points are evenly distributed throughout the video`

// Summarize tries the AI path first, falling back to the rule-based
// extractor on any failure. It always returns a usable Summary.
func (s *implSummarizer) Summarize(ctx context.Context, transcript models.Transcript, maxKeyPoints int) models.Summary {
	if s.invoker != nil {
		summary, err := s.aiSummary(ctx, transcript, maxKeyPoints)
		if err == nil {
			return summary
		}
		s.logger.Warn(ctx, "AI summarization failed (%v), falling back to rule-based approach", err)
	}

	return models.Summary{
		Overview:  Overview(transcript.PlainText()),
		KeyPoints: KeyPoints(transcript, maxKeyPoints),
	}
}

func (s *implSummarizer) aiSummary(ctx context.Context, transcript models.Transcript, maxKeyPoints int) (models.Summary, error) {
	prompt := fmt.Sprintf(promptTemplate, maxKeyPoints, formatTranscript(transcript))

	raw, err := s.invoker.Invoke(ctx, prompt, s.params)
	if err != nil {
		return models.Summary{}, err
	}

	return parseAIResponse(raw, maxKeyPoints)
}

// formatTranscript renders each segment as "[timestamp] text", one per
// line, stopping with a marker once the character budget would be exceeded.
func formatTranscript(transcript models.Transcript) string {
	var lines []string
	total := 0

	for _, seg := range transcript.Segments {
		line := fmt.Sprintf("[%s] %s", timestamp.Format(seg.StartTime), seg.Text)
		if total+len(line) > transcriptCharBudget {
			lines = append(lines, truncationMarker)
			break
		}
		lines = append(lines, line)
		total += len(line)
	}

	return strings.Join(lines, "\n")
}

type aiKeyPoint struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

type aiResponse struct {
	Overview  string       `json:"overview"`
	KeyPoints []aiKeyPoint `json:"key_points"`
}

// parseAIResponse decodes the model's JSON reply into a Summary. Fenced
// code blocks around the JSON are stripped; missing fields get defaults.
func parseAIResponse(raw string, maxKeyPoints int) (models.Summary, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 2 {
			text = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	var response aiResponse
	if err := json.Unmarshal([]byte(text), &response); err != nil {
		return models.Summary{}, fmt.Errorf("parse AI response as JSON: %w", err)
	}

	overview := response.Overview
	if overview == "" {
		overview = "No overview available."
	}

	candidates := response.KeyPoints
	if maxKeyPoints >= 0 && len(candidates) > maxKeyPoints {
		candidates = candidates[:maxKeyPoints]
	}

	keyPoints := make([]models.KeyPoint, 0, len(candidates))
	for _, kp := range candidates {
		ts := kp.Timestamp
		if ts == "" {
			ts = "00:00"
		}
		keyPoints = append(keyPoints, models.KeyPoint{
			Text:      kp.Text,
			Timestamp: ts,
			// Lenient parse: a malformed timestamp maps to 0 rather
			// than failing the whole response.
			StartTime:      timestamp.Parse(ts),
			RelevanceScore: 1.0,
		})
	}

	return models.Summary{Overview: overview, KeyPoints: keyPoints}, nil
}

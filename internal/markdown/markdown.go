// Package markdown renders a transcript and its summary into output
// documents.
package markdown

import (
	"fmt"
	"strings"

	"github.com/ndquoc2512/transcript-flow/internal/models"
)

// Generate builds the markdown document. Section order is fixed:
// Title, Overview, Key Points, Summary, Full Transcript.
func Generate(transcript models.Transcript, summary models.Summary, videoTitle string) models.MarkdownDocument {
	title := strings.TrimSpace(videoTitle)
	title = strings.NewReplacer("\n", " ", "\r", " ").Replace(title)
	if title == "" {
		title = "Untitled Video"
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString(summarySection(summary))
	b.WriteString("\n")
	b.WriteString(detailedSummarySection(summary))
	b.WriteString("\n")
	b.WriteString(transcriptSection(transcript))

	return models.MarkdownDocument{
		Content:    b.String(),
		VideoTitle: title,
	}
}

func summarySection(summary models.Summary) string {
	var b strings.Builder

	b.WriteString("## Overview\n\n")
	b.WriteString(summary.Overview)
	b.WriteString("\n\n")

	b.WriteString("## Key Points\n\n")
	for _, kp := range summary.KeyPoints {
		fmt.Fprintf(&b, "- **%s** - %s\n", kp.Timestamp, kp.Text)
	}
	b.WriteString("\n")

	return b.String()
}

// detailedSummarySection repeats only the overview; the key points already
// have their own section above.
func detailedSummarySection(summary models.Summary) string {
	return "## Summary\n\n" + summary.Overview + "\n\n"
}

func transcriptSection(transcript models.Transcript) string {
	return "## Full Transcript\n\n" + transcript.PlainText() + "\n"
}

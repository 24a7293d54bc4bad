package markdown

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/ndquoc2512/transcript-flow/internal/models"
)

const (
	fontName    = "Times New Roman"
	bodySize    = 13
	headingSize = 15
	titleSize   = 16
)

// WriteDocx renders the summary and transcript as a styled docx document,
// mirroring the markdown section order.
func WriteDocx(transcript models.Transcript, summary models.Summary, title, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Overview", true, headingSize)
	addStyledRun(doc.AddParagraph(""), summary.Overview, false, bodySize)

	addStyledRun(doc.AddParagraph(""), "Key Points", true, headingSize)
	for _, kp := range summary.KeyPoints {
		p := doc.AddParagraph("")
		p.AddText("• "+kp.Timestamp).Font(fontName).Size(bodySize).Color("000000").Bold(true)
		p.AddText(" - "+kp.Text).Font(fontName).Size(bodySize).Color("000000")
	}

	addStyledRun(doc.AddParagraph(""), "Summary", true, headingSize)
	addStyledRun(doc.AddParagraph(""), summary.Overview, false, bodySize)

	addStyledRun(doc.AddParagraph(""), "Full Transcript", true, headingSize)
	for _, seg := range transcript.Segments {
		p := doc.AddParagraph("")
		p.AddText(seg.Text).Font(fontName).Size(bodySize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

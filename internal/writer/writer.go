// Package writer saves rendered documents to disk with safe filenames.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/ndquoc2512/transcript-flow/internal/models"
)

var (
	reInvalidChars = regexp.MustCompile(`[/\\:*?"<>|]`)
	reUnderscores  = regexp.MustCompile(`_+`)
)

// SaveMarkdown writes the document into outputDir, deriving the filename
// from the video title. Returns the path actually written.
func SaveMarkdown(doc models.MarkdownDocument, outputDir string) (string, error) {
	path := OutputPath(doc.VideoTitle, outputDir, ".md")

	if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
		return "", models.NewProcessingError(
			models.ErrFileWrite,
			"failed to write output file",
			err.Error(),
		)
	}

	return path, nil
}

// OutputPath derives a collision-free output path for the given title and
// extension. Existing files get a numeric suffix instead of being clobbered.
func OutputPath(videoTitle, outputDir, ext string) string {
	filename := SanitizeFilename(videoTitle) + ext
	return resolveConflict(filepath.Join(outputDir, filename))
}

// SanitizeFilename converts a video title into a filename that is valid on
// all common filesystems.
func SanitizeFilename(title string) string {
	if strings.TrimSpace(title) == "" {
		return "transcript"
	}

	s := reInvalidChars.ReplaceAllString(title, "")
	s = strings.ReplaceAll(s, " ", "_")
	s = reUnderscores.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")

	if len(s) > 255 {
		s = s[:255]
	}

	if s == "" || !containsAlphanumeric(s) {
		return "transcript"
	}
	return s
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func resolveConflict(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

package models

import "testing"

func TestPlainText(t *testing.T) {
	transcript := Transcript{
		Segments: []TranscriptSegment{
			{Text: "Hello", StartTime: 0, Duration: 2},
			{Text: "world", StartTime: 2, Duration: 2},
		},
	}

	if got := transcript.PlainText(); got != "Hello world" {
		t.Errorf("PlainText() = %q, want %q", got, "Hello world")
	}
}

func TestPlainTextEmpty(t *testing.T) {
	if got := (Transcript{}).PlainText(); got != "" {
		t.Errorf("PlainText() = %q, want empty", got)
	}
}

func TestTotalDuration(t *testing.T) {
	transcript := Transcript{
		Segments: []TranscriptSegment{
			{Text: "a", StartTime: 0, Duration: 2},
			{Text: "b", StartTime: 10, Duration: 3.5},
		},
	}

	if got := transcript.TotalDuration(); got != 13.5 {
		t.Errorf("TotalDuration() = %v, want 13.5", got)
	}

	if got := (Transcript{}).TotalDuration(); got != 0 {
		t.Errorf("TotalDuration() on empty = %v, want 0", got)
	}
}

func TestProcessingErrorMessage(t *testing.T) {
	withDetails := NewProcessingError(ErrInvalidURL, "bad URL", "https://nope")
	if got := withDetails.Error(); got != "invalid_url: bad URL (https://nope)" {
		t.Errorf("Error() = %q", got)
	}

	withoutDetails := NewProcessingError(ErrNetwork, "timeout", "")
	if got := withoutDetails.Error(); got != "network_error: timeout" {
		t.Errorf("Error() = %q", got)
	}
}

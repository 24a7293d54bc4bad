package models

import "fmt"

// ErrorType classifies pipeline failures.
type ErrorType string

const (
	ErrInvalidURL             ErrorType = "invalid_url"
	ErrVideoNotFound          ErrorType = "video_not_found"
	ErrTranscriptNotAvailable ErrorType = "transcript_not_available"
	ErrLanguageNotAvailable   ErrorType = "language_not_available"
	ErrNetwork                ErrorType = "network_error"
	ErrFileWrite              ErrorType = "file_write_error"
)

// ProcessingError carries a classified pipeline failure.
type ProcessingError struct {
	Type    ErrorType
	Message string
	Details string
}

func (e *ProcessingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewProcessingError builds a ProcessingError.
func NewProcessingError(t ErrorType, message, details string) *ProcessingError {
	return &ProcessingError{Type: t, Message: message, Details: details}
}

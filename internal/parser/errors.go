package parser

import (
	"fmt"
	"strings"
)

// previewLen bounds how much offending content a SyntaxError carries.
const previewLen = 120

// SyntaxError indicates the underlying grammar rejected a bounded buffer.
// It carries a truncated preview of the offending content for diagnostics.
type SyntaxError struct {
	Err     error
	Section string // empty when the whole document was the buffer
	Preview string
}

func (e *SyntaxError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("parsing section %q: %v (content: %q)", e.Section, e.Err, e.Preview)
	}
	return fmt.Sprintf("parsing document: %v (content: %q)", e.Err, e.Preview)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// NewSyntaxError wraps an underlying parse failure with a content preview.
func NewSyntaxError(err error, section, content string) *SyntaxError {
	return &SyntaxError{
		Err:     err,
		Section: section,
		Preview: preview(content),
	}
}

func preview(content string) string {
	content = strings.TrimSpace(content)
	if len(content) > previewLen {
		return content[:previewLen] + "..."
	}
	return content
}

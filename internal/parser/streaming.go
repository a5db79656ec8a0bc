package parser

import (
	"bufio"
	"fmt"
	"runtime"
	"strings"

	"schemadoc/internal/document"
)

const (
	// gcHintInterval is how many scanned lines pass between GC hints.
	gcHintInterval = 1000
	// maxLineBytes raises bufio.Scanner's 64K default for texty documents.
	maxLineBytes = 1 << 20
)

// SectionError records one section whose parse failed during a streaming
// scan. The failure is local: the section is omitted and the scan continues.
type SectionError struct {
	Name string
	Err  error
}

func (e SectionError) Error() string {
	return fmt.Sprintf("section %q: %v", e.Name, e.Err)
}

func (e SectionError) Unwrap() error {
	return e.Err
}

// StreamingParser scans an already-materialized document line by line,
// finalizing each section as its boundary is detected. It never holds more
// than one section's lines at a time.
type StreamingParser struct{}

// NewStreamingParser creates a StreamingParser.
func NewStreamingParser() *StreamingParser {
	return &StreamingParser{}
}

// Parse scans text and returns every section that parsed cleanly plus the
// per-section failures that were absorbed. The error is non-nil only for
// scan-level failures (a line exceeding maxLineBytes).
func (p *StreamingParser) Parse(text string) (map[string]any, []SectionError, error) {
	result := map[string]any{}
	var skipped []SectionError

	var name string
	var buf []string
	finalize := func() {
		if name == "" {
			return
		}
		value, err := ParseSectionValue(name, strings.Join(buf, "\n"))
		if err != nil {
			skipped = append(skipped, SectionError{Name: name, Err: err})
		} else {
			result[name] = value
		}
		name = ""
		buf = buf[:0]
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		line := sc.Text()
		if header, ok := document.HeaderName(line); ok {
			finalize()
			name = header
			buf = append(buf, line)
		} else if name != "" {
			buf = append(buf, line)
		}
		// Lines before the first header belong to no section and are dropped.

		lineNo++
		if lineNo%gcHintInterval == 0 {
			runtime.GC()
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("scanning document: %w", err)
	}
	finalize()

	return result, skipped, nil
}

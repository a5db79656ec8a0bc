// Package document locates top-level sections in raw schema-document text.
// Boundary detection is a line-oriented heuristic, not a grammar-aware scan:
// a top-level section header is a bare word followed by a colon at column 0
// with nothing else on the line. The heuristic sits behind a narrow
// name/start/end surface so a real incremental scanner could replace it
// without touching callers.
package document

import (
	"regexp"
	"strings"
)

// headerPattern matches a bare word header at column 0, e.g. "core:".
// Indented keys that would otherwise match are excluded by the anchor.
var headerPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*):[ \t]*$`)

// SectionIndex is an ordered mapping from section name to the zero-based
// line number of its header. Derived per call, never persisted.
type SectionIndex struct {
	names []string
	lines map[string]int
}

// Index scans text line by line and records every top-level section header.
// A duplicate top-level name overwrites the earlier occurrence's line number;
// the name keeps its first position in iteration order.
func Index(text string) *SectionIndex {
	return IndexLines(SplitLines(text))
}

// IndexLines is Index over pre-split lines, letting callers that already hold
// the split share it.
func IndexLines(lines []string) *SectionIndex {
	idx := &SectionIndex{lines: make(map[string]int)}
	for i, line := range lines {
		m := headerPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if _, seen := idx.lines[name]; !seen {
			idx.names = append(idx.names, name)
		}
		idx.lines[name] = i
	}
	return idx
}

// SplitLines splits text on newlines without normalizing line endings beyond
// stripping a trailing carriage return.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// HeaderName returns the section name if line is a top-level header.
func HeaderName(line string) (string, bool) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Line returns the header line number for name.
func (x *SectionIndex) Line(name string) (int, bool) {
	n, ok := x.lines[name]
	return n, ok
}

// Names returns section names in document order (first occurrence).
func (x *SectionIndex) Names() []string {
	return x.names
}

// Len returns the number of distinct top-level sections.
func (x *SectionIndex) Len() int {
	return len(x.names)
}

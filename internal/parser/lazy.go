package parser

import (
	"slices"

	"schemadoc/internal/document"
	"schemadoc/internal/domain"
	"schemadoc/internal/memlimit"
)

// LazyParser indexes a document once and parses only the sections a caller
// asked for. A wildcard request defers to a memory-negotiated chunked full
// parse instead of materializing the whole buffer at once.
type LazyParser struct {
	negotiator *memlimit.Negotiator
}

// NewLazyParser creates a LazyParser backed by the given negotiator.
func NewLazyParser(negotiator *memlimit.Negotiator) *LazyParser {
	return &LazyParser{negotiator: negotiator}
}

// Parse extracts and parses the requested sections. Requested names absent
// from the document are omitted from the result. A SyntaxError in any
// requested section is fatal.
func (p *LazyParser) Parse(text string, sections []string) (map[string]any, error) {
	if slices.Contains(sections, domain.SectionWildcard) {
		return p.parseChunked(text)
	}

	lines := document.SplitLines(text)
	idx := document.IndexLines(lines)

	result := make(map[string]any, len(sections))
	for _, name := range sections {
		start, ok := idx.Line(name)
		if !ok {
			continue
		}
		value, err := ParseSectionValue(name, document.Extract(lines, start))
		if err != nil {
			return nil, err
		}
		result[name] = value
	}
	return result, nil
}

// parseChunked parses every section, one extracted span at a time, under a
// temporarily widened memory ceiling. Peak use stays bounded by the largest
// single section rather than the whole tree.
func (p *LazyParser) parseChunked(text string) (map[string]any, error) {
	var result map[string]any
	err := p.negotiator.WithHeadroom(len(text), func() error {
		lines := document.SplitLines(text)
		idx := document.IndexLines(lines)

		result = make(map[string]any, idx.Len())
		for _, name := range idx.Names() {
			start, _ := idx.Line(name)
			value, err := ParseSectionValue(name, document.Extract(lines, start))
			if err != nil {
				return err
			}
			result[name] = value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

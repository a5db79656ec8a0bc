// Package parser turns schema-document text into in-memory mappings using
// three strategies: a single-buffer parse for small documents, a lazy
// section-by-section parse for medium ones, and a streaming line scan for
// very large ones. All three bottom out in ParseBuffer, the only code that
// talks to the underlying YAML grammar.
package parser

import (
	"github.com/goccy/go-yaml"
)

// ParseBuffer parses one bounded buffer into a value tree. Blank input yields
// an empty mapping. Malformed input yields a *SyntaxError.
func ParseBuffer(text string) (map[string]any, error) {
	return parseBuffer(text, "")
}

func parseBuffer(text, section string) (map[string]any, error) {
	var tree map[string]any
	if err := yaml.Unmarshal([]byte(text), &tree); err != nil {
		return nil, NewSyntaxError(err, section, text)
	}
	if tree == nil {
		tree = map[string]any{}
	}
	return tree, nil
}

// ParseSectionValue parses the extracted span of a single section and
// returns the value tree under the header, which may be a mapping, a list,
// or a scalar.
func ParseSectionValue(name, span string) (any, error) {
	tree, err := parseBuffer(span, name)
	if err != nil {
		return nil, err
	}
	return tree[name], nil
}

// ParseSectionBuffer is ParseSectionValue constrained to mapping-valued
// sections, the shape schema sections take in practice. Empty sections yield
// an empty mapping; scalar-valued sections stay addressable under their own
// name.
func ParseSectionBuffer(name, span string) (map[string]any, error) {
	value, err := ParseSectionValue(name, span)
	if err != nil {
		return nil, err
	}
	switch v := value.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return map[string]any{name: v}, nil
	}
}

package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemadoc/internal/parser"
)

func TestParseBuffer_ValidDocument(t *testing.T) {
	tree, err := parser.ParseBuffer("core:\n  name: app\nfields:\n  title:\n    type: string\n")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "app"}, tree["core"])
	assert.Equal(t, map[string]any{"title": map[string]any{"type": "string"}}, tree["fields"])
}

func TestParseBuffer_BlankInput(t *testing.T) {
	tree, err := parser.ParseBuffer("")

	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestParseBuffer_MalformedInput(t *testing.T) {
	_, err := parser.ParseBuffer("core:\n  broken: [a, b\n")

	require.Error(t, err)
	var syntaxErr *parser.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, syntaxErr.Preview, "broken")
}

func TestParseBuffer_PreviewTruncated(t *testing.T) {
	content := "core: [" + strings.Repeat("aaaaa ", 40)

	_, err := parser.ParseBuffer(content)

	require.Error(t, err)
	var syntaxErr *parser.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.LessOrEqual(t, len(syntaxErr.Preview), 120+len("..."))
}

func TestParseSectionBuffer_MappingSection(t *testing.T) {
	section, err := parser.ParseSectionBuffer("fields", "fields:\n  name:\n    type: string")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": map[string]any{"type": "string"}}, section)
}

func TestParseSectionBuffer_EmptySection(t *testing.T) {
	section, err := parser.ParseSectionBuffer("core", "core:\n")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, section)
}

func TestParseSectionBuffer_ScalarSection(t *testing.T) {
	section, err := parser.ParseSectionBuffer("version", "version:\n  draft")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"version": "draft"}, section)
}

func TestParseSectionBuffer_MalformedCarriesSectionName(t *testing.T) {
	_, err := parser.ParseSectionBuffer("bad", "bad:\n  x: [oops")

	require.Error(t, err)
	var syntaxErr *parser.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "bad", syntaxErr.Section)
	assert.Contains(t, err.Error(), "bad")
}

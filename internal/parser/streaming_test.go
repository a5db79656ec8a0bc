package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemadoc/internal/parser"
)

func TestStreamingParser_AllSectionsWellFormed(t *testing.T) {
	text := "core:\n  name: app\nfields:\n  title:\n    type: string\nrelations:\n  posts:\n    type: hasMany\n"

	sections, skipped, err := parser.NewStreamingParser().Parse(text)

	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Len(t, sections, 3)
	assert.Equal(t, map[string]any{"name": "app"}, sections["core"])
}

func TestStreamingParser_MalformedSectionOmitted(t *testing.T) {
	text := "core:\n  name: app\nbad:\n  broken: [a, b\nrelations:\n  posts:\n    type: hasMany\n"

	sections, skipped, err := parser.NewStreamingParser().Parse(text)

	require.NoError(t, err)
	require.Len(t, skipped, 1)
	assert.Equal(t, "bad", skipped[0].Name)
	assert.NotContains(t, sections, "bad")
	assert.Contains(t, sections, "core")
	assert.Contains(t, sections, "relations")
}

func TestStreamingParser_PrologueLinesDropped(t *testing.T) {
	text := "# generated file\n\ncore:\n  name: app\n"

	sections, skipped, err := parser.NewStreamingParser().Parse(text)

	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, map[string]any{"name": "app"}, sections["core"])
}

func TestStreamingParser_EmptyInput(t *testing.T) {
	sections, skipped, err := parser.NewStreamingParser().Parse("")

	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Empty(t, sections)
}

func TestStreamingParser_EmptySectionYieldsNilValue(t *testing.T) {
	text := "core:\nfields:\n  a: 1\n"

	sections, skipped, err := parser.NewStreamingParser().Parse(text)

	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Contains(t, sections, "core")
	assert.Nil(t, sections["core"])
}

package parser_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"schemadoc/internal/domain"
	"schemadoc/internal/memlimit"
	"schemadoc/internal/parser"
	"schemadoc/mocks"
)

const lazySample = "core:\n  name: app\nfields:\n  title:\n    type: string\noptions:\n  soft_delete: true\n"

func unlimitedNegotiator(t *testing.T) *memlimit.Negotiator {
	t.Helper()
	limiter := new(mocks.MockMemoryLimiter)
	limiter.On("Limit").Return(int64(math.MaxInt64)).Maybe()
	return memlimit.New(limiter, 3.0, 64<<20)
}

func TestLazyParser_OnlyRequestedSections(t *testing.T) {
	p := parser.NewLazyParser(unlimitedNegotiator(t))

	result, err := p.Parse(lazySample, []string{"core", "options"})

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, map[string]any{"name": "app"}, result["core"])
	assert.Equal(t, map[string]any{"soft_delete": true}, result["options"])
	assert.NotContains(t, result, "fields")
}

func TestLazyParser_MissingRequestedSectionOmitted(t *testing.T) {
	p := parser.NewLazyParser(unlimitedNegotiator(t))

	result, err := p.Parse(lazySample, []string{"core", "missing"})

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Contains(t, result, "core")
}

func TestLazyParser_SyntaxErrorIsFatal(t *testing.T) {
	text := "core:\n  broken: [a, b\n"
	p := parser.NewLazyParser(unlimitedNegotiator(t))

	_, err := p.Parse(text, []string{"core"})

	require.Error(t, err)
	var syntaxErr *parser.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestLazyParser_WildcardParsesEverySection(t *testing.T) {
	p := parser.NewLazyParser(unlimitedNegotiator(t))

	result, err := p.Parse(lazySample, []string{domain.SectionWildcard})

	require.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Contains(t, result, "core")
	assert.Contains(t, result, "fields")
	assert.Contains(t, result, "options")
}

func TestLazyParser_WildcardFailsFastWhenLimiterRefuses(t *testing.T) {
	limiter := new(mocks.MockMemoryLimiter)
	limiter.On("Limit").Return(int64(1))
	limiter.On("SetLimit", mock.Anything).Return(int64(0), errors.New("fixed heap budget"))
	p := parser.NewLazyParser(memlimit.New(limiter, 3.0, 64<<20))

	_, err := p.Parse(lazySample, []string{domain.SectionWildcard})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMemoryLimit)
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apidrift/apidrift/pkg/errors"
)

func TestNormalizePagesList(t *testing.T) {
	raw := []any{
		map[string]any{"title": "Intro", "url": "https://d/intro", "content": "hello"},
		map[string]any{"title": "API", "url": "https://d/api", "content": "def f()"},
	}

	pages, err := NormalizePages("docs", raw)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "Intro", pages[0].Title)
	assert.Equal(t, "https://d/api", pages[1].URL)
}

func TestNormalizePagesMapping(t *testing.T) {
	raw := map[string]any{
		"zebra": map[string]any{"content": "z"},
		"alpha": map[string]any{"content": "a", "title": "Alpha Guide"},
	}

	pages, err := NormalizePages("docs", raw)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	// Mapping keys are visited sorted; a key only fills a missing title.
	assert.Equal(t, "Alpha Guide", pages[0].Title)
	assert.Equal(t, "zebra", pages[1].Title)
}

func TestNormalizePagesSkipsContentless(t *testing.T) {
	raw := []any{
		map[string]any{"title": "empty"},
		"not a page at all",
		map[string]any{"content": "kept"},
	}

	pages, err := NormalizePages("docs", raw)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "kept", pages[0].Content)
}

func TestNormalizePagesRejectsScalars(t *testing.T) {
	_, err := NormalizePages("docs", "just a string")
	require.Error(t, err)
	assert.True(t, errors.IsShapeMismatch(err))

	_, err = NormalizePages("docs", 42)
	assert.Error(t, err)
}

func TestNormalizePagesNil(t *testing.T) {
	pages, err := NormalizePages("docs", nil)
	require.NoError(t, err)
	assert.Nil(t, pages)
}

func TestDecodeAnalyses(t *testing.T) {
	raw := []any{
		map[string]any{
			"path": "src/a.py",
			"functions": []any{
				map[string]any{"name": "f", "return_type": "int", "is_async": true},
			},
		},
		42, // undecodable record is skipped, not fatal
	}

	analyses, err := DecodeAnalyses("code", raw)
	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, "src/a.py", analyses[0].Path)
	require.Len(t, analyses[0].Functions, 1)
	assert.Equal(t, "int", analyses[0].Functions[0].ReturnType)
	assert.True(t, analyses[0].Functions[0].IsAsync)
}

func TestDecodeAnalysesRejectsScalar(t *testing.T) {
	_, err := DecodeAnalyses("code", "nope")
	assert.Error(t, err)
}

func TestDecodeInsights(t *testing.T) {
	raw := map[string]any{
		"metadata": map[string]any{"stars": 120, "language": "Python"},
		"common_problems": []any{
			map[string]any{"number": 7, "title": "crash on empty input", "state": "open", "comments": 9},
		},
	}

	insights := DecodeInsights(raw)
	require.NotNil(t, insights)
	assert.Equal(t, 120, insights.Metadata.Stars)
	require.Len(t, insights.CommonProblems, 1)
	assert.Equal(t, 7, insights.CommonProblems[0].Number)
}

func TestDecodeInsightsDegradesToNil(t *testing.T) {
	assert.Nil(t, DecodeInsights(nil))
	assert.Nil(t, DecodeInsights("garbage"))
}

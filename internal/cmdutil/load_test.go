package cmdutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPagesList(t *testing.T) {
	path := writeFile(t, "pages.json", `[
		{"title": "API", "url": "https://d/api", "content": "def f()"}
	]`)

	pages, err := LoadPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "API", pages[0].Title)
}

func TestLoadPagesMapping(t *testing.T) {
	path := writeFile(t, "pages.json", `{
		"guide": {"content": "some text"}
	}`)

	pages, err := LoadPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "guide", pages[0].Title)
}

func TestLoadPagesErrors(t *testing.T) {
	_, err := LoadPages(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadPages(writeFile(t, "bad.json", "{not json"))
	assert.Error(t, err)

	_, err = LoadPages(writeFile(t, "scalar.json", `"oops"`))
	assert.Error(t, err)
}

func TestLoadAnalyses(t *testing.T) {
	path := writeFile(t, "code.json", `[
		{"path": "src/a.py", "functions": [{"name": "f", "parameters": [{"name": "x"}]}]}
	]`)

	analyses, err := LoadAnalyses(path)
	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, "f", analyses[0].Functions[0].Name)
}

func TestLoadInsightsDegradesToNil(t *testing.T) {
	assert.Nil(t, LoadInsights(""))
	assert.Nil(t, LoadInsights(filepath.Join(t.TempDir(), "missing.json")))
	assert.Nil(t, LoadInsights(writeFile(t, "bad.json", "{nope")))

	path := writeFile(t, "gh.json", `{"metadata": {"stars": 9}}`)
	insights := LoadInsights(path)
	require.NotNil(t, insights)
	assert.Equal(t, 9, insights.Metadata.Stars)
}

func TestLoadTopics(t *testing.T) {
	keyed := writeFile(t, "topics.yaml", "topics:\n  - oauth\n  - pagination\n")
	topics, err := LoadTopics(keyed)
	require.NoError(t, err)
	assert.Equal(t, []string{"oauth", "pagination"}, topics)

	bare := writeFile(t, "bare.yaml", "- oauth\n- retries\n")
	topics, err = LoadTopics(bare)
	require.NoError(t, err)
	assert.Equal(t, []string{"oauth", "retries"}, topics)

	_, err = LoadTopics(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	// Intermediate directories are created as needed.
	path := filepath.Join(t.TempDir(), "reports", "out.json")
	require.NoError(t, WriteJSON(path, map[string]int{"total": 2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total": 2`)
}

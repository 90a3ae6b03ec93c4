package merge

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apidrift/apidrift/pkg/apis"
	"github.com/apidrift/apidrift/pkg/conflicts"
	"github.com/apidrift/apidrift/pkg/constants"
)

func docsIndex() apis.Index {
	idx := make(apis.Index)
	idx.Add(&apis.APIEntry{
		Name:       "fetch",
		Kind:       apis.KindFunction,
		Parameters: []apis.Parameter{{Name: "url"}},
		Docstring:  "Fetches a URL (docs).",
		Source:     "https://docs.example.com/api",
	})
	idx.Add(&apis.APIEntry{
		Name:      "phantom",
		Kind:      apis.KindFunction,
		Docstring: "Documented but never implemented.",
		Source:    "https://docs.example.com/api",
	})
	return idx
}

func codeIndex() apis.Index {
	idx := make(apis.Index)
	idx.Add(&apis.APIEntry{
		Name:       "fetch",
		Kind:       apis.KindFunction,
		Parameters: []apis.Parameter{{Name: "url"}},
		Docstring:  "Fetches a URL (code).",
		Source:     "src/http.py",
	})
	idx.Add(&apis.APIEntry{
		Name:   "_internal",
		Kind:   apis.KindFunction,
		Source: "src/http.py",
	})
	return idx
}

func TestMergeAllStatusPartition(t *testing.T) {
	result := NewMerger(docsIndex(), codeIndex(), nil).MergeAll()

	require.Len(t, result.APIs, 3)
	assert.Equal(t, StatusMatched, result.APIs["fetch"].Status)
	assert.Equal(t, StatusDocsOnly, result.APIs["phantom"].Status)
	assert.Equal(t, StatusCodeOnly, result.APIs["_internal"].Status)

	assert.Equal(t, Summary{Total: 3, Matched: 1, DocsOnly: 1, CodeOnly: 1}, result.Summary)
	assert.Equal(t, []string{"_internal", "fetch", "phantom"}, result.Names())
}

func TestMergeCodeTakesPrecedence(t *testing.T) {
	result := NewMerger(docsIndex(), codeIndex(), nil).MergeAll()

	record := result.APIs["fetch"]
	assert.Equal(t, "fetch(url)", record.MergedSignature)
	assert.Equal(t, "Fetches a URL (code).", record.MergedDescription)
	assert.Equal(t, "src/http.py", record.Source)
}

func TestMergeFallsBackToDocsDescription(t *testing.T) {
	docs := docsIndex()
	code := codeIndex()
	code["fetch"].Docstring = ""

	result := NewMerger(docs, code, nil).MergeAll()

	assert.Equal(t, "Fetches a URL (docs).", result.APIs["fetch"].MergedDescription)
}

func TestMergeConflictRetainsBothSides(t *testing.T) {
	docs := docsIndex()
	code := codeIndex()
	conflictList := []conflicts.Conflict{
		{
			Type:       conflicts.SignatureMismatch,
			Severity:   conflicts.SeverityMedium,
			APIName:    "fetch",
			DocsInfo:   docs["fetch"],
			CodeInfo:   code["fetch"],
			Difference: "documentation lists 1 parameters, code has 2",
		},
	}

	result := NewMerger(docs, code, conflictList).MergeAll()

	record := result.APIs["fetch"]
	assert.Equal(t, StatusConflict, record.Status)
	assert.Equal(t, conflictList[0].Difference, record.Warning)
	require.NotNil(t, record.Conflict)
	assert.Same(t, docs["fetch"], record.DocsInfo)
	assert.Same(t, code["fetch"], record.CodeInfo)

	// Code precedence still governs the merged content.
	assert.Equal(t, "src/http.py", record.Source)

	assert.Equal(t, 1, result.Summary.Conflict)
	assert.Equal(t, 0, result.Summary.Matched)
	assert.Equal(t, 1, result.ConflictSummary.Total)
}

func TestMissingConflictsDoNotMarkConflictStatus(t *testing.T) {
	docs := docsIndex()
	code := codeIndex()
	conflictList := []conflicts.Conflict{
		{Type: conflicts.MissingInCode, Severity: conflicts.SeverityHigh, APIName: "phantom", DocsInfo: docs["phantom"]},
		{Type: conflicts.MissingInDocs, Severity: conflicts.SeverityLow, APIName: "_internal", CodeInfo: code["_internal"]},
	}

	result := NewMerger(docs, code, conflictList).MergeAll()

	assert.Equal(t, StatusDocsOnly, result.APIs["phantom"].Status)
	assert.Equal(t, StatusCodeOnly, result.APIs["_internal"].Status)
	assert.Equal(t, 0, result.Summary.Conflict)

	// The conflicts still count toward the conflict rollup.
	assert.Equal(t, 2, result.ConflictSummary.Total)
}

func TestInvariantViolatingConflictExcluded(t *testing.T) {
	conflictList := []conflicts.Conflict{
		{Type: conflicts.SignatureMismatch, Severity: conflicts.SeverityMedium, APIName: "never_existed"},
	}

	result := NewMerger(docsIndex(), codeIndex(), conflictList).MergeAll()

	// The orphaned conflict neither creates a record nor reaches the rollup.
	assert.NotContains(t, result.APIs, "never_existed")
	assert.Equal(t, 0, result.ConflictSummary.Total)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0], "never_existed")
}

func TestGitHubContextOmittedWithoutInsights(t *testing.T) {
	result := NewMerger(docsIndex(), codeIndex(), nil).MergeAll()
	require.Nil(t, result.GitHubContext)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "github_context")
}

func TestGitHubContextIncluded(t *testing.T) {
	insights := &apis.GitHubInsights{
		Metadata: apis.RepoMetadata{
			Stars:       321,
			Language:    "Python",
			Description: "An HTTP toolkit",
		},
		TopLabels: []apis.LabelCount{{Label: "bug", Count: 7}},
	}

	result := NewMerger(docsIndex(), codeIndex(), nil, WithInsights(insights)).MergeAll()

	require.NotNil(t, result.GitHubContext)
	assert.Equal(t, "An HTTP toolkit", result.GitHubContext.Description)
	assert.Equal(t, 321, result.GitHubContext.Metadata.Stars)
	require.Len(t, result.GitHubContext.TopLabels, 1)
}

func TestIssueLinksAttachedToRecords(t *testing.T) {
	links := map[string][]apis.Issue{
		"fetch": {{Number: 9, Title: "fetch hangs", State: apis.IssueOpen}},
	}

	result := NewMerger(docsIndex(), codeIndex(), nil, WithIssueLinks(links)).MergeAll()

	require.Len(t, result.APIs["fetch"].IssueLinks, 1)
	assert.Empty(t, result.APIs["phantom"].IssueLinks)
	assert.Equal(t, links, result.IssueLinks)
}

func TestMergedDescriptionClamped(t *testing.T) {
	docs := docsIndex()
	code := codeIndex()
	code["fetch"].Docstring = strings.Repeat("x", constants.MaxDescriptionLength+100)

	result := NewMerger(docs, code, nil).MergeAll()

	desc := result.APIs["fetch"].MergedDescription
	assert.Len(t, desc, constants.MaxDescriptionLength)
	assert.True(t, strings.HasSuffix(desc, "..."))
}

func TestMergeEmptyIndexes(t *testing.T) {
	result := NewMerger(make(apis.Index), make(apis.Index), nil).MergeAll()

	assert.Empty(t, result.APIs)
	assert.Equal(t, Summary{}, result.Summary)
	assert.Nil(t, result.GitHubContext)
}

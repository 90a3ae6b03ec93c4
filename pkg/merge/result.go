// Package merge combines the documentation index, the authoritative code
// index, the detected conflicts, and the optional GitHub insights layer
// into one MergeResult — the single output contract consumed by downstream
// rendering.
package merge

import (
	"sort"

	"github.com/apidrift/apidrift/pkg/apis"
	"github.com/apidrift/apidrift/pkg/conflicts"
)

// Status classifies how the two indexes agree about one API name.
type Status string

// Merge statuses. The four buckets are pairwise disjoint and partition the
// union of all names seen in either index.
const (
	StatusMatched  Status = "matched"
	StatusConflict Status = "conflict"
	StatusDocsOnly Status = "docs_only"
	StatusCodeOnly Status = "code_only"
)

// Record is the merged, authoritative view of one API across all sources.
// One record exists per distinct name; records are created fresh each run.
type Record struct {
	Name              string              `json:"name"`
	Status            Status              `json:"status"`
	MergedSignature   string              `json:"merged_signature"`
	MergedDescription string              `json:"merged_description,omitempty"`
	Warning           string              `json:"warning,omitempty"`
	Conflict          *conflicts.Conflict `json:"conflict,omitempty"`
	DocsInfo          *apis.APIEntry      `json:"docs_info,omitempty"`
	CodeInfo          *apis.APIEntry      `json:"code_info,omitempty"`
	Source            string              `json:"source"`
	IssueLinks        []apis.Issue        `json:"issue_links,omitempty"`
}

// Summary counts merged records by status.
type Summary struct {
	Total    int `json:"total"`
	Matched  int `json:"matched"`
	Conflict int `json:"conflict"`
	DocsOnly int `json:"docs_only"`
	CodeOnly int `json:"code_only"`
}

// GitHubContext is the repository context carried into the result when an
// insights layer was supplied: a docs excerpt, repository metadata, and the
// label ranking.
type GitHubContext struct {
	Description string            `json:"description,omitempty"`
	Metadata    apis.RepoMetadata `json:"metadata"`
	TopLabels   []apis.LabelCount `json:"top_labels,omitempty"`
}

// Result is the single output document of a reconciliation pass.
// GitHubContext is omitted entirely — not emitted as an empty object — when
// no insights layer was supplied; downstream consumers key off its absence.
type Result struct {
	APIs            map[string]*Record      `json:"apis"`
	Summary         Summary                 `json:"summary"`
	GitHubContext   *GitHubContext          `json:"github_context,omitempty"`
	ConflictSummary conflicts.Summary       `json:"conflict_summary"`
	IssueLinks      map[string][]apis.Issue `json:"issue_links"`

	// Diagnostics records invariant violations that were excluded from
	// aggregation. It is not part of the output contract.
	Diagnostics []string `json:"-"`
}

// Names returns the merged record names in sorted order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.APIs))
	for name := range r.APIs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

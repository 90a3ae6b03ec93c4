package merge

import (
	"github.com/rs/zerolog"

	"github.com/apidrift/apidrift/pkg/apis"
	"github.com/apidrift/apidrift/pkg/conflicts"
	"github.com/apidrift/apidrift/pkg/constants"
	"github.com/apidrift/apidrift/pkg/errors"
	"github.com/apidrift/apidrift/pkg/logging"
)

// Merger performs the final reduction of a reconciliation pass. Construct
// one per pass; all inputs are treated as immutable snapshots.
type Merger struct {
	docs       apis.Index
	code       apis.Index
	conflicts  []conflicts.Conflict
	insights   *apis.GitHubInsights
	issueLinks map[string][]apis.Issue
	logger     *zerolog.Logger
}

// Option configures a Merger.
type Option func(*Merger)

// WithInsights supplies the optional GitHub insights layer. A nil layer is
// valid and leaves the GitHub context out of the result.
func WithInsights(insights *apis.GitHubInsights) Option {
	return func(m *Merger) {
		m.insights = insights
	}
}

// WithIssueLinks supplies the per-API issue links produced by the
// categorizer's linking pass.
func WithIssueLinks(links map[string][]apis.Issue) Option {
	return func(m *Merger) {
		if links != nil {
			m.issueLinks = links
		}
	}
}

// WithLogger sets the logger used for invariant-violation diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Merger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMerger creates a Merger over the two indexes and the detected
// conflicts.
func NewMerger(docs, code apis.Index, conflictList []conflicts.Conflict, opts ...Option) *Merger {
	m := &Merger{
		docs:       docs,
		code:       code,
		conflicts:  conflictList,
		issueLinks: make(map[string][]apis.Issue),
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MergeAll builds the unified result: one record per distinct API name
// across both indexes, status-classified, with content merged under
// code-over-docs precedence, plus rollup statistics.
func (m *Merger) MergeAll() *Result {
	result := &Result{
		APIs:       make(map[string]*Record),
		IssueLinks: m.issueLinks,
	}

	live := m.liveConflicts(result)
	byName := make(map[string]*conflicts.Conflict)
	for i := range live {
		c := &live[i]
		// Only mismatches mark a both-sides name as conflicted; missing_*
		// conflicts describe names that classify as docs_only/code_only.
		if c.Type == conflicts.SignatureMismatch || c.Type == conflicts.DescriptionMismatch {
			byName[c.APIName] = c
		}
	}

	for _, name := range apis.Union(m.docs, m.code) {
		record := m.mergeOne(name, byName[name])
		result.APIs[name] = record

		result.Summary.Total++
		switch record.Status {
		case StatusMatched:
			result.Summary.Matched++
		case StatusConflict:
			result.Summary.Conflict++
		case StatusDocsOnly:
			result.Summary.DocsOnly++
		case StatusCodeOnly:
			result.Summary.CodeOnly++
		}
	}

	result.ConflictSummary = conflicts.Summarize(live)

	if m.insights != nil {
		result.GitHubContext = &GitHubContext{
			Description: m.insights.Metadata.Description,
			Metadata:    m.insights.Metadata,
			TopLabels:   m.insights.TopLabels,
		}
	}

	return result
}

// mergeOne builds the merged record for a single name. Precedence is code
// over docs: the code index is authoritative for signature, description,
// and source. Conflicted records retain both sides verbatim plus the
// conflict's explanation as a warning.
func (m *Merger) mergeOne(name string, conflict *conflicts.Conflict) *Record {
	docsEntry := m.docs[name]
	codeEntry := m.code[name]

	record := &Record{Name: name}

	switch {
	case docsEntry != nil && codeEntry != nil:
		record.Status = StatusMatched
		record.MergedSignature = codeEntry.Signature()
		record.MergedDescription = pick(codeEntry.Docstring, docsEntry.Docstring)
		record.Source = codeEntry.Source
		if conflict != nil {
			record.Status = StatusConflict
			record.Warning = conflict.Difference
			record.Conflict = conflict
			record.DocsInfo = docsEntry
			record.CodeInfo = codeEntry
		}
	case docsEntry != nil:
		record.Status = StatusDocsOnly
		record.MergedSignature = docsEntry.Signature()
		record.MergedDescription = docsEntry.Docstring
		record.Source = docsEntry.Source
	default:
		record.Status = StatusCodeOnly
		record.MergedSignature = codeEntry.Signature()
		record.MergedDescription = codeEntry.Docstring
		record.Source = codeEntry.Source
	}

	record.MergedDescription = clampDescription(record.MergedDescription)

	if links, ok := m.issueLinks[name]; ok {
		record.IssueLinks = links
	}

	return record
}

// clampDescription truncates oversized docstrings for display.
func clampDescription(s string) string {
	if len(s) <= constants.MaxDescriptionLength {
		return s
	}
	return s[:constants.MaxDescriptionLength-3] + "..."
}

// liveConflicts filters out conflicts that reference an API absent from
// both indexes. Such a conflict breaks a construction invariant; it is
// logged and excluded from aggregation rather than merged or allowed to
// crash the run.
func (m *Merger) liveConflicts(result *Result) []conflicts.Conflict {
	live := make([]conflicts.Conflict, 0, len(m.conflicts))
	for _, c := range m.conflicts {
		if !m.docs.Has(c.APIName) && !m.code.Has(c.APIName) {
			err := errors.NewInvariantViolationError(
				"conflict references an API absent from both indexes", c.APIName)
			m.logger.Warn().
				Str("api", c.APIName).
				Str("type", string(c.Type)).
				Msg(err.Error())
			result.Diagnostics = append(result.Diagnostics, err.Error())
			continue
		}
		live = append(live, c)
	}
	return live
}

// pick returns the first non-empty string.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

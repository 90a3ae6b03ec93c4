package apis

// IssueState is the lifecycle state of a tracker issue.
type IssueState string

// Issue states.
const (
	IssueOpen   IssueState = "open"
	IssueClosed IssueState = "closed"
)

// Issue is one issue-tracker item as delivered by the external fetch layer.
type Issue struct {
	Number   int        `json:"number" mapstructure:"number"`
	Title    string     `json:"title" mapstructure:"title"`
	State    IssueState `json:"state" mapstructure:"state"`
	Comments int        `json:"comments" mapstructure:"comments"`
	Labels   []string   `json:"labels,omitempty" mapstructure:"labels"`
}

// LabelCount pairs a label with its occurrence count across a set of issues.
type LabelCount struct {
	Label string `json:"label" mapstructure:"label"`
	Count int    `json:"count" mapstructure:"count"`
}

// RepoMetadata is repository-level metadata from the insights layer.
type RepoMetadata struct {
	Stars       int    `json:"stars" mapstructure:"stars"`
	Forks       int    `json:"forks" mapstructure:"forks"`
	Language    string `json:"language,omitempty" mapstructure:"language"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// GitHubInsights is the optional repository-insights layer supplied to the
// merger: pre-bucketed issues plus repository metadata. A nil insights layer
// is valid and simply omits the GitHub context from merge output.
type GitHubInsights struct {
	Metadata       RepoMetadata `json:"metadata" mapstructure:"metadata"`
	CommonProblems []Issue      `json:"common_problems,omitempty" mapstructure:"common_problems"`
	KnownSolutions []Issue      `json:"known_solutions,omitempty" mapstructure:"known_solutions"`
	TopLabels      []LabelCount `json:"top_labels,omitempty" mapstructure:"top_labels"`
}

// Issues returns the union of common problems and known solutions in input
// order. The caller treats the result as an immutable snapshot.
func (g *GitHubInsights) Issues() []Issue {
	if g == nil {
		return nil
	}
	out := make([]Issue, 0, len(g.CommonProblems)+len(g.KnownSolutions))
	out = append(out, g.CommonProblems...)
	out = append(out, g.KnownSolutions...)
	return out
}

package issues

import (
	"sort"

	"github.com/apidrift/apidrift/pkg/apis"
)

// Derived-category thresholds.
const (
	// CommonProblemMinComments is the comment count at which an open issue
	// counts as a common problem.
	CommonProblemMinComments = 5

	// KnownSolutionMinComments is the comment count at which a closed issue
	// counts as a known solution.
	KnownSolutionMinComments = 1

	// TopLabelLimit caps the top-labels ranking.
	TopLabelLimit = 10
)

// CommonProblems returns the open issues with enough discussion to indicate
// a recurring problem.
func CommonProblems(issues []apis.Issue) []apis.Issue {
	var out []apis.Issue
	for _, issue := range issues {
		if issue.State == apis.IssueOpen && issue.Comments >= CommonProblemMinComments {
			out = append(out, issue)
		}
	}
	return out
}

// KnownSolutions returns the closed issues that carry at least one comment,
// on the assumption that the discussion holds the resolution.
func KnownSolutions(issues []apis.Issue) []apis.Issue {
	var out []apis.Issue
	for _, issue := range issues {
		if issue.State == apis.IssueClosed && issue.Comments >= KnownSolutionMinComments {
			out = append(out, issue)
		}
	}
	return out
}

// TopLabels counts label occurrences across the issues and returns the
// labels sorted by descending count (ties broken by label name), capped at
// TopLabelLimit.
func TopLabels(issues []apis.Issue) []apis.LabelCount {
	counts := make(map[string]int)
	for _, issue := range issues {
		for _, label := range issue.Labels {
			counts[label]++
		}
	}

	labels := make([]apis.LabelCount, 0, len(counts))
	for label, count := range counts {
		labels = append(labels, apis.LabelCount{Label: label, Count: count})
	}
	sort.Slice(labels, func(i, j int) bool {
		if labels[i].Count != labels[j].Count {
			return labels[i].Count > labels[j].Count
		}
		return labels[i].Label < labels[j].Label
	})

	if len(labels) > TopLabelLimit {
		labels = labels[:TopLabelLimit]
	}
	return labels
}

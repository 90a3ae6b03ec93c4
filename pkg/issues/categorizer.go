// Package issues routes issue-tracker items into keyword-defined topic
// buckets and links them to the individual APIs they concern. Matching is
// intentionally permissive: an issue lands in every topic it matches, so a
// reader cross-referencing topics sees the issue wherever it is relevant.
package issues

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/apidrift/apidrift/pkg/apis"
)

// OtherTopic collects issues that match no supplied topic. The key is only
// present in categorization output when at least one issue went unmatched.
const OtherTopic = "other"

// minKeywordLength filters dotted-name components too short to be
// meaningful match keywords ("a", "of", "io").
const minKeywordLength = 3

// fold is the Unicode case folder used for all case-insensitive matching.
var fold = cases.Fold()

// CategorizeByTopic groups problem and solution issues by topic. Each topic
// string is tokenized into lowercase keywords (topics may be multi-word);
// an issue matches a topic when any of its title words or labels contains
// any keyword. Issues matching several topics appear under each of them.
// With no issues at all the result is an empty map — no topic keys and no
// "other" key.
func CategorizeByTopic(problems, solutions []apis.Issue, topics []string) map[string][]apis.Issue {
	categorized := make(map[string][]apis.Issue)

	all := make([]apis.Issue, 0, len(problems)+len(solutions))
	all = append(all, problems...)
	all = append(all, solutions...)

	for _, issue := range all {
		matched := false
		for _, topic := range topics {
			if issueMatches(issue, tokenize(topic)) {
				categorized[topic] = append(categorized[topic], issue)
				matched = true
			}
		}
		if !matched {
			categorized[OtherTopic] = append(categorized[OtherTopic], issue)
		}
	}

	return categorized
}

// LinkToAPIs links each issue to the APIs it mentions. Keywords are derived
// from the dotted-name components of each API; an issue links to an API
// when any keyword appears in its title or labels. APIs with no matching
// issues are absent from the result rather than mapped to an empty list —
// that asymmetry is part of the contract.
func LinkToAPIs(issues []apis.Issue, index apis.Index) map[string][]apis.Issue {
	links := make(map[string][]apis.Issue)

	for _, name := range index.Names() {
		keywords := nameKeywords(name)
		if len(keywords) == 0 {
			continue
		}
		for _, issue := range issues {
			if issueMatches(issue, keywords) {
				links[name] = append(links[name], issue)
			}
		}
	}

	return links
}

// issueMatches reports whether any of the issue's title words or labels
// contains any of the keywords, case-insensitively.
func issueMatches(issue apis.Issue, keywords []string) bool {
	titleWords := strings.Fields(fold.String(issue.Title))
	for _, keyword := range keywords {
		for _, word := range titleWords {
			if strings.Contains(word, keyword) {
				return true
			}
		}
		for _, label := range issue.Labels {
			if strings.Contains(fold.String(label), keyword) {
				return true
			}
		}
	}
	return false
}

// tokenize splits a topic string into folded keywords.
func tokenize(topic string) []string {
	return strings.Fields(fold.String(topic))
}

// nameKeywords derives match keywords from an API's dotted name, splitting
// on the separators used across naming conventions and dropping components
// too short to be discriminating.
func nameKeywords(name string) []string {
	components := strings.FieldsFunc(fold.String(name), func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	keywords := components[:0]
	for _, c := range components {
		if len(c) >= minKeywordLength {
			keywords = append(keywords, c)
		}
	}
	return keywords
}

package apidrift

import (
	"github.com/rs/zerolog"

	"github.com/apidrift/apidrift/pkg/apis"
	"github.com/apidrift/apidrift/pkg/errors"
)

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithTopics sets the topic vocabulary used to bucket issue-tracker items.
// Topics may be multi-word ("async api"); each is tokenized into keywords.
func WithTopics(topics ...string) Option {
	return func(p *Pipeline) error {
		p.topics = topics
		return nil
	}
}

// WithInsights supplies the optional GitHub insights layer. Passing nil is
// valid and leaves the GitHub context out of the merge result.
func WithInsights(insights *apis.GitHubInsights) Option {
	return func(p *Pipeline) error {
		p.insights = insights
		return nil
	}
}

// WithSimilarityThreshold overrides the parameter-name similarity threshold
// used by conflict detection. Must be in (0, 1].
func WithSimilarityThreshold(threshold float64) Option {
	return func(p *Pipeline) error {
		if threshold <= 0 || threshold > 1 {
			return errors.NewValidationError("similarity_threshold", threshold,
				"must be in (0, 1]")
		}
		p.threshold = threshold
		return nil
	}
}

// WithConcurrency caps how many documentation pages are extracted in
// parallel. Values below 1 are rejected.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) error {
		if n < 1 {
			return errors.NewValidationError("concurrency", n, "must be at least 1")
		}
		p.concurrency = n
		return nil
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "cannot be nil")
		}
		p.logger = logger
		return nil
	}
}

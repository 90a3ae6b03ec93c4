// Package apidrift reconciles API knowledge across heterogeneous sources:
// free-text documentation, statically parsed code, and issue-tracker
// discussion. Per-source extraction runs as independent stateless tasks;
// detection, categorization, and merging execute as one single-threaded
// reduction after all extractions complete, keeping the whole pass
// deterministic.
//
// Example usage:
//
//	pipeline, err := apidrift.New(
//	    apidrift.WithTopics("authentication", "async api"),
//	    apidrift.WithInsights(insights),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := pipeline.Run(ctx, pages, analyses)
package apidrift

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/apidrift/apidrift/pkg/apis"
	"github.com/apidrift/apidrift/pkg/conflicts"
	"github.com/apidrift/apidrift/pkg/constants"
	"github.com/apidrift/apidrift/pkg/extract"
	"github.com/apidrift/apidrift/pkg/issues"
	"github.com/apidrift/apidrift/pkg/logging"
	"github.com/apidrift/apidrift/pkg/merge"
)

// Pipeline orchestrates one reconciliation pass. It is safe to reuse across
// runs; each Run treats its inputs as immutable snapshots and shares no
// state with other runs.
type Pipeline struct {
	topics      []string
	insights    *apis.GitHubInsights
	threshold   float64
	concurrency int
	logger      *zerolog.Logger
}

// Result bundles the full output of one reconciliation pass. Merge is the
// authoritative output contract; the remaining fields expose the
// intermediate products for callers that report on them.
type Result struct {
	// Merge is the unified per-API document.
	Merge *merge.Result

	// Conflicts is the ordered conflict list from detection.
	Conflicts []conflicts.Conflict

	// Topics maps each matched topic to its issues.
	Topics map[string][]apis.Issue

	// DocIndex and CodeIndex are the two extracted indexes.
	DocIndex  apis.Index
	CodeIndex apis.Index
}

// New creates a Pipeline with options.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		threshold:   conflicts.SimilarityThreshold,
		concurrency: constants.MaxConcurrentExtractions,
		logger:      logging.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Run executes one reconciliation pass over the supplied snapshots.
//
// Documentation pages are extracted concurrently, one task per page, with a
// barrier before the reduction steps; page order still decides merge order
// so the result is deterministic. The context is consulted between stages
// and carries the logger; the core itself performs no I/O.
func (p *Pipeline) Run(ctx context.Context, pages []apis.Page, analyses []apis.FileAnalysis) (*Result, error) {
	logger := p.logger
	ctx = logging.WithLogger(ctx, logger)

	docIndex, err := p.extractDocs(ctx, pages)
	if err != nil {
		return nil, err
	}
	codeIndex := extract.BuildCodeIndex(analyses)

	logger.Debug().
		Int("doc_apis", len(docIndex)).
		Int("code_apis", len(codeIndex)).
		Msg("extraction complete")

	detector := conflicts.NewDetector(docIndex, codeIndex,
		conflicts.WithSimilarityThreshold(p.threshold))
	conflictList := detector.DetectAll()

	var problems, solutions []apis.Issue
	if p.insights != nil {
		problems = p.insights.CommonProblems
		solutions = p.insights.KnownSolutions
	}
	topicBuckets := issues.CategorizeByTopic(problems, solutions, p.topics)
	issueLinks := issues.LinkToAPIs(p.insights.Issues(), codeIndex)

	merger := merge.NewMerger(docIndex, codeIndex, conflictList,
		merge.WithInsights(p.insights),
		merge.WithIssueLinks(issueLinks),
		merge.WithLogger(logger),
	)
	mergeResult := merger.MergeAll()

	logger.Info().
		Int("apis", mergeResult.Summary.Total).
		Int("conflicts", mergeResult.ConflictSummary.Total).
		Int("linked_apis", len(issueLinks)).
		Msg("reconciliation complete")

	return &Result{
		Merge:     mergeResult,
		Conflicts: conflictList,
		Topics:    topicBuckets,
		DocIndex:  docIndex,
		CodeIndex: codeIndex,
	}, nil
}

// extractDocs runs per-page extraction as independent tasks and reduces the
// partial indexes in page order after the barrier.
func (p *Pipeline) extractDocs(ctx context.Context, pages []apis.Page) (apis.Index, error) {
	extractor := extract.NewDocExtractor(extract.WithDocLogger(p.logger))

	partials := make([]apis.Index, len(pages))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(p.concurrency)

	for i, page := range pages {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[i] = extractor.ExtractPage(page)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	index := make(apis.Index)
	for _, partial := range partials {
		for name, entry := range partial {
			extract.KeepBest(index, name, entry)
		}
	}
	return index, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apidrift/apidrift"
	"github.com/apidrift/apidrift/internal/cmdutil"
	"github.com/apidrift/apidrift/pkg/conflicts"
	"github.com/apidrift/apidrift/pkg/logging"
)

var reconcileFlags struct {
	docsPath    string
	codePath    string
	githubPath  string
	topicsPath  string
	outputPath  string
	threshold   float64
	concurrency int
}

// reconcileCmd runs the full reconciliation pipeline.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile documentation, code, and issue sources into one result",
	Long: `Reconcile loads pre-parsed documentation pages and code-analysis
records, detects conflicts between them, links issue-tracker activity to
the APIs it concerns, and writes the merged result as JSON.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pages, err := cmdutil.LoadPages(reconcileFlags.docsPath)
		if err != nil {
			return fmt.Errorf("loading documentation pages: %w", err)
		}

		analyses, err := cmdutil.LoadAnalyses(reconcileFlags.codePath)
		if err != nil {
			return fmt.Errorf("loading code analysis: %w", err)
		}

		insights := cmdutil.LoadInsights(reconcileFlags.githubPath)
		if reconcileFlags.githubPath != "" && insights == nil {
			logging.Warn().
				Str("path", reconcileFlags.githubPath).
				Msg("GitHub insights layer unreadable, continuing without it")
		}

		var topics []string
		if reconcileFlags.topicsPath != "" {
			topics, err = cmdutil.LoadTopics(reconcileFlags.topicsPath)
			if err != nil {
				return fmt.Errorf("loading topics: %w", err)
			}
		}

		pipeline, err := apidrift.New(
			apidrift.WithTopics(topics...),
			apidrift.WithInsights(insights),
			apidrift.WithSimilarityThreshold(reconcileFlags.threshold),
			apidrift.WithConcurrency(reconcileFlags.concurrency),
		)
		if err != nil {
			return err
		}

		result, err := pipeline.Run(cmd.Context(), pages, analyses)
		if err != nil {
			return err
		}

		return cmdutil.WriteJSON(reconcileFlags.outputPath, result.Merge)
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().StringVar(&reconcileFlags.docsPath, "docs", "", "documentation pages JSON file (list or mapping)")
	reconcileCmd.Flags().StringVar(&reconcileFlags.codePath, "code", "", "code-analysis records JSON file")
	reconcileCmd.Flags().StringVar(&reconcileFlags.githubPath, "github", "", "optional GitHub insights JSON file")
	reconcileCmd.Flags().StringVar(&reconcileFlags.topicsPath, "topics", "", "optional topic vocabulary YAML file")
	reconcileCmd.Flags().StringVarP(&reconcileFlags.outputPath, "output", "o", "", "output file (default stdout)")
	reconcileCmd.Flags().Float64Var(&reconcileFlags.threshold, "similarity-threshold", conflicts.SimilarityThreshold, "parameter-name similarity threshold")
	reconcileCmd.Flags().IntVar(&reconcileFlags.concurrency, "concurrency", 8, "max concurrent page extractions")

	cobra.CheckErr(reconcileCmd.MarkFlagRequired("docs"))
	cobra.CheckErr(reconcileCmd.MarkFlagRequired("code"))
}

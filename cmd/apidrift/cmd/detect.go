package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apidrift/apidrift/internal/cmdutil"
	"github.com/apidrift/apidrift/pkg/conflicts"
	"github.com/apidrift/apidrift/pkg/extract"
)

var detectFlags struct {
	docsPath   string
	codePath   string
	outputPath string
	threshold  float64
}

// detectCmd runs conflict detection only, without merging.
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect conflicts between documentation and code",
	Long: `Detect extracts API indexes from both sources and reports every
disagreement — undocumented APIs, documented-but-missing APIs, and
signature mismatches — without producing a merged result.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		pages, err := cmdutil.LoadPages(detectFlags.docsPath)
		if err != nil {
			return fmt.Errorf("loading documentation pages: %w", err)
		}

		analyses, err := cmdutil.LoadAnalyses(detectFlags.codePath)
		if err != nil {
			return fmt.Errorf("loading code analysis: %w", err)
		}

		docIndex := extract.NewDocExtractor().Extract(pages)
		codeIndex := extract.BuildCodeIndex(analyses)

		detector := conflicts.NewDetector(docIndex, codeIndex,
			conflicts.WithSimilarityThreshold(detectFlags.threshold))
		conflictList := detector.DetectAll()

		return cmdutil.WriteJSON(detectFlags.outputPath, struct {
			Conflicts []conflicts.Conflict `json:"conflicts"`
			Summary   conflicts.Summary    `json:"summary"`
		}{
			Conflicts: conflictList,
			Summary:   conflicts.Summarize(conflictList),
		})
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVar(&detectFlags.docsPath, "docs", "", "documentation pages JSON file (list or mapping)")
	detectCmd.Flags().StringVar(&detectFlags.codePath, "code", "", "code-analysis records JSON file")
	detectCmd.Flags().StringVarP(&detectFlags.outputPath, "output", "o", "", "output file (default stdout)")
	detectCmd.Flags().Float64Var(&detectFlags.threshold, "similarity-threshold", conflicts.SimilarityThreshold, "parameter-name similarity threshold")

	cobra.CheckErr(detectCmd.MarkFlagRequired("docs"))
	cobra.CheckErr(detectCmd.MarkFlagRequired("code"))
}

package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/analysis"
	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/internal/research"
	"github.com/sells-group/salesfit/internal/store"
)

var (
	analyzeSeller     string
	analyzeTarget     string
	analyzeSellerDesc string
	analyzeTargetDesc string
	analyzeEnrich     bool
	analyzeNoSave     bool
	analyzeOutput     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze sales fit for a single seller/target pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("analyze"); err != nil {
			return err
		}

		var st store.Store
		if !analyzeNoSave {
			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			if err := s.Migrate(ctx); err != nil {
				s.Close()
				return eris.Wrap(err, "migrate store")
			}
			st = s
			defer st.Close()
		}

		analyzer, err := initAnalyzer(st, analyzeEnrich)
		if err != nil {
			return err
		}

		seller := model.Company{Name: analyzeSeller, Description: analyzeSellerDesc}
		target := model.Company{Name: analyzeTarget, Description: analyzeTargetDesc}
		data := research.Assemble(seller, target)

		result, err := analyzer.Analyze(ctx, analysis.Request{
			Seller:   seller,
			Target:   target,
			Research: &data,
		})
		if err != nil {
			return eris.Wrap(err, "analyze")
		}

		zap.L().Info("analysis complete",
			zap.String("verdict", string(result.Compatibility.Verdict)),
			zap.Int("overall", result.Scorecard.Overall),
		)

		return printAnalysisJSON(result, analyzeOutput)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSeller, "seller", "", "seller company name (required)")
	analyzeCmd.Flags().StringVar(&analyzeTarget, "target", "", "target company name (required)")
	analyzeCmd.Flags().StringVar(&analyzeSellerDesc, "seller-description", "", "seller business description")
	analyzeCmd.Flags().StringVar(&analyzeTargetDesc, "target-description", "", "target business description")
	analyzeCmd.Flags().BoolVar(&analyzeEnrich, "enrich", false, "enrich report narrative via the Anthropic API")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "skip persisting the analysis")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "write JSON to file instead of stdout")
	analyzeCmd.MarkFlagRequired("seller")
	analyzeCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(analyzeCmd)
}

func printAnalysisJSON(v any, path string) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "marshal analysis")
	}
	if path == "" {
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return eris.Wrap(err, "write output file")
	}
	zap.L().Info("wrote analysis", zap.String("path", path))
	return nil
}

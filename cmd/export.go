package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/export"
	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/internal/store"
)

var (
	exportOut     string
	exportSeller  string
	exportTarget  string
	exportVerdict string
	exportLimit   int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored analyses to CSV, XLSX, or JSON",
	Long:  "Exports analyses from the store. The output format follows the file extension (.csv, .xlsx, .json).",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("export"); err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		analyses, err := st.ListAnalyses(ctx, store.AnalysisFilter{
			Seller:  exportSeller,
			Target:  exportTarget,
			Verdict: model.Verdict(exportVerdict),
			Limit:   exportLimit,
		})
		if err != nil {
			return eris.Wrap(err, "list analyses")
		}
		if len(analyses) == 0 {
			zap.L().Info("no analyses match the filter")
			return nil
		}

		if err := export.Write(analyses, exportOut); err != nil {
			return err
		}

		zap.L().Info("export complete",
			zap.Int("analyses", len(analyses)),
			zap.String("path", exportOut),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (required)")
	exportCmd.Flags().StringVar(&exportSeller, "seller", "", "filter by seller name")
	exportCmd.Flags().StringVar(&exportTarget, "target", "", "filter by target name")
	exportCmd.Flags().StringVar(&exportVerdict, "verdict", "", "filter by verdict")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "max analyses to export (0 = all)")
	exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/crm"
	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/internal/store"
)

var (
	pushSeller  string
	pushVerdict string
	pushLimit   int
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push stored analyses to Salesforce",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		sfClient, err := initSalesforce()
		if err != nil {
			return err
		}

		analyses, err := st.ListAnalyses(ctx, store.AnalysisFilter{
			Seller:  pushSeller,
			Verdict: model.Verdict(pushVerdict),
			Limit:   pushLimit,
		})
		if err != nil {
			return eris.Wrap(err, "list analyses")
		}
		if len(analyses) == 0 {
			zap.L().Info("no analyses match the filter")
			return nil
		}

		result, err := crm.NewPusher(sfClient).Push(ctx, analyses)
		if err != nil {
			return err
		}

		zap.L().Info("push complete",
			zap.Int("pushed", result.Pushed),
			zap.Int("failed", result.Failed),
			zap.Int("accounts", result.Accounts),
		)
		return nil
	},
}

func init() {
	pushCmd.Flags().StringVar(&pushSeller, "seller", "", "filter by seller name")
	pushCmd.Flags().StringVar(&pushVerdict, "verdict", "", "filter by verdict")
	pushCmd.Flags().IntVar(&pushLimit, "limit", 0, "max analyses to push (0 = all)")
	rootCmd.AddCommand(pushCmd)
}

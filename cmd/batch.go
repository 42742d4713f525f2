package main

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/salesfit/internal/analysis"
	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/internal/research"
	"github.com/sells-group/salesfit/internal/resilience"
	"github.com/sells-group/salesfit/internal/store"
)

var (
	batchCSV     string
	batchFromDLQ string
	batchLimit   int
	batchEnrich  bool
	batchOutput  string
	batchDLQ     string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze seller/target pairs from a CSV file",
	Long: `Reads a CSV of company pairs and runs the full analysis on each.

The CSV needs a header row with at least "seller" and "target" columns;
"seller_description" and "target_description" are picked up when present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("batch"); err != nil {
			return err
		}

		var (
			pairs []pair
			err   error
		)
		switch {
		case batchCSV != "" && batchFromDLQ != "":
			return eris.New("batch: --csv and --from-dlq are mutually exclusive")
		case batchCSV != "":
			pairs, err = parsePairsCSV(batchCSV)
			if err != nil {
				return eris.Wrap(err, "batch: parse csv")
			}
		case batchFromDLQ != "":
			pairs, err = pairsFromDLQ(batchFromDLQ)
			if err != nil {
				return eris.Wrap(err, "batch: read dead letter file")
			}
		default:
			return eris.New("batch: either --csv or --from-dlq is required")
		}
		if batchLimit > 0 && len(pairs) > batchLimit {
			pairs = pairs[:batchLimit]
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		// The batch path persists in one bulk write at the end rather
		// than per pair, so the analyzer runs storeless.
		analyzer, err := initAnalyzer(nil, batchEnrich)
		if err != nil {
			return err
		}

		results, failures, err := processBatch(ctx, analyzer, pairs, cfg.Batch.MaxConcurrentPairs)
		if err != nil {
			return err
		}

		if err := persistResults(ctx, st, results); err != nil {
			return err
		}

		if batchDLQ != "" {
			if err := resilience.AppendDLQ(batchDLQ, failures); err != nil {
				return eris.Wrap(err, "batch: write dead letter file")
			}
			if len(failures) > 0 {
				zap.L().Info("wrote dead letter entries",
					zap.Int("entries", len(failures)),
					zap.String("path", batchDLQ),
				)
			}
		}

		if batchOutput != "" {
			return printAnalysisJSON(results, batchOutput)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchCSV, "csv", "", "CSV file of seller/target pairs")
	batchCmd.Flags().StringVar(&batchFromDLQ, "from-dlq", "", "retry pairs from a dead letter file instead of reading a CSV")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of pairs to process (0 = all)")
	batchCmd.Flags().BoolVar(&batchEnrich, "enrich", false, "enrich report narratives via the Anthropic API")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "write all results as JSON to file")
	batchCmd.Flags().StringVar(&batchDLQ, "dlq", "", "append failed pairs to this dead letter file")
	rootCmd.AddCommand(batchCmd)
}

// pair is one seller/target combination queued for analysis.
type pair struct {
	Seller  model.Company
	Target  model.Company
	retries int
}

// pairsFromDLQ loads retryable pairs from a dead letter file.
func pairsFromDLQ(path string) ([]pair, error) {
	entries, err := resilience.ReadDLQ(path, resilience.DLQFilter{ErrorType: "transient"})
	if err != nil {
		return nil, err
	}

	var pairs []pair
	for _, e := range entries {
		if !e.CanRetry() {
			zap.L().Debug("skipping exhausted dead letter entry",
				zap.String("seller", e.Seller),
				zap.String("target", e.Target),
				zap.Int("retry_count", e.RetryCount),
			)
			continue
		}
		pairs = append(pairs, pair{
			Seller:  model.Company{Name: e.Seller},
			Target:  model.Company{Name: e.Target},
			retries: e.RetryCount + 1,
		})
	}
	return pairs, nil
}

// parsePairsCSV reads company pairs from a headered CSV file.
func parsePairsCSV(path string) ([]pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "open csv")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrap(err, "read csv header")
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	sellerIdx, okSeller := col["seller"]
	targetIdx, okTarget := col["target"]
	if !okSeller || !okTarget {
		return nil, eris.New("csv header must contain seller and target columns")
	}

	field := func(record []string, idx int, ok bool) string {
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}
	sellerDescIdx, okSellerDesc := col["seller_description"]
	targetDescIdx, okTargetDesc := col["target_description"]

	var pairs []pair
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "read csv record")
		}

		p := pair{
			Seller: model.Company{
				Name:        field(record, sellerIdx, true),
				Description: field(record, sellerDescIdx, okSellerDesc),
			},
			Target: model.Company{
				Name:        field(record, targetIdx, true),
				Description: field(record, targetDescIdx, okTargetDesc),
			},
		}
		if p.Seller.Name == "" || p.Target.Name == "" {
			continue
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

// persistResults saves a completed batch through the store's bulk path.
func persistResults(ctx context.Context, st store.Store, results []*model.Analysis) error {
	if len(results) == 0 {
		return nil
	}

	analyses := make([]model.Analysis, len(results))
	for i, r := range results {
		analyses[i] = *r
	}
	if err := st.SaveAnalyses(ctx, analyses); err != nil {
		return eris.Wrap(err, "batch: persist analyses")
	}

	zap.L().Info("persisted batch results", zap.Int("analyses", len(analyses)))
	return nil
}

// processBatch analyzes pairs concurrently. Individual failures are logged,
// counted, and returned as dead letter entries without aborting the rest of
// the batch.
func processBatch(ctx context.Context, analyzer *analysis.Analyzer, pairs []pair, concurrency int) ([]*model.Analysis, []resilience.DLQEntry, error) {
	if len(pairs) == 0 {
		zap.L().Info("no pairs to analyze")
		return nil, nil, nil
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	zap.L().Info("processing batch",
		zap.Int("pairs", len(pairs)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	var results []*model.Analysis
	var failures []resilience.DLQEntry
	var succeeded, failed atomic.Int64

	for _, p := range pairs {
		g.Go(func() error {
			log := zap.L().With(
				zap.String("seller", p.Seller.Name),
				zap.String("target", p.Target.Name),
			)

			data := research.Assemble(p.Seller, p.Target)
			result, err := analyzer.Analyze(gctx, analysis.Request{
				Seller:   p.Seller,
				Target:   p.Target,
				Research: &data,
			})
			if err != nil {
				failed.Add(1)
				log.Error("analysis failed", zap.Error(err))
				now := time.Now().UTC()
				mu.Lock()
				failures = append(failures, resilience.DLQEntry{
					ID:           uuid.NewString(),
					Seller:       p.Seller.Name,
					Target:       p.Target.Name,
					Error:        err.Error(),
					ErrorType:    resilience.ClassifyError(err),
					RetryCount:   p.retries,
					MaxRetries:   3,
					NextRetryAt:  now.Add(15 * time.Minute),
					CreatedAt:    now,
					LastFailedAt: now,
				})
				mu.Unlock()
				return nil // don't abort batch on individual failure
			}

			succeeded.Add(1)
			log.Info("analysis complete",
				zap.String("verdict", string(result.Compatibility.Verdict)),
				zap.Int("overall", result.Scorecard.Overall),
			)

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return results, failures, nil
}

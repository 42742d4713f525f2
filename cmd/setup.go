package main

import (
	"context"
	"os"

	"github.com/k-capehart/go-salesforce/v3"
	"github.com/rotisserie/eris"

	"github.com/sells-group/salesfit/internal/analysis"
	"github.com/sells-group/salesfit/internal/classify"
	"github.com/sells-group/salesfit/internal/resilience"
	"github.com/sells-group/salesfit/internal/store"
	anthropicpkg "github.com/sells-group/salesfit/pkg/anthropic"
	sfpkg "github.com/sells-group/salesfit/pkg/salesforce"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "salesfit.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func initClassifier() (*classify.Classifier, error) {
	if cfg.Classify.RulesFile == "" {
		return classify.New(), nil
	}
	rules, err := classify.LoadRules(cfg.Classify.RulesFile)
	if err != nil {
		return nil, eris.Wrap(err, "load classification rules")
	}
	return classify.NewWithRules(rules), nil
}

// initAnalyzer wires the full pipeline. The provider is nil unless enrich
// is set, so deterministic runs never touch the Anthropic API.
func initAnalyzer(st store.Store, enrich bool) (*analysis.Analyzer, error) {
	classifier, err := initClassifier()
	if err != nil {
		return nil, err
	}

	var provider analysis.Provider
	if enrich {
		if err := cfg.Validate("enrich"); err != nil {
			return nil, err
		}
		provider = analysis.NewClaudeProvider(
			anthropicpkg.NewClient(cfg.Anthropic.Key),
			analysis.ClaudeProviderConfig{
				Model:             cfg.Anthropic.Model,
				MaxTokens:         cfg.Anthropic.MaxTokens,
				RequestsPerMinute: cfg.Anthropic.RequestsPerMinute,
				Retry: resilience.FromRetryConfig(
					cfg.Anthropic.RetryMaxAttempts,
					cfg.Anthropic.RetryInitialBackoffMs,
					cfg.Anthropic.RetryMaxBackoffMs,
					0, 0,
				),
				Breaker: resilience.FromCircuitConfig(
					cfg.Anthropic.BreakerFailureThreshold,
					cfg.Anthropic.BreakerResetTimeoutSecs,
				),
			},
		)
	}

	return analysis.NewWithClassifier(classifier, st, provider), nil
}

func initSalesforce() (sfpkg.Client, error) {
	if err := cfg.Validate("push"); err != nil {
		return nil, err
	}

	pemData, err := os.ReadFile(cfg.Salesforce.KeyPath)
	if err != nil {
		return nil, eris.Wrap(err, "read salesforce JWT private key")
	}

	sf, err := salesforce.Init(salesforce.Creds{
		Domain:         cfg.Salesforce.LoginURL,
		Username:       cfg.Salesforce.Username,
		ConsumerKey:    cfg.Salesforce.ClientID,
		ConsumerRSAPem: string(pemData),
	})
	if err != nil {
		return nil, eris.Wrap(err, "init salesforce")
	}

	return sfpkg.NewClient(sf), nil
}

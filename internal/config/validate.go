package config

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Validate checks the configuration for the given run mode. Modes gate
// which sections must be populated: "analyze" and "batch" need a store,
// "serve" additionally needs a usable port, "push" needs Salesforce
// credentials, "enrich" needs an Anthropic key.
func (c *Config) Validate(mode string) error {
	var problems []string

	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	checkCommon := func() {
		check(c.Store.Driver == "sqlite" || c.Store.Driver == "postgres",
			"store.driver must be sqlite or postgres")
		check(c.Store.DatabaseURL != "", "store.database_url is required")
		check(c.Batch.MaxConcurrentPairs >= 1 && c.Batch.MaxConcurrentPairs <= 50,
			"batch.max_concurrent_pairs must be between 1 and 50")
	}

	switch mode {
	case "analyze", "batch", "export":
		checkCommon()
	case "serve":
		checkCommon()
		check(c.Server.Port > 0, "server.port must be > 0")
	case "enrich":
		check(c.Anthropic.Key != "", "anthropic.key is required")
		check(c.Anthropic.RequestsPerMinute > 0, "anthropic.requests_per_minute must be > 0")
	case "push":
		check(c.Salesforce.ClientID != "", "salesforce.client_id is required")
		check(c.Salesforce.Username != "", "salesforce.username is required")
		check(c.Salesforce.KeyPath != "", "salesforce.key_path is required")
	default:
		return eris.New("config: unknown mode " + mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

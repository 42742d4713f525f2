// Package crm pushes completed analyses into Salesforce as custom
// Sales_Fit_Analysis__c records attached to target Accounts.
package crm

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/pkg/salesforce"
)

// analysisObject is the custom SObject that holds pushed analyses.
const analysisObject = "Sales_Fit_Analysis__c"

// Pusher syncs analyses to Salesforce.
type Pusher struct {
	client salesforce.Client
}

// NewPusher creates a Pusher over a Salesforce client.
func NewPusher(client salesforce.Client) *Pusher {
	return &Pusher{client: client}
}

// PushResult summarizes one push run.
type PushResult struct {
	Pushed   int
	Failed   int
	Accounts int // accounts created because no match existed
}

// Push writes one record per analysis, resolving or creating the target
// company Account first. Individual record failures are logged and
// counted, not fatal; only transport-level errors abort the run.
func (p *Pusher) Push(ctx context.Context, analyses []model.Analysis) (PushResult, error) {
	var result PushResult
	if len(analyses) == 0 {
		return result, nil
	}

	accountIDs := make(map[string]string)
	records := make([]map[string]any, 0, len(analyses))
	for i := range analyses {
		a := &analyses[i]

		accountID, ok := accountIDs[a.TargetCompany]
		if !ok {
			id, created, err := p.resolveAccount(ctx, a.TargetCompany)
			if err != nil {
				return result, eris.Wrap(err, "crm: resolve target account")
			}
			if created {
				result.Accounts++
			}
			accountIDs[a.TargetCompany] = id
			accountID = id
		}

		records = append(records, analysisRecord(a, accountID))
	}

	results, err := p.client.InsertCollection(ctx, analysisObject, records)
	if err != nil {
		return result, eris.Wrap(err, "crm: insert analysis records")
	}

	for i, r := range results {
		if r.Success {
			result.Pushed++
			continue
		}
		result.Failed++
		zap.L().Warn("crm: analysis record rejected",
			zap.String("analysis_id", analyses[i].ID),
			zap.Strings("errors", r.Errors))
	}

	zap.L().Info("crm: push completed",
		zap.Int("pushed", result.Pushed),
		zap.Int("failed", result.Failed),
		zap.Int("accounts_created", result.Accounts))
	return result, nil
}

// resolveAccount finds the Account for a company name, creating a minimal
// one when none exists. Returns the account ID and whether it was created.
func (p *Pusher) resolveAccount(ctx context.Context, company string) (string, bool, error) {
	account, err := salesforce.FindAccountByName(ctx, p.client, company)
	if err != nil {
		return "", false, err
	}
	if account != nil {
		return account.ID, false, nil
	}

	id, err := salesforce.CreateAccount(ctx, p.client, map[string]any{"Name": company})
	if err != nil {
		return "", false, eris.Wrap(err, fmt.Sprintf("crm: create account %s", company))
	}
	return id, true, nil
}

// analysisRecord maps an analysis to the custom object's field set.
func analysisRecord(a *model.Analysis, accountID string) map[string]any {
	record := map[string]any{
		"Name":             fmt.Sprintf("%s -> %s", a.SellerCompany, a.TargetCompany),
		"Account__c":       accountID,
		"Analysis_Id__c":   a.ID,
		"Seller__c":        a.SellerCompany,
		"Target__c":        a.TargetCompany,
		"Verdict__c":       string(a.Compatibility.Verdict),
		"Overall_Score__c": a.Scorecard.Overall,
		"Analyzed_At__c":   a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if a.ValidationReport != nil {
		record["Confidence__c"] = string(a.ValidationReport.ConfidenceLevel)
	}
	if a.CompetitiveImpact != nil {
		record["Competition_Type__c"] = string(a.CompetitiveImpact.CompetitionType)
	}
	return record
}

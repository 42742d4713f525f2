package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/config"
)

// AlertType identifies the kind of alert.
type AlertType string

const (
	AlertIncompatibleRate AlertType = "incompatible_rate"
	AlertLowConfidence    AlertType = "low_confidence_rate"
)

// Alert represents a single alert to be sent.
type Alert struct {
	Type      AlertType      `json:"type"`
	Severity  string         `json:"severity"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Alerter evaluates a MetricsSnapshot against configured thresholds
// and sends alerts via webhook when thresholds are breached.
type Alerter struct {
	cfg    config.MonitoringConfig
	client *http.Client
}

// NewAlerter creates a new Alerter with the given monitoring config.
func NewAlerter(cfg config.MonitoringConfig) *Alerter {
	return &Alerter{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Evaluate checks the snapshot against thresholds and returns any alerts.
// Rate checks need at least 5 analyses in the window to avoid noise.
func (a *Alerter) Evaluate(snap *MetricsSnapshot) []Alert {
	var alerts []Alert
	now := time.Now().UTC()

	if snap.AnalysesTotal >= 5 && snap.IncompatibleRate > a.cfg.IncompatibleRateThreshold {
		alerts = append(alerts, Alert{
			Type:     AlertIncompatibleRate,
			Severity: "high",
			Message: fmt.Sprintf(
				"Incompatible verdict rate %.1f%% exceeds threshold %.1f%% (%d of %d analyses in last %dh)",
				snap.IncompatibleRate*100, a.cfg.IncompatibleRateThreshold*100,
				snap.Incompatible, snap.AnalysesTotal, snap.LookbackHours,
			),
			Details: map[string]any{
				"incompatible_rate": snap.IncompatibleRate,
				"threshold":         a.cfg.IncompatibleRateThreshold,
				"incompatible":      snap.Incompatible,
				"total":             snap.AnalysesTotal,
			},
			Timestamp: now,
		})
	}

	if snap.AnalysesTotal >= 5 && snap.LowConfidenceRate > a.cfg.LowConfidenceThreshold {
		alerts = append(alerts, Alert{
			Type:     AlertLowConfidence,
			Severity: "medium",
			Message: fmt.Sprintf(
				"Low confidence rate %.1f%% exceeds threshold %.1f%% (%d of %d analyses in last %dh)",
				snap.LowConfidenceRate*100, a.cfg.LowConfidenceThreshold*100,
				snap.LowConfidence, snap.AnalysesTotal, snap.LookbackHours,
			),
			Details: map[string]any{
				"low_confidence_rate": snap.LowConfidenceRate,
				"threshold":           a.cfg.LowConfidenceThreshold,
				"low_confidence":      snap.LowConfidence,
				"total":               snap.AnalysesTotal,
			},
			Timestamp: now,
		})
	}

	return alerts
}

// SendAlerts delivers alerts to the configured webhook URL.
// Returns the number of alerts successfully sent.
func (a *Alerter) SendAlerts(ctx context.Context, alerts []Alert) int {
	if a.cfg.WebhookURL == "" || len(alerts) == 0 {
		return 0
	}

	sent := 0
	for _, alert := range alerts {
		if err := a.sendWebhook(ctx, alert); err != nil {
			zap.L().Error("monitoring: failed to send alert",
				zap.String("type", string(alert.Type)),
				zap.Error(err),
			)
			continue
		}
		zap.L().Info("monitoring: alert sent",
			zap.String("type", string(alert.Type)),
			zap.String("severity", alert.Severity),
		)
		sent++
	}
	return sent
}

// sendWebhook posts a single alert to the webhook URL.
func (a *Alerter) sendWebhook(ctx context.Context, alert Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return eris.Wrap(err, "monitoring: marshal alert")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "monitoring: create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return eris.Wrap(err, "monitoring: webhook request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return eris.Errorf("monitoring: webhook returned status %d", resp.StatusCode)
	}
	return nil
}

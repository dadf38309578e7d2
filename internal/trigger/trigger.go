// Package trigger calls the alert scan endpoint on a cron schedule.
package trigger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gestman-backend/internal/logger"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const runTimeout = 2 * time.Minute

// ScanSummary mirrors the counters returned by the scan endpoint
type ScanSummary struct {
	Evaluated int `json:"evaluated"`
	Created   int `json:"alerts_created"`
	Skipped   int `json:"skipped_duplicates"`
}

// Trigger posts to the scan endpoint
type Trigger struct {
	url    string
	client *http.Client
}

// New creates a trigger for the given endpoint
func New(url string, client *http.Client) *Trigger {
	if client == nil {
		client = &http.Client{Timeout: runTimeout}
	}
	return &Trigger{url: url, client: client}
}

// Run performs one scan request
func (t *Trigger) Run(ctx context.Context) (*ScanSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build scan request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Operator", "alert-trigger")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scan request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read scan response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scan returned status %d: %s", resp.StatusCode, string(body))
	}

	var summary ScanSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode scan response: %w", err)
	}
	return &summary, nil
}

// Schedule registers the trigger on a cron that skips a run while the previous one is still going
func Schedule(spec string, t *Trigger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { t.runLogged() }); err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}
	return c, nil
}

func (t *Trigger) runLogged() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	log := logger.WithContext(ctx).WithField("url", t.url)
	summary, err := t.Run(ctx)
	if err != nil {
		log.WithError(err).Error("Alert scan failed")
		return
	}
	log.WithFields(logrus.Fields{
		"evaluated": summary.Evaluated,
		"created":   summary.Created,
		"skipped":   summary.Skipped,
	}).Info("Alert scan completed")
}

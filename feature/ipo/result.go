package ipo

import (
	"time"

	"ipo-tracker/feature/ipo/archive"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/store"
)

// SyncResult is the outcome of syncing one source.
//
// Processed counts every native record seen, including those that failed, so
// Processed == Added + Updated + Skipped + len(Errors) unless the source itself failed.
type SyncResult struct {
	Source     string    `json:"source"`
	RunID      string    `json:"runId"`
	Success    bool      `json:"success"`
	Processed  int       `json:"processed"`
	Added      int       `json:"added"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	Errors     []string  `json:"errors"`
	Snapshot   string    `json:"snapshot,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// SyncSummary aggregates the results of a SyncAll run, in source registration order.
type SyncSummary struct {
	Success   bool          `json:"success"`
	Processed int           `json:"processed"`
	Added     int           `json:"added"`
	Updated   int           `json:"updated"`
	Skipped   int           `json:"skipped"`
	Errors    int           `json:"errors"`
	Results   []*SyncResult `json:"results"`
}

func summarize(results []*SyncResult) *SyncSummary {
	sum := &SyncSummary{Success: true, Results: results}
	for _, r := range results {
		sum.Success = sum.Success && r.Success
		sum.Processed += r.Processed
		sum.Added += r.Added
		sum.Updated += r.Updated
		sum.Skipped += r.Skipped
		sum.Errors += len(r.Errors)
	}
	return sum
}

func (r *SyncResult) toRun() *store.SyncRun {
	return &store.SyncRun{
		RunID:      r.RunID,
		Source:     r.Source,
		Success:    r.Success,
		Processed:  r.Processed,
		Added:      r.Added,
		Updated:    r.Updated,
		Skipped:    r.Skipped,
		Errors:     r.Errors,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

// StatusReport is the read-only sync status.
type StatusReport struct {
	Sources     []string            `json:"sources"`
	Markets     []models.MarketStat `json:"markets"`
	LastRuns    []store.SyncRun     `json:"lastRuns"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

// StockPage is one page of the stock listing.
type StockPage struct {
	Items  []models.Stock `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// SnapshotList is the archived payloads of one source.
type SnapshotList struct {
	Source    string             `json:"source"`
	Snapshots []archive.Snapshot `json:"snapshots"`
}

package domain

import (
	"encoding/json"
	"time"
)

// Statuses used by probe results. Website probes report up/down, store
// probes ok/error.
const (
	StatusUp    = "up"
	StatusDown  = "down"
	StatusOK    = "ok"
	StatusError = "error"
)

// WebsiteResult is the outcome of probing one website target.
// StatusCode is 0 when no response was received; ResponseTimeMillis is the
// elapsed wall-clock time of the attempt, success or failure.
type WebsiteResult struct {
	Name               string    `json:"name"`
	Status             string    `json:"status"`
	StatusCode         int       `json:"statusCode"`
	ResponseTimeMillis int64     `json:"responseTimeMillis"`
	Message            string    `json:"message"`
	Timestamp          time.Time `json:"timestamp"`
}

// ShareResult is the outcome of probing one file store target.
// DirectoryBreakdown is present exactly when the target configured an
// explicit directories list.
type ShareResult struct {
	Name               string                    `json:"name"`
	Status             string                    `json:"status"`
	FileCount          int                       `json:"fileCount"`
	DirectoryBreakdown map[string]BreakdownEntry `json:"directoryBreakdown,omitempty"`
	Message            string                    `json:"message"`
	Timestamp          time.Time                 `json:"timestamp"`
}

// BreakdownEntry is one requested directory's slot in a ShareResult: either
// the directory's aggregate or the error that aborted its traversal.
type BreakdownEntry struct {
	Count      int        `json:"count"`
	OldestFile *time.Time `json:"oldestFileTimestamp"`
	NewestFile *time.Time `json:"newestFileTimestamp"`
	Err        string     `json:"error,omitempty"`
}

// AggregateEntry builds the success form of a breakdown entry.
func AggregateEntry(agg DirectoryAggregate) BreakdownEntry {
	return BreakdownEntry{Count: agg.Count, OldestFile: agg.OldestFile, NewestFile: agg.NewestFile}
}

// ErrorEntry builds the failure form of a breakdown entry.
func ErrorEntry(msg string) BreakdownEntry { return BreakdownEntry{Err: msg} }

// MarshalJSON renders exactly one of the two entry shapes:
// {"error": "..."} for a failed directory, or
// {"count": n, "oldestFileTimestamp": ..., "newestFileTimestamp": ...}.
func (e BreakdownEntry) MarshalJSON() ([]byte, error) {
	if e.Err != "" {
		return json.Marshal(struct {
			Err string `json:"error"`
		}{e.Err})
	}
	return json.Marshal(struct {
		Count      int        `json:"count"`
		OldestFile *time.Time `json:"oldestFileTimestamp"`
		NewestFile *time.Time `json:"newestFileTimestamp"`
	}{e.Count, e.OldestFile, e.NewestFile})
}

// Snapshot is the immutable outcome of one monitoring cycle: one entry per
// configured target, keyed by the target's Key(). Published wholesale; never
// mutated after assembly.
type Snapshot struct {
	WebsiteResults map[string]WebsiteResult `json:"websiteResults"`
	StoreResults   map[string]ShareResult   `json:"storeResults"`
	LastUpdate     time.Time                `json:"lastUpdate"`
}

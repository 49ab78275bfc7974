package domain

import "time"

// SyncResult is the outcome envelope returned by every sync run.
type SyncResult struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Count     int           `json:"count"`
	Skipped   int           `json:"skipped,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"-"`
}

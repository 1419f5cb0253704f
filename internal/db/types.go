package db

import "time"

// Store is the persistence interface for the run history.
type Store interface {
	Close() error
	SaveRun(run Run) error
	RecentRuns(limit int) ([]Run, error)
}

// Run is one recorded report aggregation.
type Run struct {
	ID        int64     `json:"id"`
	Report    string    `json:"report"`
	Tests     int       `json:"tests"`
	Failures  int       `json:"failures"`
	TimeS     float64   `json:"time_s"`
	CreatedAt time.Time `json:"created_at"`
}

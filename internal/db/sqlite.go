package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		report TEXT NOT NULL,
		tests INTEGER NOT NULL,
		failures INTEGER NOT NULL,
		time_s REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun appends one recorded run.
func (s *SQLiteStore) SaveRun(run Run) error {
	query := `INSERT INTO runs (report, tests, failures, time_s, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.Exec(query, run.Report, run.Tests, run.Failures, run.TimeS, time.Now())
	return err
}

// RecentRuns retrieves the most recently recorded runs, newest first.
func (s *SQLiteStore) RecentRuns(limit int) ([]Run, error) {
	query := `SELECT id, report, tests, failures, time_s, created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Report, &run.Tests, &run.Failures, &run.TimeS, &run.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, run)
	}
	return results, rows.Err()
}

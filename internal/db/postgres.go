package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL. It exists for teams
// that share one history database across CI workers.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id SERIAL PRIMARY KEY,
		report TEXT NOT NULL,
		tests INTEGER NOT NULL,
		failures INTEGER NOT NULL,
		time_s DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveRun appends one recorded run.
func (s *PostgresStore) SaveRun(run Run) error {
	query := `INSERT INTO runs (report, tests, failures, time_s, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := s.db.Exec(query, run.Report, run.Tests, run.Failures, run.TimeS, time.Now())
	return err
}

// RecentRuns retrieves the most recently recorded runs, newest first.
func (s *PostgresStore) RecentRuns(limit int) ([]Run, error) {
	query := `SELECT id, report, tests, failures, time_s, created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT $1`
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

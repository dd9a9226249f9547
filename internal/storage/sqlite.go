// Package storage provides SQLite-based persistence for search run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is a single recorded search.
type Run struct {
	ID         int64
	Layout     string // layout ID, pattern ID or "custom"
	Size       int
	Outcome    string // "succeeded", "exhausted", "cancelled"
	PathLength int    // moves on the path, 0 when none was found
	Expanded   int
	Duration   time.Duration
	Policy     string
	CreatedAt  time.Time
}

// Stats summarizes the runs recorded for one layout.
type Stats struct {
	Runs        int
	Succeeded   int
	BestLength  int // 0 if no run succeeded
	AvgExpanded float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout TEXT NOT NULL,
			size INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			path_length INTEGER NOT NULL DEFAULT 0,
			expanded INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			policy TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_layout ON runs(layout);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(layout, outcome, path_length);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished search.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.Layout == "" {
		return 0, errors.New("storage: run has no layout")
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (layout, size, outcome, path_length, expanded, duration_ms, policy)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Layout, run.Size, run.Outcome, run.PathLength, run.Expanded,
		run.Duration.Milliseconds(), run.Policy,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, layout, size, outcome, path_length, expanded, duration_ms, policy, created_at`

// RecentRuns retrieves the latest N runs across all layouts, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// RunsByLayout retrieves the latest N runs for one layout, newest first.
func (s *Store) RunsByLayout(layout string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE layout = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		layout, limit,
	)
}

// BestRun returns the successful run with the shortest path for layout,
// preferring fewer expansions on ties. Returns nil if no run succeeded.
func (s *Store) BestRun(layout string) (*Run, error) {
	runs, err := s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE layout = ? AND outcome = 'succeeded'
		 ORDER BY path_length ASC, expanded ASC, id ASC
		 LIMIT 1`,
		layout,
	)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// LayoutStats aggregates every run recorded for layout.
func (s *Store) LayoutStats(layout string) (Stats, error) {
	var st Stats
	var best sql.NullInt64
	var avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'succeeded' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = 'succeeded' THEN path_length END),
		        AVG(expanded)
		 FROM runs
		 WHERE layout = ?`,
		layout,
	).Scan(&st.Runs, &st.Succeeded, &best, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		st.BestLength = int(best.Int64)
	}
	if avg.Valid {
		st.AvgExpanded = avg.Float64
	}
	return st, nil
}

// ClearRuns deletes the runs of layout, or every run when layout is empty.
func (s *Store) ClearRuns(layout string) error {
	var err error
	if layout == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE layout = ?", layout)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Layout, &r.Size, &r.Outcome, &r.PathLength,
			&r.Expanded, &durationMS, &r.Policy, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

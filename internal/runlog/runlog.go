// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runlog persists completed pipeline runs to a local SQLite
// database. It is the collaborator behind the pipeline's Sink interface;
// the pipeline core itself never touches storage.
package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

const dbFile = "runs.db"

// Store manages the run-log SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the run-log database at dir/runs.db, creating
// the schema if it does not exist.
func NewStore(cfg types.RunLogConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "runs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating run-log directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			query TEXT NOT NULL,
			num_papers INTEGER,
			elapsed_ms INTEGER,
			coverage REAL,
			depth REAL,
			structure REAL,
			overall REAL,
			plan_json TEXT,
			papers_json TEXT,
			summary_json TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// LogRun persists one run record: scalar params and metrics as columns,
// the plan, papers, and summary artifacts as JSON blobs.
func (s *Store) LogRun(ctx context.Context, rec types.RunRecord) error {
	planJSON, err := json.Marshal(rec.Plan)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	papersJSON, err := json.Marshal(rec.Papers)
	if err != nil {
		return fmt.Errorf("marshaling papers: %w", err)
	}
	summaryJSON, err := json.Marshal(rec.Summary)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (created_at, query, num_papers, elapsed_ms,
			coverage, depth, structure, overall,
			plan_json, papers_json, summary_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		rec.Query,
		len(rec.Papers),
		rec.Elapsed.Milliseconds(),
		rec.Eval.Coverage,
		rec.Eval.Depth,
		rec.Eval.Structure,
		rec.Eval.Overall,
		string(planJSON),
		string(papersJSON),
		string(summaryJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// Entry is one logged run as returned by List.
type Entry struct {
	CreatedAt string           `json:"created_at" yaml:"created_at"`
	Query     string           `json:"query" yaml:"query"`
	NumPapers int              `json:"num_papers" yaml:"num_papers"`
	ElapsedMS int64            `json:"elapsed_ms" yaml:"elapsed_ms"`
	Eval      types.EvalScores `json:"eval" yaml:"eval"`
}

// List returns the most recent logged runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT created_at, query, num_papers, elapsed_ms,
			coverage, depth, structure, overall
		 FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.CreatedAt, &e.Query, &e.NumPapers, &e.ElapsedMS,
			&e.Eval.Coverage, &e.Eval.Depth, &e.Eval.Structure, &e.Eval.Overall); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

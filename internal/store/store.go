// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists generated curricula in a SQLite database so runs
// can be listed, reloaded, and exported without regenerating.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/curriculum-engine/internal/pipeline"
	"github.com/pdiddy/curriculum-engine/pkg/types"
)

const dbFile = "curriculum.db"

// Store manages the curriculum SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the curriculum database at
// dataDir/curriculum.db, creating the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
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
		`CREATE TABLE IF NOT EXISTS curricula (
			discipline TEXT PRIMARY KEY,
			generated_at TEXT NOT NULL,
			target INTEGER NOT NULL,
			records_in INTEGER,
			concept_groups INTEGER,
			cluster_count INTEGER,
			edges_removed INTEGER,
			generated INTEGER,
			issue_count INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS subtopics (
			id TEXT NOT NULL,
			discipline TEXT NOT NULL REFERENCES curricula(discipline),
			cluster_id TEXT,
			title TEXT NOT NULL,
			tier TEXT,
			cognitive_level TEXT,
			prerequisites TEXT,
			sequence_index INTEGER NOT NULL,
			difficulty REAL,
			PRIMARY KEY (discipline, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_subtopics_discipline_seq
			ON subtopics(discipline, sequence_index)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save writes a pipeline result, replacing any previous curriculum for the
// same discipline.
func (s *Store) Save(ctx context.Context, res pipeline.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM subtopics WHERE discipline = ?`, res.Discipline); err != nil {
		return fmt.Errorf("deleting old subtopics: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO curricula (discipline, generated_at, target, records_in,
			concept_groups, cluster_count, edges_removed, generated, issue_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(discipline) DO UPDATE SET
			generated_at=excluded.generated_at, target=excluded.target,
			records_in=excluded.records_in, concept_groups=excluded.concept_groups,
			cluster_count=excluded.cluster_count, edges_removed=excluded.edges_removed,
			generated=excluded.generated, issue_count=excluded.issue_count`,
		res.Discipline, res.GeneratedAt.Format(time.RFC3339), res.Target,
		res.RecordsIn, res.ConceptGroups, res.ClusterCount,
		res.EdgesRemoved, res.Generated, res.IssueCount,
	)
	if err != nil {
		return fmt.Errorf("upserting curriculum: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO subtopics (id, discipline, cluster_id, title, tier,
			cognitive_level, prerequisites, sequence_index, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, sub := range res.Subtopics {
		prereqJSON, _ := json.Marshal(sub.Prerequisites)
		_, err := stmt.ExecContext(ctx,
			sub.ID, res.Discipline, sub.ClusterID, sub.Title, string(sub.Tier),
			string(sub.CognitiveLevel), string(prereqJSON),
			sub.SequenceIndex, sub.Difficulty,
		)
		if err != nil {
			return fmt.Errorf("inserting subtopic %s: %w", sub.ID, err)
		}
	}

	return tx.Commit()
}

// Summary describes one stored curriculum.
type Summary struct {
	Discipline  string    `json:"discipline" yaml:"discipline"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Target      int       `json:"target" yaml:"target"`
	Generated   int       `json:"generated" yaml:"generated"`
	IssueCount  int       `json:"issue_count" yaml:"issue_count"`
}

// List returns a summary of every stored curriculum, ordered by discipline.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT discipline, generated_at, target, generated, issue_count
		 FROM curricula ORDER BY discipline`)
	if err != nil {
		return nil, fmt.Errorf("querying curricula: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var generatedAt string
		if err := rows.Scan(&sum.Discipline, &generatedAt, &sum.Target,
			&sum.Generated, &sum.IssueCount); err != nil {
			return nil, fmt.Errorf("scanning curriculum row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, generatedAt); err == nil {
			sum.GeneratedAt = t
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Load returns the stored subtopic sequence for a discipline, in sequence
// order.
func (s *Store) Load(ctx context.Context, discipline string) ([]types.SubtopicRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, cluster_id, title, tier, cognitive_level, prerequisites,
			sequence_index, difficulty
		 FROM subtopics WHERE discipline = ? ORDER BY sequence_index`,
		discipline)
	if err != nil {
		return nil, fmt.Errorf("querying subtopics: %w", err)
	}
	defer rows.Close()

	var out []types.SubtopicRecord
	for rows.Next() {
		var sub types.SubtopicRecord
		var tier, cognitive, prereqJSON string
		if err := rows.Scan(&sub.ID, &sub.ClusterID, &sub.Title, &tier,
			&cognitive, &prereqJSON, &sub.SequenceIndex, &sub.Difficulty); err != nil {
			return nil, fmt.Errorf("scanning subtopic row: %w", err)
		}
		sub.Tier = types.Tier(tier)
		sub.CognitiveLevel = types.CognitiveLevel(cognitive)
		if prereqJSON != "" {
			if err := json.Unmarshal([]byte(prereqJSON), &sub.Prerequisites); err != nil {
				return nil, fmt.Errorf("parsing prerequisites for %s: %w", sub.ID, err)
			}
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no stored curriculum for %s", discipline)
	}
	return out, nil
}

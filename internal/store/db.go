package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"worldcup-dashboard/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// MatchStore mirrors the finals table into sqlite for the REST resources
type MatchStore struct {
	db *sql.DB
}

// Open opens the sqlite database and creates the schema if needed.
// The default DSN ":memory:" keeps everything in process memory.
func Open(dsn string) (*MatchStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// every connection to ":memory:" is a separate database
	db.SetMaxOpenConns(1)

	// Create tables if not exists
	matchTable := `
	CREATE TABLE IF NOT EXISTS matches (
		year INTEGER PRIMARY KEY,
		winner TEXT NOT NULL,
		runner_up TEXT NOT NULL
	);
	`
	if _, err := db.Exec(matchTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create matches table: %w", err)
	}

	return &MatchStore{db: db}, nil
}

// Close releases the database
func (s *MatchStore) Close() error {
	return s.db.Close()
}

// LoadMatches replaces the table contents with matches in one transaction
func (s *MatchStore) LoadMatches(ctx context.Context, matches []model.MatchRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("clear matches: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO matches (year, winner, runner_up) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range matches {
		if _, err = stmt.ExecContext(ctx, m.Year, m.Winner, m.RunnerUp); err != nil {
			return fmt.Errorf("insert %d: %w", m.Year, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}

// ListMatches returns all finals ordered by year
func (s *MatchStore) ListMatches(ctx context.Context) ([]model.MatchRecord, error) {
	return s.query(ctx, `SELECT year, winner, runner_up FROM matches ORDER BY year`)
}

// MatchesForTeam returns the finals team played in, ordered by year
func (s *MatchStore) MatchesForTeam(ctx context.Context, team string) ([]model.MatchRecord, error) {
	return s.query(ctx, `SELECT year, winner, runner_up FROM matches WHERE winner = ? OR runner_up = ? ORDER BY year`, team, team)
}

// FindMatch fetches the final played in year. The bool is false when there is none.
func (s *MatchStore) FindMatch(ctx context.Context, year int) (model.MatchRecord, bool, error) {
	var m model.MatchRecord
	err := s.db.QueryRowContext(ctx, `SELECT year, winner, runner_up FROM matches WHERE year = ?`, year).
		Scan(&m.Year, &m.Winner, &m.RunnerUp)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MatchRecord{}, false, nil
	}
	if err != nil {
		return model.MatchRecord{}, false, fmt.Errorf("find match %d: %w", year, err)
	}
	return m, true, nil
}

// TeamHistory summarises the finals a team reached, under the name it played as
func (s *MatchStore) TeamHistory(ctx context.Context, team string) (model.TeamHistory, error) {
	matches, err := s.MatchesForTeam(ctx, team)
	if err != nil {
		return model.TeamHistory{}, err
	}

	h := model.TeamHistory{Team: team, Appearances: matches}
	if h.Appearances == nil {
		h.Appearances = []model.MatchRecord{}
	}
	for _, m := range matches {
		if m.Winner == team {
			h.Titles++
		} else {
			h.RunnerUps++
		}
	}
	return h, nil
}

func (s *MatchStore) query(ctx context.Context, q string, args ...interface{}) ([]model.MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []model.MatchRecord
	for rows.Next() {
		var m model.MatchRecord
		if err := rows.Scan(&m.Year, &m.Winner, &m.RunnerUp); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

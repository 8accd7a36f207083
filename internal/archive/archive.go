// Package archive writes the append-only turn log to Postgres. The intake
// engine never reads it; it exists for audit and support tooling.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Turn is one archived conversation turn.
type Turn struct {
	ID        int64     `json:"id"`
	Identity  string    `json:"identity"`
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists turns via database/sql. A nil Store is a no-op archiver so
// deployments without Postgres skip archiving cleanly.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	if db == nil {
		return nil
	}
	return &Store{db: db}
}

// RecordTurn appends one turn to the log.
func (s *Store) RecordTurn(ctx context.Context, identity, speaker, text, state string) error {
	if s == nil || s.db == nil {
		return nil
	}
	if identity == "" {
		return errors.New("archive: identity required")
	}

	const q = `INSERT INTO intake_turns (identity, speaker, text, state, created_at)
	           VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.db.ExecContext(ctx, q, identity, speaker, text, state, time.Now().UTC()); err != nil {
		return fmt.Errorf("archive: insert turn: %w", err)
	}
	return nil
}

// ListTurns returns the most recent turns for an identity, oldest first.
func (s *Store) ListTurns(ctx context.Context, identity string, limit int) ([]Turn, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("archive: store not configured")
	}
	if limit <= 0 {
		limit = 100
	}

	const q = `SELECT id, identity, speaker, text, state, created_at
	           FROM intake_turns
	           WHERE identity = $1
	           ORDER BY id DESC
	           LIMIT $2`
	rows, err := s.db.QueryContext(ctx, q, identity, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: list turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.Identity, &t.Speaker, &t.Text, &t.State, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("archive: scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: iterate turns: %w", err)
	}

	// Reverse to oldest-first for readability.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

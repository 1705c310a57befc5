// Package store persists the small amount of client state that outlives a
// process: the access token under a single well-known key, and an append-only
// transcript audit trail.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/tripy/tripy-console/internal/database"
)

const tokenKey = "access_token"

// Store wraps the state database. All token operations fail open: an
// unavailable store reads as "no token" and never surfaces an error, so a
// broken local database can only ever demote the operator to anonymous.
type Store struct {
	db *sql.DB
}

// New wraps an open database. A nil db yields a store that behaves as empty.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadToken returns the persisted access token, or "" when absent or when the
// store is unavailable.
func (s *Store) LoadToken() string {
	if s.db == nil {
		return ""
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, tokenKey).Scan(&value)
	if err != nil {
		return ""
	}
	return value
}

// SaveToken upserts the access token.
func (s *Store) SaveToken(token string) {
	if s.db == nil {
		return
	}
	_, _ = s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		tokenKey, token, database.Now().Format(time.RFC3339),
	)
}

// ClearToken removes the persisted access token.
func (s *Store) ClearToken() {
	if s.db == nil {
		return
	}
	_, _ = s.db.Exec(`DELETE FROM kv WHERE key = ?`, tokenKey)
}

// TranscriptEntry is one audit row mirroring an in-memory conversation entry.
type TranscriptEntry struct {
	ID          string
	ThreadID    string
	Role        string
	Text        string
	Interrupted bool
	CreatedAt   time.Time
}

// AppendTranscript records a conversation entry. The audit trail is
// write-only from the console's point of view; the live message log never
// rehydrates from it.
func (s *Store) AppendTranscript(ctx context.Context, e TranscriptEntry) error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transcript (id, thread_id, role, text, interrupted, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.ThreadID, e.Role, e.Text, e.Interrupted, e.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// CountTranscript reports how many audit rows exist, optionally scoped to a
// thread. Used by maintenance tooling and tests.
func (s *Store) CountTranscript(ctx context.Context, threadID string) (int, error) {
	if s.db == nil {
		return 0, nil
	}
	var n int
	var err error
	if threadID == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transcript`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transcript WHERE thread_id = ?`, threadID).Scan(&n)
	}
	return n, err
}

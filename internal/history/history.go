// Package history keeps a per-session transcript of everything the
// overlay spoke, in an embedded SQLite database. Best-effort like the
// sink it wraps: a failed insert is logged and dropped.
package history

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/blindrun/blindrun/internal/speech"
)

const schema = `
CREATE TABLE IF NOT EXISTS announcements (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT    NOT NULL,
	spoken_at  INTEGER NOT NULL,
	text       TEXT    NOT NULL,
	interrupt  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_announcements_spoken_at ON announcements(spoken_at);
`

// Entry is one transcript row.
type Entry struct {
	SessionID string
	SpokenAt  time.Time
	Text      string
	Interrupt bool
}

// Store is the transcript database. One session ID per process.
type Store struct {
	db      *sql.DB
	session string
}

// Open opens (or creates) the transcript at path and bootstraps the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return &Store{db: db, session: uuid.NewString()}, nil
}

// Session returns this process's session identifier.
func (s *Store) Session() string { return s.session }

// Append records one spoken announcement.
func (s *Store) Append(text string, interrupt bool) error {
	_, err := s.db.Exec(
		"INSERT INTO announcements (session_id, spoken_at, text, interrupt) VALUES (?, ?, ?, ?)",
		s.session, time.Now().Unix(), text, boolToInt(interrupt),
	)
	if err != nil {
		return fmt.Errorf("appending announcement: %w", err)
	}
	return nil
}

// Recent returns the last n announcements across all sessions, newest
// first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT session_id, spoken_at, text, interrupt FROM announcements ORDER BY id DESC LIMIT ?",
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("querying announcements: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var spokenAt int64
		var interrupt int
		if err := rows.Scan(&e.SessionID, &spokenAt, &e.Text, &interrupt); err != nil {
			return nil, fmt.Errorf("scanning announcement: %w", err)
		}
		e.SpokenAt = time.Unix(spokenAt, 0).UTC()
		e.Interrupt = interrupt != 0
		out = append(out, e)
	}

	return out, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordingSink wraps a speech sink and appends everything spoken to
// the transcript.
type RecordingSink struct {
	Next  speech.Sink
	Store *Store
}

// Speak forwards to the wrapped sink and records the announcement.
func (r *RecordingSink) Speak(text string, interrupt bool) {
	r.Next.Speak(text, interrupt)
	if err := r.Store.Append(text, interrupt); err != nil {
		slog.Warn("history append failed", "err", err)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

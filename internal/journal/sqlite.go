package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tweets-go/internal/journal/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteJournal implements the Journal interface using SQLite.
type SQLiteJournal struct {
	db   *sql.DB
	path string
}

// OpenSQLiteJournal opens (creating if needed) the journal at path, brings its
// schema up to date and verifies the result.
// path can be a file path or ":memory:" for an in-memory database.
func OpenSQLiteJournal(path string) (*SQLiteJournal, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrations.CheckStatus(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal schema out of date: %w", err)
	}

	return &SQLiteJournal{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite connection with the PRAGMAs the
// journal relies on. A single connection is used so ":memory:" databases are
// shared by every query.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (s *SQLiteJournal) Path() string {
	return s.path
}

func (s *SQLiteJournal) StartSession(id string, startedAt time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, started_at, status) VALUES (?, ?, 'running')",
		id, startedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	return nil
}

func (s *SQLiteJournal) FinishSession(id string, status string, finishedAt time.Time) error {
	res, err := s.db.Exec(
		"UPDATE sessions SET status = ?, finished_at = ? WHERE id = ?",
		status, finishedAt.UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("finishing session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finishing session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}

func (s *SQLiteJournal) RecordAction(action *Action) error {
	res, err := s.db.Exec(
		"INSERT INTO actions (session_id, operation, tweet_id, outcome, at) VALUES (?, ?, ?, ?, ?)",
		action.SessionID, action.Operation, action.TweetID, action.Outcome, action.At.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording action: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading action id: %w", err)
	}
	action.ID = id
	return nil
}

func (s *SQLiteJournal) ListActions(limit int) ([]*Action, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(
		"SELECT id, session_id, operation, tweet_id, outcome, at FROM actions ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}
	defer rows.Close()

	var out []*Action
	for rows.Next() {
		var a Action
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Operation, &a.TweetID, &a.Outcome, &a.At); err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}
	return out, nil
}

func (s *SQLiteJournal) ListSessions(limit int) ([]*Session, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(
		"SELECT id, started_at, finished_at, status FROM sessions ORDER BY started_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var out []*Session
	for rows.Next() {
		var (
			sess     Session
			finished sql.NullTime
		)
		if err := rows.Scan(&sess.ID, &sess.StartedAt, &finished, &sess.Status); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			sess.FinishedAt = &t
		}
		out = append(out, &sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return out, nil
}

// Close closes the database connection.
func (s *SQLiteJournal) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing journal: %w", err)
	}
	return nil
}

// Compile-time check that SQLiteJournal implements Journal interface
var _ Journal = (*SQLiteJournal)(nil)

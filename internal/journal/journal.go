// Package journal records what happened during menu sessions: one session row
// per run and one action row per store operation. It never stores the
// timeline itself.
package journal

import "time"

// Outcome values for an Action. Failed store operations use the name of the
// error kind (see app.outcomeOf).
const (
	OutcomeOK = "ok"
)

// Session is one run of the interactive menu.
type Session struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time // nil while the session is running
	Status     string     // "running", "success" or "error"
}

// Action is one store operation issued during a session.
type Action struct {
	ID        int64 // assigned by RecordAction
	SessionID string
	Operation string // "Add", "Select", "Edit", "Like", "Delete"
	TweetID   int    // 0 when the operation did not touch a tweet
	Outcome   string
	At        time.Time
}

// Journal stores sessions and actions.
type Journal interface {
	// StartSession creates a running session.
	StartSession(id string, startedAt time.Time) error

	// FinishSession marks a session as finished with the given status.
	FinishSession(id string, status string, finishedAt time.Time) error

	// RecordAction appends an action and sets its ID.
	RecordAction(action *Action) error

	// ListActions returns up to limit actions, newest first.
	// A non-positive limit returns all actions.
	ListActions(limit int) ([]*Action, error)

	// ListSessions returns up to limit sessions, newest first.
	// A non-positive limit returns all sessions.
	ListSessions(limit int) ([]*Session, error)

	// Close releases any resources held by the journal.
	Close() error
}

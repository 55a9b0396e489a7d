package app

import "time"

// Session statuses stored in the journal.
const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusError   = "error"
)

// Session tracks one run of the menu. It is created in memory and becomes
// persisted once the journal has accepted it.
type Session struct {
	ID        string
	StartedAt time.Time
	Status    string
	persisted bool
}

// NewSession creates a new in-memory session.
func NewSession(id string, startedAt time.Time) *Session {
	return &Session{
		ID:        id,
		StartedAt: startedAt,
		Status:    StatusRunning,
	}
}

// Persisted returns true if the session has been saved to the journal.
func (s *Session) Persisted() bool {
	return s.persisted
}

// Fail marks the session as ended in error. It is sticky.
func (s *Session) Fail() {
	s.Status = StatusError
}

// finalStatus is the status written when the session closes.
func (s *Session) finalStatus() string {
	if s.Status == StatusError {
		return StatusError
	}
	return StatusSuccess
}

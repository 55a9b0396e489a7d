package journal

import (
	"fmt"
	"sync"
	"time"
)

// MemoryJournal is an in-memory implementation of the Journal interface.
// Nothing survives the process; it is the default when no journal is configured.
// This implementation is safe for concurrent use.
type MemoryJournal struct {
	mu       sync.RWMutex
	sessions []*Session
	actions  []*Action
	nextID   int64
}

// NewMemoryJournal creates an empty in-memory journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{nextID: 1}
}

func (m *MemoryJournal) StartSession(id string, startedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findSession(id) != nil {
		return fmt.Errorf("session already exists: %s", id)
	}
	m.sessions = append(m.sessions, &Session{ID: id, StartedAt: startedAt, Status: "running"})
	return nil
}

func (m *MemoryJournal) FinishSession(id string, status string, finishedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.findSession(id)
	if s == nil {
		return fmt.Errorf("session not found: %s", id)
	}
	s.Status = status
	s.FinishedAt = &finishedAt
	return nil
}

func (m *MemoryJournal) RecordAction(action *Action) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findSession(action.SessionID) == nil {
		return fmt.Errorf("session not found: %s", action.SessionID)
	}

	action.ID = m.nextID
	m.nextID++

	stored := *action
	m.actions = append(m.actions, &stored)
	return nil
}

func (m *MemoryJournal) ListActions(limit int) ([]*Action, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Action
	for i := len(m.actions) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		a := *m.actions[i]
		out = append(out, &a)
	}
	return out, nil
}

func (m *MemoryJournal) ListSessions(limit int) ([]*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Session
	for i := len(m.sessions) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		s := *m.sessions[i]
		out = append(out, &s)
	}
	return out, nil
}

// Close is a no-op for the in-memory journal.
func (m *MemoryJournal) Close() error {
	return nil
}

// findSession must be called with mu held.
func (m *MemoryJournal) findSession(id string) *Session {
	for _, s := range m.sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Compile-time check that MemoryJournal implements Journal interface
var _ Journal = (*MemoryJournal)(nil)

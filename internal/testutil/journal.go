package testutil

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tweets-go/internal/journal"
)

// NewTestJournal opens a SQLite journal in a temp directory and closes it
// when the test ends.
func NewTestJournal(t *testing.T) *journal.SQLiteJournal {
	t.Helper()

	j, err := journal.OpenSQLiteJournal(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("failed to open test journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

// ErrJournalBroken is returned by BrokenJournal once it has been broken.
var ErrJournalBroken = errors.New("journal broken")

// BrokenJournal wraps a journal and fails every write after Break is called.
type BrokenJournal struct {
	journal.Journal
	broken bool
}

// NewBrokenJournal wraps an in-memory journal.
func NewBrokenJournal() *BrokenJournal {
	return &BrokenJournal{Journal: journal.NewMemoryJournal()}
}

// Break makes all further writes fail.
func (b *BrokenJournal) Break() {
	b.broken = true
}

func (b *BrokenJournal) StartSession(id string, startedAt time.Time) error {
	if b.broken {
		return ErrJournalBroken
	}
	return b.Journal.StartSession(id, startedAt)
}

func (b *BrokenJournal) FinishSession(id string, status string, finishedAt time.Time) error {
	if b.broken {
		return ErrJournalBroken
	}
	return b.Journal.FinishSession(id, status, finishedAt)
}

func (b *BrokenJournal) RecordAction(action *journal.Action) error {
	if b.broken {
		return ErrJournalBroken
	}
	return b.Journal.RecordAction(action)
}

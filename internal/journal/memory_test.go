package journal

import (
	"testing"
	"time"
)

func TestMemoryJournal(t *testing.T) {
	runJournalTests(t, func(t *testing.T) Journal {
		return NewMemoryJournal()
	})
}

func TestMemoryJournal_ListReturnsCopies(t *testing.T) {
	j := NewMemoryJournal()
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	if err := j.StartSession("s1", start); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if err := j.RecordAction(&Action{SessionID: "s1", Operation: "Add", Outcome: OutcomeOK, At: start}); err != nil {
		t.Fatalf("RecordAction() error = %v", err)
	}

	actions, _ := j.ListActions(0)
	actions[0].Operation = "mutated"

	again, _ := j.ListActions(0)
	if again[0].Operation != "Add" {
		t.Errorf("internal action modified: Operation = %q", again[0].Operation)
	}
}

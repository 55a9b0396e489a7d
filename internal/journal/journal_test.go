package journal

import (
	"testing"
	"time"
)

// runJournalTests exercises the Journal contract against any implementation.
func runJournalTests(t *testing.T, newJournal func(t *testing.T) Journal) {
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("records actions with increasing ids", func(t *testing.T) {
		j := newJournal(t)
		if err := j.StartSession("s1", start); err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}

		ops := []string{"Add", "Select", "Like"}
		var lastID int64
		for i, op := range ops {
			a := &Action{SessionID: "s1", Operation: op, TweetID: 100, Outcome: OutcomeOK, At: start.Add(time.Duration(i) * time.Second)}
			if err := j.RecordAction(a); err != nil {
				t.Fatalf("RecordAction(%s) error = %v", op, err)
			}
			if a.ID <= lastID {
				t.Errorf("RecordAction(%s) ID = %d, want > %d", op, a.ID, lastID)
			}
			lastID = a.ID
		}

		got, err := j.ListActions(0)
		if err != nil {
			t.Fatalf("ListActions() error = %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len(ListActions()) = %d, want 3", len(got))
		}
		if got[0].Operation != "Like" || got[2].Operation != "Add" {
			t.Errorf("ListActions() order = %s..%s, want newest first", got[0].Operation, got[2].Operation)
		}
		if got[0].TweetID != 100 {
			t.Errorf("TweetID = %d, want 100", got[0].TweetID)
		}
		if !got[2].At.Equal(start) {
			t.Errorf("At = %v, want %v", got[2].At, start)
		}
	})

	t.Run("limit caps results", func(t *testing.T) {
		j := newJournal(t)
		if err := j.StartSession("s1", start); err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}
		for i := 0; i < 5; i++ {
			if err := j.RecordAction(&Action{SessionID: "s1", Operation: "Like", Outcome: OutcomeOK, At: start}); err != nil {
				t.Fatalf("RecordAction() error = %v", err)
			}
		}

		got, err := j.ListActions(2)
		if err != nil {
			t.Fatalf("ListActions() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("len(ListActions(2)) = %d, want 2", len(got))
		}
	})

	t.Run("rejects action for unknown session", func(t *testing.T) {
		j := newJournal(t)
		err := j.RecordAction(&Action{SessionID: "missing", Operation: "Add", Outcome: OutcomeOK, At: start})
		if err == nil {
			t.Error("RecordAction() expected error for unknown session")
		}
	})

	t.Run("finishes sessions", func(t *testing.T) {
		j := newJournal(t)
		if err := j.StartSession("s1", start); err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}
		if err := j.StartSession("s2", start.Add(time.Hour)); err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}

		end := start.Add(time.Minute)
		if err := j.FinishSession("s1", "success", end); err != nil {
			t.Fatalf("FinishSession() error = %v", err)
		}

		got, err := j.ListSessions(0)
		if err != nil {
			t.Fatalf("ListSessions() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len(ListSessions()) = %d, want 2", len(got))
		}
		if got[0].ID != "s2" || got[0].Status != "running" || got[0].FinishedAt != nil {
			t.Errorf("ListSessions()[0] = %+v, want running s2", got[0])
		}
		if got[1].Status != "success" {
			t.Errorf("Status = %q, want %q", got[1].Status, "success")
		}
		if got[1].FinishedAt == nil || !got[1].FinishedAt.Equal(end) {
			t.Errorf("FinishedAt = %v, want %v", got[1].FinishedAt, end)
		}
	})

	t.Run("finishing unknown session fails", func(t *testing.T) {
		j := newJournal(t)
		if err := j.FinishSession("missing", "success", start); err == nil {
			t.Error("FinishSession() expected error for unknown session")
		}
	})
}

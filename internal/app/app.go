package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"tweets-go/internal/config"
	"tweets-go/internal/export"
	"tweets-go/internal/journal"
	"tweets-go/internal/timeline"
)

// TweetsApp is the application layer between the CLI and the timeline store.
// It constructs all dependencies from config, forwards menu operations to the
// store, and logs and journals each of them. Close must be called when done.
type TweetsApp struct {
	cfg     *config.Config
	store   *timeline.Store
	journal journal.Journal
	logger  *slog.Logger
	clock   Clock
	session *Session
	logFile *os.File
}

// LoadConfig reads the config file at defaults.ConfigPath. When the
// file does not exist, it returns an in-memory configuration (memory journal,
// no log file) so the menu works before `tweets config init` has been run.
func LoadConfig(defaults Defaults) (*config.Config, error) {
	cfg, err := config.ReadFromFile(defaults.ConfigPath)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = config.NewConfig(defaults.BaseDir)
	cfg.Log.Dir = ""
	cfg.Journal = config.JournalConfig{Type: "memory"}
	return cfg, nil
}

// NewTweetsApp creates a fully wired TweetsApp from the given config.
// When seed is true the configured starter tweets are added and the last
// one is selected.
func NewTweetsApp(cfg *config.Config, seed bool) (*TweetsApp, error) {
	j, err := journal.NewJournalFromConfig(cfg.Journal)
	if err != nil {
		return nil, fmt.Errorf("creating journal: %w", err)
	}

	a, err := newTweetsApp(cfg, deps{
		journal: j,
		clock:   RealClock{},
		idgen:   UUIDGenerator{},
		newLogger: func(sessionID string) (*slog.Logger, *os.File, error) {
			return newLogger(cfg.Log.Dir, sessionID, cfg.Log.Verbose)
		},
	}, seed)
	if err != nil {
		j.Close()
		return nil, err
	}
	return a, nil
}

// deps are the collaborators of a TweetsApp that tests replace.
type deps struct {
	journal   journal.Journal
	clock     Clock
	idgen     IDGenerator
	newLogger func(sessionID string) (*slog.Logger, *os.File, error)
}

// newTweetsApp wires an app from d. The store is seeded before the session
// is started, so a failed construction never leaves a running session in
// the journal. The journal stays open on error; the caller owns it.
func newTweetsApp(cfg *config.Config, d deps, seed bool) (*TweetsApp, error) {
	sessionID := d.idgen.New()

	logger, logFile, err := d.newLogger(sessionID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	store := timeline.New(timeline.Options{
		Capacity:         cfg.Timeline.Capacity,
		StartID:          cfg.Timeline.StartID,
		MaxMessageLength: cfg.Timeline.MaxMessageLength,
		Logger:           &slogAdapter{l: logger},
	})

	a := &TweetsApp{
		cfg:     cfg,
		store:   store,
		journal: d.journal,
		logger:  logger,
		clock:   d.clock,
		session: NewSession(sessionID, d.clock.Now()),
		logFile: logFile,
	}

	if err := a.start(seed); err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	logger.Info("session started", "capacity", store.Cap(), "tweets", store.Len())
	return a, nil
}

func (a *TweetsApp) start(seed bool) error {
	if seed {
		if err := a.seed(a.cfg.Timeline.Seed); err != nil {
			return err
		}
	}

	if err := a.journal.StartSession(a.session.ID, a.session.StartedAt); err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	a.session.persisted = true
	return nil
}

// seed adds starter tweets without journaling them. Tweets beyond the
// capacity are skipped.
func (a *TweetsApp) seed(messages []string) error {
	for _, msg := range messages {
		pos, err := a.store.Add(msg)
		if errors.Is(err, timeline.ErrFull) {
			a.logger.Warn("seed tweets exceed capacity", "capacity", a.store.Cap(), "seed", len(messages))
			return nil
		}
		if err != nil {
			return fmt.Errorf("seeding timeline: %w", err)
		}
		if err := a.store.Adopt(pos); err != nil {
			return fmt.Errorf("seeding timeline: %w", err)
		}
	}
	return nil
}

// SessionID returns the id of the running session.
func (a *TweetsApp) SessionID() string {
	return a.session.ID
}

// Store returns the underlying timeline store.
func (a *TweetsApp) Store() *timeline.Store {
	return a.store
}

// Display writes the timeline to w.
func (a *TweetsApp) Display(w io.Writer) error {
	return a.store.Display(w)
}

func (a *TweetsApp) Len() int                      { return a.store.Len() }
func (a *TweetsApp) Cap() int                      { return a.store.Cap() }
func (a *TweetsApp) Selection() timeline.Selection { return a.store.Selection() }

// Adopt makes pos the selected tweet. Adoption follows a journaled Add or
// Select and is not journaled itself.
func (a *TweetsApp) Adopt(pos int) error {
	return a.store.Adopt(pos)
}

// Add adds a tweet and returns its position.
func (a *TweetsApp) Add(message string) (int, error) {
	pos, err := a.store.Add(message)
	tweetID := 0
	if err == nil {
		tweetID = a.store.Records()[pos].ID
	}
	a.record("Add", tweetID, err)
	return pos, err
}

// Select returns the position of the tweet with the given id.
func (a *TweetsApp) Select(id int) (int, error) {
	pos, err := a.store.Select(id)
	a.record("Select", id, err)
	return pos, err
}

// Edit replaces the message of the selected tweet.
func (a *TweetsApp) Edit(message string) error {
	id := a.selectedID()
	err := a.store.Edit(message)
	a.record("Edit", id, err)
	return err
}

// Like adds a like to the selected tweet.
func (a *TweetsApp) Like() error {
	id := a.selectedID()
	err := a.store.Like()
	a.record("Like", id, err)
	return err
}

// Delete removes the selected tweet.
func (a *TweetsApp) Delete() error {
	id := a.selectedID()
	err := a.store.Delete()
	a.record("Delete", id, err)
	return err
}

// selectedID returns the id of the selected tweet, or 0.
func (a *TweetsApp) selectedID() int {
	pos, ok := a.store.Selection().Position()
	if !ok || pos >= a.store.Len() {
		return 0
	}
	return a.store.Records()[pos].ID
}

// record logs and journals one operation. Journal failures are logged and
// mark the session as failed; they never change the operation's result.
func (a *TweetsApp) record(operation string, tweetID int, opErr error) {
	outcome := outcomeOf(opErr)
	a.logger.Info("operation", "op", operation, "tweet", tweetID, "outcome", outcome)

	action := &journal.Action{
		SessionID: a.session.ID,
		Operation: operation,
		TweetID:   tweetID,
		Outcome:   outcome,
		At:        a.clock.Now(),
	}
	if err := a.journal.RecordAction(action); err != nil {
		a.logger.Error("journaling operation", "op", operation, "error", err)
		a.session.Fail()
	}
}

// outcomeOf maps an operation error to the outcome stored in the journal.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return journal.OutcomeOK
	case errors.Is(err, timeline.ErrFull):
		return "full"
	case errors.Is(err, timeline.ErrEmpty):
		return "empty"
	case errors.Is(err, timeline.ErrNotFound):
		return "not_found"
	case errors.Is(err, timeline.ErrNoSelection):
		return "no_selection"
	case errors.Is(err, timeline.ErrInvalidPosition):
		return "invalid_position"
	default:
		return "error"
	}
}

// History returns the most recent journaled operations, newest first.
func (a *TweetsApp) History(limit int) ([]*journal.Action, error) {
	return a.journal.ListActions(limit)
}

// ReadHistory lists journaled operations without starting a session, so
// viewing history leaves the journal unchanged.
func ReadHistory(cfg *config.Config, limit int) ([]*journal.Action, error) {
	j, err := journal.NewJournalFromConfig(cfg.Journal)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer j.Close()

	return j.ListActions(limit)
}

// Sessions returns the most recent sessions, newest first.
func (a *TweetsApp) Sessions(limit int) ([]*journal.Session, error) {
	return a.journal.ListSessions(limit)
}

// Export writes the current timeline to w through enc.
func (a *TweetsApp) Export(w io.Writer, enc export.Encryptor) error {
	snap := export.NewSnapshot(a.session.ID, a.clock.Now(), a.store.Records())
	if err := export.Write(w, snap, enc); err != nil {
		a.session.Fail()
		return err
	}
	a.logger.Info("timeline exported", "tweets", len(snap.Tweets))
	return nil
}

// ExportToFile writes the current timeline to path, replacing any existing file.
func (a *TweetsApp) ExportToFile(path string, enc export.Encryptor) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		a.session.Fail()
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := a.Export(f, enc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		a.session.Fail()
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}

// Fail marks the session as ended in error, e.g. when the menu loop failed.
func (a *TweetsApp) Fail() {
	a.session.Fail()
}

// Close finishes the session and closes all resources.
func (a *TweetsApp) Close() error {
	var firstErr error

	if a.session.Persisted() {
		status := a.session.finalStatus()
		if err := a.journal.FinishSession(a.session.ID, status, a.clock.Now()); err != nil {
			firstErr = fmt.Errorf("finishing session: %w", err)
		}
		a.logger.Info("session finished", "status", status, "tweets", a.store.Len())
	}

	if err := a.journal.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing journal: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}

// Package export writes the final state of a timeline to a file, optionally
// encrypted, and reads such files back for viewing.
package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"tweets-go/internal/timeline"
)

// Tweet is the exported form of a timeline record.
type Tweet struct {
	ID      int    `toml:"id"`
	Message string `toml:"message"`
	Likes   int    `toml:"likes"`
}

// Snapshot is the content of an export file.
type Snapshot struct {
	SessionID  string    `toml:"session_id"`
	ExportedAt time.Time `toml:"exported_at"`
	Tweets     []Tweet   `toml:"tweets"`
}

// NewSnapshot captures records in timeline order.
func NewSnapshot(sessionID string, at time.Time, records []timeline.Record) *Snapshot {
	snap := &Snapshot{
		SessionID:  sessionID,
		ExportedAt: at.UTC(),
		Tweets:     make([]Tweet, 0, len(records)),
	}
	for _, r := range records {
		snap.Tweets = append(snap.Tweets, Tweet{ID: r.ID, Message: r.Message.String(), Likes: r.Likes})
	}
	return snap
}

// Write encodes snap as TOML and writes it through enc.
func Write(w io.Writer, snap *Snapshot, enc Encryptor) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := enc.Encrypt(&buf, w); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Read decrypts r with enc and decodes the snapshot.
func Read(r io.Reader, enc Encryptor) (*Snapshot, error) {
	var buf bytes.Buffer
	if err := enc.Decrypt(r, &buf); err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap Snapshot
	if _, err := toml.NewDecoder(&buf).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

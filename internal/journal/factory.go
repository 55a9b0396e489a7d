package journal

import (
	"fmt"
	"path/filepath"

	"tweets-go/internal/config"
)

// NewJournalFromConfig creates a Journal implementation based on the journal config type.
func NewJournalFromConfig(cfg config.JournalConfig) (Journal, error) {
	switch cfg.Type {
	case "memory", "":
		return NewMemoryJournal(), nil
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite journal")
		}
		return OpenSQLiteJournal(filepath.Join(cfg.DataDir, "journal.db"))
	default:
		return nil, fmt.Errorf("unknown journal type: %s", cfg.Type)
	}
}

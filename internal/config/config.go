package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for tweets.
type Config struct {
	BaseDir  string         `toml:"base_dir"`
	Log      LogConfig      `toml:"log"`
	Timeline TimelineConfig `toml:"timeline"`
	Journal  JournalConfig  `toml:"journal"`
	Export   ExportConfig   `toml:"export"`
}

// LogConfig controls where session logs go.
type LogConfig struct {
	Dir     string `toml:"dir"`
	Verbose bool   `toml:"verbose"` // also write log lines to stderr
}

// TimelineConfig sizes the tweet store. Zero values fall back to the
// store defaults (10 tweets, ids from 100, 99 character messages).
type TimelineConfig struct {
	Capacity         int      `toml:"capacity"`
	StartID          int      `toml:"start_id"`
	MaxMessageLength int      `toml:"max_message_length"`
	Seed             []string `toml:"seed"` // starter tweets added at startup
}

// JournalConfig represents configuration for the activity journal.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type JournalConfig struct {
	Type    string `toml:"type"`               // "memory" (default) or "sqlite"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// ExportConfig selects how timeline exports are protected.
type ExportConfig struct {
	Type string `toml:"type"` // "age" (default) or "plain"
}

// DefaultSeed holds the starter tweets added to a fresh timeline.
var DefaultSeed = []string{
	"Where do they get the seeds to plant seedless watermelons?",
	"Waffles are just pancakes with convenient boxes to hold your syrup.",
	"Last night I even struck up a conversation with a spider. Turns out he's a web designer.",
}

// NewConfig creates a new Config rooted at baseDir with default settings.
func NewConfig(baseDir string) *Config {
	return &Config{
		BaseDir: baseDir,
		Log: LogConfig{
			Dir: filepath.Join(baseDir, "log"),
		},
		Timeline: TimelineConfig{
			Capacity:         10,
			StartID:          100,
			MaxMessageLength: 99,
			Seed:             append([]string(nil), DefaultSeed...),
		},
		Journal: JournalConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
		Export: ExportConfig{
			Type: "age",
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}

package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		BaseDir: "/home/user/.local/share/tweets",
		Log:     LogConfig{Dir: "/home/user/.local/share/tweets/log", Verbose: true},
		Timeline: TimelineConfig{
			Capacity:         5,
			StartID:          1,
			MaxMessageLength: 40,
			Seed:             []string{"hello", "world"},
		},
		Journal: JournalConfig{Type: "sqlite", DataDir: "/home/user/.local/share/tweets/db"},
		Export:  ExportConfig{Type: "plain"},
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.BaseDir != original.BaseDir {
		t.Errorf("BaseDir = %q, want %q", got.BaseDir, original.BaseDir)
	}
	if got.Log != original.Log {
		t.Errorf("Log = %+v, want %+v", got.Log, original.Log)
	}
	if got.Timeline.Capacity != 5 {
		t.Errorf("Timeline.Capacity = %d, want 5", got.Timeline.Capacity)
	}
	if got.Timeline.StartID != 1 {
		t.Errorf("Timeline.StartID = %d, want 1", got.Timeline.StartID)
	}
	if got.Timeline.MaxMessageLength != 40 {
		t.Errorf("Timeline.MaxMessageLength = %d, want 40", got.Timeline.MaxMessageLength)
	}
	if len(got.Timeline.Seed) != 2 || got.Timeline.Seed[1] != "world" {
		t.Errorf("Timeline.Seed = %v, want [hello world]", got.Timeline.Seed)
	}
	if got.Journal != original.Journal {
		t.Errorf("Journal = %+v, want %+v", got.Journal, original.Journal)
	}
	if got.Export.Type != "plain" {
		t.Errorf("Export.Type = %q, want %q", got.Export.Type, "plain")
	}
}

func TestManager_Read_PartialFile(t *testing.T) {
	m := &Manager{}
	cfg, err := m.Read(bytes.NewBufferString("[timeline]\ncapacity = 3\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if cfg.Timeline.Capacity != 3 {
		t.Errorf("Timeline.Capacity = %d, want 3", cfg.Timeline.Capacity)
	}
	if cfg.Journal.Type != "" {
		t.Errorf("Journal.Type = %q, want empty", cfg.Journal.Type)
	}
}

func TestManager_Read_Invalid(t *testing.T) {
	m := &Manager{}
	if _, err := m.Read(bytes.NewBufferString("capacity = = 3")); err == nil {
		t.Fatal("Read() expected error for malformed TOML")
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("/data/tweets")

	if cfg.BaseDir != "/data/tweets" {
		t.Errorf("BaseDir = %q, want %q", cfg.BaseDir, "/data/tweets")
	}
	if cfg.Log.Dir != "/data/tweets/log" {
		t.Errorf("Log.Dir = %q, want %q", cfg.Log.Dir, "/data/tweets/log")
	}
	if cfg.Journal.Type != "sqlite" {
		t.Errorf("Journal.Type = %q, want %q", cfg.Journal.Type, "sqlite")
	}
	if cfg.Journal.DataDir != "/data/tweets/db" {
		t.Errorf("Journal.DataDir = %q, want %q", cfg.Journal.DataDir, "/data/tweets/db")
	}
	if cfg.Timeline.Capacity != 10 || cfg.Timeline.StartID != 100 || cfg.Timeline.MaxMessageLength != 99 {
		t.Errorf("Timeline = %+v, want capacity 10, start 100, max 99", cfg.Timeline)
	}
	if len(cfg.Timeline.Seed) != len(DefaultSeed) {
		t.Errorf("len(Timeline.Seed) = %d, want %d", len(cfg.Timeline.Seed), len(DefaultSeed))
	}

	// Seed must not alias DefaultSeed.
	cfg.Timeline.Seed[0] = "changed"
	if DefaultSeed[0] == "changed" {
		t.Error("NewConfig() seed aliases DefaultSeed")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "tweets.toml")
		cfg := NewConfig(dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Fatalf("config file not created: %v", err)
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "conf", "tweets.toml")

		if err := Init(path, NewConfig(dir)); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
	})

	t.Run("fails if file already exists", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "tweets.toml")
		cfg := NewConfig(dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("first Init() error = %v", err)
		}

		if err := Init(path, cfg); err == nil {
			t.Fatal("second Init() expected error")
		}
	})
}

func TestReadFromFile(t *testing.T) {
	t.Run("reads valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "tweets.toml")
		cfg := NewConfig(dir)
		cfg.Timeline.Capacity = 7

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		got, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.Timeline.Capacity != 7 {
			t.Errorf("Timeline.Capacity = %d, want 7", got.Timeline.Capacity)
		}
	})

	t.Run("missing file wraps fs.ErrNotExist", func(t *testing.T) {
		_, err := ReadFromFile("/nonexistent/path/tweets.toml")
		if err == nil {
			t.Fatal("ReadFromFile() expected error for missing file")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFromFile() error = %v, want fs.ErrNotExist", err)
		}
	})
}

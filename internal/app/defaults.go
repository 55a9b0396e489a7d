package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Defaults are the locations used before any config file has been read.
// Everything else, the log directory included, comes from the config.
type Defaults struct {
	ConfigPath string // TWEETS_CONFIG_PATH, or ~/.config/tweets.toml
	BaseDir    string // TWEETS_HOME, or ~/.local/share/tweets
}

// GetDefaults resolves Defaults from the environment and the home directory.
// The home directory is only consulted when a variable is unset.
func GetDefaults() (Defaults, error) {
	configPath, err := fromEnvOrHome("TWEETS_CONFIG_PATH", ".config", "tweets.toml")
	if err != nil {
		return Defaults{}, err
	}

	baseDir, err := fromEnvOrHome("TWEETS_HOME", ".local", "share", "tweets")
	if err != nil {
		return Defaults{}, err
	}

	return Defaults{ConfigPath: configPath, BaseDir: baseDir}, nil
}

func fromEnvOrHome(env string, rel ...string) (string, error) {
	if path := os.Getenv(env); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%s unset and cannot determine home directory: %w", env, err)
	}
	return filepath.Join(append([]string{home}, rel...)...), nil
}

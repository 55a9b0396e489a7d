package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name       string
		configPath string
		tweetsHome string
		want       Defaults
	}{
		{
			name:       "env vars win",
			configPath: "/custom/tweets.toml",
			tweetsHome: "/custom/tweets",
			want:       Defaults{ConfigPath: "/custom/tweets.toml", BaseDir: "/custom/tweets"},
		},
		{
			name: "home dir fallback",
			want: Defaults{
				ConfigPath: filepath.Join(home, ".config", "tweets.toml"),
				BaseDir:    filepath.Join(home, ".local", "share", "tweets"),
			},
		},
		{
			name:       "each variable falls back on its own",
			tweetsHome: "/srv/tweets",
			want: Defaults{
				ConfigPath: filepath.Join(home, ".config", "tweets.toml"),
				BaseDir:    "/srv/tweets",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TWEETS_CONFIG_PATH", tt.configPath)
			t.Setenv("TWEETS_HOME", tt.tweetsHome)

			got, err := GetDefaults()
			if err != nil {
				t.Fatalf("GetDefaults() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGetDefaults_NoHome(t *testing.T) {
	t.Setenv("TWEETS_CONFIG_PATH", "")
	t.Setenv("TWEETS_HOME", "/srv/tweets")
	t.Setenv("HOME", "")

	if _, err := GetDefaults(); err == nil {
		t.Error("GetDefaults() error = nil, want error without HOME")
	}
}

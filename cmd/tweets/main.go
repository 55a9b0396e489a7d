package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"tweets-go/internal/app"
	"tweets-go/internal/config"
	"tweets-go/internal/export"
	"tweets-go/internal/menu"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig returns the config file contents, or in-memory defaults when
// `tweets config init` has not been run yet.
func loadConfig() (*config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := app.LoadConfig(defaults)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// readPassphrase takes the export passphrase from TWEETS_PASSPHRASE or, on a
// terminal, prompts for it without echo.
func readPassphrase(prompt string) (string, error) {
	if p := os.Getenv("TWEETS_PASSPHRASE"); p != "" {
		return p, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("passphrase required: set TWEETS_PASSPHRASE or run on a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(b), nil
}

func newEncryptor(cfg config.ExportConfig) (export.Encryptor, error) {
	passphrase := ""
	if export.NeedsPassphrase(cfg) {
		var err error
		passphrase, err = readPassphrase("Export passphrase: ")
		if err != nil {
			return nil, err
		}
	}
	return export.NewEncryptorFromConfig(cfg, passphrase)
}

var rootCmd = &cobra.Command{
	Use:          "tweets",
	Short:        "Keep a small timeline of tweets",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exportPath, _ := cmd.Flags().GetString("export")
		noSeed, _ := cmd.Flags().GetBool("no-seed")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Ask for the passphrase before the menu takes over stdin.
		var enc export.Encryptor
		if exportPath != "" {
			if enc, err = newEncryptor(cfg.Export); err != nil {
				return err
			}
		}

		a, err := app.NewTweetsApp(cfg, !noSeed)
		if err != nil {
			return fmt.Errorf("initializing app: %w", err)
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		m := menu.New(a, os.Stdin, os.Stdout, menu.WithPrompts(term.IsTerminal(int(os.Stdin.Fd()))))
		if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.Fail()
			return err
		}

		if exportPath != "" {
			if err := a.ExportToFile(exportPath, enc); err != nil {
				return fmt.Errorf("exporting timeline: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Timeline exported to %s\n", exportPath)
		}
		return nil
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults.BaseDir)
		if err := config.Init(defaults.ConfigPath, cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults.ConfigPath)
		fmt.Printf("Base Dir: %s\n", defaults.BaseDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults.ConfigPath)
		fmt.Printf("Base Dir:     %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:      %s\n", cfg.Log.Dir)
		fmt.Printf("Capacity:     %d\n", cfg.Timeline.Capacity)
		fmt.Printf("Start ID:     %d\n", cfg.Timeline.StartID)
		fmt.Printf("Max Length:   %d\n", cfg.Timeline.MaxMessageLength)
		fmt.Printf("Journal:      %s %s\n", cfg.Journal.Type, cfg.Journal.DataDir)
		fmt.Printf("Export:       %s\n", cfg.Export.Type)
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View journaled timeline operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		actions, err := app.ReadHistory(cfg, limit)
		if err != nil {
			return err
		}

		if len(actions) == 0 {
			fmt.Println("No operations recorded.")
			return nil
		}

		for _, act := range actions {
			tweet := "-"
			if act.TweetID != 0 {
				tweet = fmt.Sprintf("%d", act.TweetID)
			}
			fmt.Printf("#%d  %s  %-8s  %-5s  %-16s  %s\n",
				act.ID,
				act.At.Local().Format("2006-01-02 15:04:05"),
				act.Operation,
				tweet,
				act.Outcome,
				act.SessionID,
			)
		}
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Inspect timeline exports",
}

var exportShowCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Decrypt and print an exported timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		enc, err := newEncryptor(cfg.Export)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening export: %w", err)
		}
		defer f.Close()

		snap, err := export.Read(f, enc)
		if err != nil {
			return err
		}

		fmt.Printf("Exported %s from session %s\n\n", snap.ExportedAt.Local().Format(time.DateTime), snap.SessionID)
		if len(snap.Tweets) == 0 {
			fmt.Println("No tweets.")
			return nil
		}
		for _, t := range snap.Tweets {
			fmt.Printf("%3d  %5d  %s\n", t.ID, t.Likes, t.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().String("export", "", "Write an encrypted snapshot of the timeline to this file on exit")
	rootCmd.Flags().Bool("no-seed", false, "Start with an empty timeline")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	exportCmd.AddCommand(exportShowCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of operations to show")
	rootCmd.AddCommand(exportCmd)
}

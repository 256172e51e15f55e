package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/piezo/cmd/piezo/internal/config"
	"github.com/haivivi/piezo/pkg/cli"
	"github.com/haivivi/piezo/pkg/kv"
	"github.com/haivivi/piezo/pkg/songbook"
)

var (
	// Global flags
	verbose      bool
	formatOutput string
	outputFile   string
	songbookPath string

	// Configuration loaded before each command runs.
	globalConfig *config.Config

	// testStoreOverride replaces the songbook store in tests.
	testStoreOverride kv.Store
)

var rootCmd = &cobra.Command{
	Use:   "piezo",
	Short: "Static tone sequences for piezo buzzers",
	Long: `piezo - inspect and export tone sequences for simple tone devices.

A song is a fixed table of (frequency, duration) notes plus a short gap
that a player inserts after every note. Built-in songs are always
available; your own songs live in the songbook.

Configuration is read from the OS config directory (or $PIEZO_CONFIG_DIR):
  macOS:   ~/Library/Application Support/piezo/config.yaml
  Linux:   ~/.config/piezo/config.yaml

Examples:
  piezo list
  piezo show ff7_victory_fanfare --format yaml
  piezo events ff7_victory_fanfare --policy clamp --min-ms 150
  piezo export ff7_victory_fanfare --to midi --transpose 36 -o fanfare.mid
  piezo import -f beep.yaml
  piezo config set policy clamp`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&formatOutput, "format", "table", "output format (table, yaml, json)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file")
	rootCmd.PersistentFlags().StringVar(&songbookPath, "songbook", "", "songbook directory, or memory:// (default: <config dir>/songbook)")
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config not available: %w", err)
	}
	globalConfig = cfg
	slog.Debug("config loaded", "dir", cfg.Dir)
	return nil
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// outputOptions returns output options from the global flags.
func outputOptions() (cli.OutputOptions, error) {
	f, err := cli.ParseOutputFormat(formatOutput)
	if err != nil {
		return cli.OutputOptions{}, err
	}
	return cli.OutputOptions{Format: f, File: outputFile}, nil
}

// withBook opens the songbook, runs fn, and closes the store.
func withBook(fn func(*songbook.Book) error) error {
	if testStoreOverride != nil {
		return fn(songbook.New(testStoreOverride))
	}

	path := songbookPath
	if path == "" {
		path = globalConfig.SongbookPath()
	}
	slog.Debug("opening songbook", "path", path)
	store, err := songbook.Open(path, slog.Default())
	if err != nil {
		return fmt.Errorf("open songbook: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("close songbook", "error", err)
		}
	}()
	return fn(songbook.New(store))
}

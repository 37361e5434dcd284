package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/config"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/blackwell-systems/cellarctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	cellar *catalog.Catalog
	logger = slog.Default()

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagData          string

	// now is replaced in tests.
	now = time.Now
)

// newRootCmd builds the command tree. Global state is reset on every
// invocation so tests can run commands back to back.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cellarctl",
		Short: "Search, filter and sort a wine cellar inventory",
		Long: `cellarctl browses a wine cellar inventory: wines, open bottles and tasting notes.

The inventory is a JSON or YAML document. Without a configured data path the
bundled sample cellar is used.

Run 'cellarctl browse' for the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flagNoColor, flagNoInteractive, flagConfig, flagData = false, false, "", ""
	cmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/cellarctl/config.yml)")
	cmd.PersistentFlags().StringVar(&flagData, "data", "", "Inventory document (overrides data.path)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		path := flagConfig
		if path == "" {
			path = config.Path()
		}
		loaded, err := config.LoadFile(path)
		if err != nil {
			// init repairs a broken config, everything else needs a valid one.
			if cmd.Name() != "init" {
				return fmt.Errorf("loading config: %w", err)
			}
			loaded = config.Default()
		}
		cfg = loaded

		if err := setupLogging(cfg.Logging.Level, cfg.Logging.Format); err != nil {
			return err
		}
		logger = slog.Default()

		switch cmd.Name() {
		case "init", "version", "completion":
			return nil
		}

		dataPath := cfg.Data.Path
		if flagData != "" {
			dataPath = util.ExpandHome(flagData)
		}
		cellar = catalog.LoadOrEmpty(dataPath, cfg.DataFormat(), logger)
		return nil
	}

	cmd.AddCommand(
		newListCmd(),
		newFiltersCmd(),
		newShowCmd(),
		newBottlesCmd(),
		newInsightsCmd(),
		newBrowseCmd(),
		newExportCmd(),
		newStatusCmd(),
		newInitCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return cmd
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// env bundles the loaded catalog with the effective year.
func env() filter.Env {
	return filter.Env{Catalog: cellar, Year: cfg.Year(now())}
}

// setupLogging installs the default slog logger on stderr.
func setupLogging(level, format string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}

	switch format {
	case "console":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

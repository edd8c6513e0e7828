package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	apppkg "github.com/payam49er/avatarhub/internal/app"
	"github.com/payam49er/avatarhub/internal/catalog"
	"github.com/payam49er/avatarhub/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "avatarhub",
	Short: "Terminal browser for the avatar catalog",
	Long: `Avatarhub is a terminal UI for browsing a remote avatar catalog.
It pages through avatars and avatar groups, filters by gender, premium
tier and name, and drills into per-avatar details. When the catalog API
is unreachable it falls back to a built-in sample catalog so the UI
stays usable.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/avatarhub/config.yaml)")
	flags.String("api-url", "", "catalog API base URL")
	flags.String("api-key", "", "catalog API key")
	flags.Int("page-size", 0, "avatars per page")
	flags.Bool("public-only", false, "show only public avatar groups")
	flags.Bool("offline", false, "browse the built-in catalog without network access")
	flags.String("log-file", "", "log file path")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var src catalog.Source
	if cfg.Offline {
		src = catalog.NewFallbackSource()
	} else {
		remote := catalog.NewRemoteSource(cfg.APIURL, cfg.APIKey)
		src = catalog.NewResilientSource(remote, logger)
	}

	// UTF-8 fallback keeps glyphs in avatar names readable on terminals
	// with incomplete locale setup.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(apppkg.Options{
		Source:     src,
		PageSize:   cfg.PageSize,
		PublicOnly: cfg.PublicGroupsOnly,
		Log:        logger,
	})
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	logger.Info().
		Bool("offline", cfg.Offline).
		Int("page_size", cfg.PageSize).
		Msg("starting avatarhub")

	app.Run()
	return nil
}

// newLogger builds the application logger. The TUI owns the terminal, so
// log output always goes to a file (or nowhere when no path is set).
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, closeLog, nil
}

package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepkit/internal/analyzer"
	"github.com/amishk599/prepkit/internal/config"
	"github.com/amishk599/prepkit/internal/history"
	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/prep"
	"github.com/amishk599/prepkit/internal/release"
	"github.com/amishk599/prepkit/internal/retry"
	"github.com/amishk599/prepkit/internal/store"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:          "prepkit",
	Short:        "Placement readiness from a job description",
	Long:         "prepkit turns a job description into a skill map, round-wise checklist, 7-day plan, interview questions and a readiness score, and keeps a local history of analyses.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: PREPKIT_CONFIG env var or ./prepkit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > PREPKIT_CONFIG env var > "./prepkit.yaml".
// Only the default path may be missing; defaults are used then.
func loadConfig(path string) (*config.Config, error) {
	resolved, explicit := config.Path(path)
	cfg, err := config.Load(resolved)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// setupLogger writes to stderr so rendered output on stdout stays clean.
func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openStore opens the configured backend wrapped with busy/locked retries.
// dryRun forces the in-memory backend.
func openStore(cfg *config.Config, dryRun bool, logger *slog.Logger) (model.KVStore, func() error, error) {
	backend := cfg.Storage.Backend
	if dryRun {
		logger.Info("dry-run mode enabled, nothing will be persisted")
		backend = config.BackendMemory
	}

	var (
		kv      model.KVStore
		closeFn = func() error { return nil }
	)
	switch backend {
	case config.BackendSQLite:
		s, err := store.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		kv, closeFn = s, s.Close
	case config.BackendFile:
		s, err := store.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		kv = s
	default:
		kv = store.NewMemoryStore()
	}

	logger.Debug("store opened", "backend", backend, "path", cfg.Storage.Path)
	return retry.NewRetryStore(kv, cfg.Storage.Retry.MaxRetries, cfg.Storage.Retry.BaseDelay, store.IsBusy, logger), closeFn, nil
}

// app bundles everything a command needs.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	kv        model.KVStore
	history   *history.Store
	service   *prep.Service
	checklist *release.Checklist
	close     func() error
}

// mustSetup loads config and opens storage, exiting on failure.
func mustSetup(logger *slog.Logger, dryRun bool) *app {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	kv, closeFn, err := openStore(cfg, dryRun, logger)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}

	az := analyzer.New(analyzer.Options{
		ShortJDChars:     cfg.Analysis.ShortJDChars,
		ExtraEnterprises: cfg.Analysis.ExtraEnterprises,
	})
	hist := history.NewStore(kv, az, logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		kv:        kv,
		history:   hist,
		service:   prep.NewService(az, hist, logger),
		checklist: release.New(kv, logger),
		close:     closeFn,
	}
}

func (a *app) Close() {
	if err := a.close(); err != nil {
		a.logger.Warn("closing store", "error", err)
	}
}

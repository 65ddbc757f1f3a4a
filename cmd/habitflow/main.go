package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/habitflow/internal/insight"
	"github.com/sandeepkv93/habitflow/internal/scheduler"
	"github.com/sandeepkv93/habitflow/internal/storage"
	"github.com/sandeepkv93/habitflow/internal/store"
	"github.com/sandeepkv93/habitflow/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "habitflow failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	ctx := context.Background()

	logger := zap.NewNop()
	if cfg.LogFile != "" {
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{cfg.LogFile}
		zcfg.ErrorOutputPaths = []string{cfg.LogFile}
		built, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		logger = built
		defer func() { _ = logger.Sync() }()
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".habitflow")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		dbPath = filepath.Join(dir, "habitflow.db")
	}

	repo, err := storage.OpenSQLite(dbPath, logger)
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close() }()

	st, err := store.Open(ctx, repo)
	if err != nil {
		return err
	}

	engine, err := scheduler.NewEngine(st, time.Duration(cfg.ReminderIntervalSeconds)*time.Second, cfg.SchedulerBuffer)
	if err != nil {
		return err
	}
	engine.Start()
	defer engine.Stop()

	var gen insight.Generator
	if cfg.GeminiAPIKey != "" {
		g, err := insight.NewGenAIGenerator(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("insight generator unavailable", zap.Error(err))
		} else {
			gen = g
		}
	}
	requester := insight.NewRequester(gen, cfg.GeminiModel, time.Duration(cfg.InsightTimeoutSeconds)*time.Second, logger)

	m := update.NewModelWithConfig(st, engine, update.ExecDesktopNotifier{}, requester, cfg)
	logger.Info("habitflow starting",
		zap.String("db", dbPath),
		zap.Int("reminder_interval_seconds", cfg.ReminderIntervalSeconds),
		zap.Bool("desktop_notifications", cfg.DesktopNotifications),
	)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("habitflow stopped", zap.Uint64("dropped_reminders", engine.Dropped()))
	return nil
}

package update

import (
	"testing"

	"github.com/sandeepkv93/habitflow/internal/insight"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.ReminderIntervalSeconds != 60 || cfg.SchedulerBuffer != 64 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.InsightTimeoutSeconds != 30 {
		t.Fatalf("unexpected insight timeout default: %+v", cfg)
	}
	if cfg.GeminiModel != insight.DefaultModel {
		t.Fatalf("unexpected model default: %+v", cfg)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications on by default")
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("HABITFLOW_DB_PATH", "data/habits.db")
	t.Setenv("HABITFLOW_LOG_FILE", "habitflow.log")
	t.Setenv("HABITFLOW_DESKTOP_NOTIFICATIONS", "off")
	t.Setenv("HABITFLOW_REMINDER_INTERVAL_SECONDS", "30")
	t.Setenv("HABITFLOW_SCHEDULER_BUFFER", "128")
	t.Setenv("HABITFLOW_INSIGHT_TIMEOUT_SECONDS", "10")
	t.Setenv("HABITFLOW_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "data/habits.db" || cfg.LogFile != "habitflow.log" {
		t.Fatalf("unexpected path overrides: %+v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications off from env")
	}
	if cfg.ReminderIntervalSeconds != 30 || cfg.SchedulerBuffer != 128 {
		t.Fatalf("unexpected scheduler overrides: %+v", cfg)
	}
	if cfg.InsightTimeoutSeconds != 10 || cfg.GeminiModel != "gemini-2.5-pro" {
		t.Fatalf("unexpected insight overrides: %+v", cfg)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Fatalf("unexpected credential: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("HABITFLOW_REMINDER_INTERVAL_SECONDS", "soon")
	t.Setenv("HABITFLOW_SCHEDULER_BUFFER", "-4")
	t.Setenv("HABITFLOW_DESKTOP_NOTIFICATIONS", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.ReminderIntervalSeconds != 60 || cfg.SchedulerBuffer != 64 {
		t.Fatalf("invalid env should keep defaults: %+v", cfg)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("unparseable bool should keep default")
	}
}

package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/habitflow/internal/insight"
)

type RuntimeConfig struct {
	DBPath                  string
	LogFile                 string
	DesktopNotifications    bool
	ReminderIntervalSeconds int
	SchedulerBuffer         int
	InsightTimeoutSeconds   int
	GeminiAPIKey            string
	GeminiModel             string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications:    true,
		ReminderIntervalSeconds: 60,
		SchedulerBuffer:         64,
		InsightTimeoutSeconds:   30,
		GeminiModel:             insight.DefaultModel,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("HABITFLOW_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITFLOW_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v, ok := getEnvBool("HABITFLOW_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("HABITFLOW_REMINDER_INTERVAL_SECONDS"); ok && v > 0 {
		cfg.ReminderIntervalSeconds = v
	}
	if v, ok := getEnvInt("HABITFLOW_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v, ok := getEnvInt("HABITFLOW_INSIGHT_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.InsightTimeoutSeconds = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITFLOW_GEMINI_MODEL")); v != "" {
		cfg.GeminiModel = v
	}
	if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
		cfg.GeminiAPIKey = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

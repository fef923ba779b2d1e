package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Sheets   SheetsConfig
	Alerts   AlertsConfig
	Digest   DigestConfig
	Planning PlanningConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the MongoDB record store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig contains configuration for the Google Sheets plan export.
// Export is disabled when CredentialsPath or SpreadsheetID is empty.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	PlanRange       string
}

// AlertsConfig holds the deficit alert webhook settings. Alerts are disabled
// when WebhookURL is empty.
type AlertsConfig struct {
	WebhookURL string
}

// DigestConfig holds scheduler-related settings for the daily plan digest.
type DigestConfig struct {
	CronSchedule string
	Timezone     string
}

// PlanningConfig holds defaults applied to new planning sessions.
type PlanningConfig struct {
	DefaultHorizonDays int
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "grazeplan"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_EXPORT_ID"),
			PlanRange:       getenvWithDefault("GOOGLE_SHEET_PLAN_RANGE", "MovePlan!A:F"),
		},
		Alerts: AlertsConfig{
			WebhookURL: os.Getenv("DEFICIT_ALERT_WEBHOOK_URL"),
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 6 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Chicago"),
		},
		Planning: PlanningConfig{
			DefaultHorizonDays: getenvIntWithDefault("DEFAULT_HORIZON_DAYS", 30),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. Sheets
// export and deficit alerts are optional features and may stay unconfigured.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when GOOGLE_SHEET_EXPORT_ID is set")
	}

	if c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}

	if c.Digest.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.Planning.DefaultHorizonDays <= 0 {
		return errors.New("DEFAULT_HORIZON_DAYS must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvIntWithDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	var parsed int
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil {
		return fallback
	}
	return parsed
}

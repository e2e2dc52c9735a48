package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBConn   string
	LogLevel string

	JWTSecret string
	AnonSalt  string

	// Engine cutoffs. Externally supplied, never hardcoded in the engine.
	NisabThreshold float64
	TierCutoff     float64
	OverdueDays    int
	HighRiskDays   int

	// External services
	GoldPriceURL string
	PredictURL   string
	ForecastURL  string

	// Cron schedules
	NisabRefreshSpec   string
	SegmentRefreshSpec string
	ReminderSweepSpec  string

	// SMTP settings for reminders
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DBConn:             getEnv("DB_CONN", "host=localhost port=5432 user=zakat password=zakat dbname=zakat sslmode=disable"),
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:          getEnv("JWT_SECRET", "secret"),
		AnonSalt:           getEnv("ANON_SALT", "zakat-tech-salt-2024"),
		GoldPriceURL:       getEnv("GOLD_PRICE_URL", "https://rates.zakatech.example/gold/DailyPrice.asmx"),
		PredictURL:         getEnv("PREDICT_URL", "http://localhost:8501/predict"),
		ForecastURL:        getEnv("FORECAST_URL", "http://localhost:8502/forecast"),
		NisabRefreshSpec:   getEnv("NISAB_REFRESH_SPEC", "0 6 * * *"),
		SegmentRefreshSpec: getEnv("SEGMENT_REFRESH_SPEC", "30 6 * * *"),
		ReminderSweepSpec:  getEnv("REMINDER_SWEEP_SPEC", "0 8 * * *"),
		SMTPHost:           getEnv("SMTP_HOST", "localhost"),
		SMTPPort:           getEnv("SMTP_PORT", "1025"),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SenderEmail:        getEnv("SENDER_EMAIL", "noreply@zakatech.example"),
	}

	var err error
	if cfg.NisabThreshold, err = getEnvFloat("NISAB_THRESHOLD", 22000); err != nil {
		return nil, err
	}
	if cfg.TierCutoff, err = getEnvFloat("TIER_CUTOFF", 100000); err != nil {
		return nil, err
	}
	if cfg.OverdueDays, err = getEnvInt("OVERDUE_DAYS", 400); err != nil {
		return nil, err
	}
	if cfg.HighRiskDays, err = getEnvInt("HIGH_RISK_DAYS", 600); err != nil {
		return nil, err
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AnonSalt == "" {
		return nil, fmt.Errorf("ANON_SALT is required")
	}
	if cfg.TierCutoff <= 0 {
		return nil, fmt.Errorf("TIER_CUTOFF must be positive")
	}
	if cfg.OverdueDays <= 0 || cfg.HighRiskDays < cfg.OverdueDays {
		return nil, fmt.Errorf("HIGH_RISK_DAYS must be at least OVERDUE_DAYS, both positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

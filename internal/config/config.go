package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config carries the tool's tunable defaults. Every value can be overridden
// per invocation by a CLI flag; the environment (optionally via a .env file)
// only moves the defaults.
type Config struct {
	// Ledger file used when no positional argument is given
	File string

	// Analysis thresholds
	LargeThreshold  int64 // flag transactions at or above this in forecasts
	DangerThreshold int64 // danger scan threshold
	MarkerThreshold int64 // chart marker threshold

	// Horizons
	ForecastMonths     int
	CheckHorizonMonths int
	ChartMonths        int

	// Compression
	KeepMonths int

	LogLevel slog.Level
}

func Load() *Config {
	return &Config{
		File:               getEnv("OKANE_FILE", ""),
		LargeThreshold:     getEnvInt64("OKANE_LARGE_THRESHOLD", 100000),
		DangerThreshold:    getEnvInt64("OKANE_DANGER_THRESHOLD", 0),
		MarkerThreshold:    getEnvInt64("OKANE_MARKER_THRESHOLD", 200000),
		ForecastMonths:     getEnvInt("OKANE_FORECAST_MONTHS", 6),
		CheckHorizonMonths: getEnvInt("OKANE_CHECK_HORIZON_MONTHS", 1),
		ChartMonths:        getEnvInt("OKANE_CHART_MONTHS", 6),
		KeepMonths:         getEnvInt("OKANE_KEEP_MONTHS", 3),
		LogLevel:           getEnvLevel("OKANE_LOG_LEVEL", slog.LevelInfo),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.LargeThreshold < 0 {
		errs = append(errs, fmt.Sprintf("invalid large threshold %d: must not be negative", c.LargeThreshold))
	}
	if c.MarkerThreshold < 0 {
		errs = append(errs, fmt.Sprintf("invalid marker threshold %d: must not be negative", c.MarkerThreshold))
	}
	if c.ForecastMonths < 0 {
		errs = append(errs, fmt.Sprintf("invalid forecast months %d: must not be negative", c.ForecastMonths))
	}
	if c.CheckHorizonMonths < 0 {
		errs = append(errs, fmt.Sprintf("invalid check horizon %d: must not be negative", c.CheckHorizonMonths))
	}
	if c.ChartMonths < 0 {
		errs = append(errs, fmt.Sprintf("invalid chart months %d: must not be negative", c.ChartMonths))
	}
	if c.KeepMonths < 0 {
		errs = append(errs, fmt.Sprintf("invalid keep months %d: must not be negative", c.KeepMonths))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return defaultValue
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"worklog/internal/timeutil"
)

// Config holds all configuration options for the worklog application
type Config struct {
	Store    StoreConfig
	Tracking TrackingConfig
	Display  DisplayConfig
}

// StoreConfig holds persistence-related configuration
type StoreConfig struct {
	Dir      string `toml:"dir" env:"WORKLOG_STORE_DIR"`
	Filename string `toml:"filename" env:"WORKLOG_STORE_FILENAME"`
}

// Duration wraps time.Duration so TOML values can use duration strings like
// "8h" or "7h30m", the same syntax the environment variables accept.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// TrackingConfig holds tracking rules configuration
type TrackingConfig struct {
	DailyWorkLimit Duration `toml:"daily_work_limit" env:"WORKLOG_DAILY_LIMIT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat    string `toml:"time_format" env:"WORKLOG_TIME_FORMAT"`
	RecentEntries int    `toml:"recent_entries" env:"WORKLOG_RECENT_ENTRIES"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStoreDir := filepath.Join(homeDir, ".worklog")

	return &Config{
		Store: StoreConfig{
			Dir:      defaultStoreDir,
			Filename: "worklog.db",
		},
		Tracking: TrackingConfig{
			DailyWorkLimit: Duration(8 * time.Hour),
		},
		Display: DisplayConfig{
			TimeFormat:    "2006-01-02 15:04:05",
			RecentEntries: 5,
		},
	}
}

// GetStorePath returns the full path to the store file
func (c *Config) GetStorePath() string {
	return filepath.Join(c.Store.Dir, c.Store.Filename)
}

// DailyLimitMillis returns the daily work limit in milliseconds, the unit
// the analytics engine computes in.
func (c *Config) DailyLimitMillis() int64 {
	return time.Duration(c.Tracking.DailyWorkLimit).Milliseconds()
}

// DefaultDailyLimitMillis is the daily work limit used when nothing is configured.
var DefaultDailyLimitMillis = 8 * timeutil.MillisPerHour

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("WORKLOG_STORE_DIR"); dir != "" {
		c.Store.Dir = dir
	}
	if filename := os.Getenv("WORKLOG_STORE_FILENAME"); filename != "" {
		c.Store.Filename = filename
	}
	if limit := os.Getenv("WORKLOG_DAILY_LIMIT"); limit != "" {
		if d, err := time.ParseDuration(limit); err == nil && d > 0 {
			c.Tracking.DailyWorkLimit = Duration(d)
		}
	}
	if format := os.Getenv("WORKLOG_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if recent := os.Getenv("WORKLOG_RECENT_ENTRIES"); recent != "" {
		if n, err := strconv.Atoi(recent); err == nil && n > 0 {
			c.Display.RecentEntries = n
		}
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration. Timer durations live here so the
// timer logic never reads them from a presentation layer.
type Config struct {
	DataDir                 string `yaml:"data_dir"`
	FocusMinutes            int    `yaml:"focus_minutes"`
	ShortBreakMinutes       int    `yaml:"short_break_minutes"`
	LongBreakMinutes        int    `yaml:"long_break_minutes"`
	SessionsBeforeLongBreak int    `yaml:"sessions_before_long_break"`
	Debug                   bool   `yaml:"debug"`
}

// Default timer durations, in minutes.
const (
	DefaultFocusMinutes            = 25
	DefaultShortBreakMinutes       = 5
	DefaultLongBreakMinutes        = 15
	DefaultSessionsBeforeLongBreak = 4
)

// Load builds the configuration from defaults, an optional YAML file
// (PLANNER_CONFIG or <data dir>/config.yaml), and environment variable
// overrides, in that order.
func Load() (*Config, error) {
	cfg := &Config{
		FocusMinutes:            DefaultFocusMinutes,
		ShortBreakMinutes:       DefaultShortBreakMinutes,
		LongBreakMinutes:        DefaultLongBreakMinutes,
		SessionsBeforeLongBreak: DefaultSessionsBeforeLongBreak,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.DataDir = filepath.Join(home, ".study-planner")

	configPath := getEnv("PLANNER_CONFIG", filepath.Join(cfg.DataDir, "config.yaml"))
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	cfg.DataDir = getEnv("PLANNER_DATA_DIR", cfg.DataDir)
	cfg.FocusMinutes = getEnvInt("PLANNER_FOCUS_MINUTES", cfg.FocusMinutes)
	cfg.ShortBreakMinutes = getEnvInt("PLANNER_SHORT_BREAK_MINUTES", cfg.ShortBreakMinutes)
	cfg.LongBreakMinutes = getEnvInt("PLANNER_LONG_BREAK_MINUTES", cfg.LongBreakMinutes)
	cfg.SessionsBeforeLongBreak = getEnvInt("PLANNER_SESSIONS_BEFORE_LONG_BREAK", cfg.SessionsBeforeLongBreak)
	cfg.Debug = getEnvBool("PLANNER_DEBUG", cfg.Debug)

	if cfg.FocusMinutes <= 0 || cfg.ShortBreakMinutes <= 0 || cfg.LongBreakMinutes <= 0 {
		return nil, fmt.Errorf("timer durations must be positive")
	}
	if cfg.SessionsBeforeLongBreak <= 0 {
		return nil, fmt.Errorf("sessions before long break must be positive")
	}

	return cfg, nil
}

// DatabasePath returns the location of the snapshot database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "planner.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

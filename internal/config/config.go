// Package config loads scorecard settings from YAML, .env, and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/scorecard/internal/leaderboard"
	"github.com/abhisek/scorecard/internal/profile"
)

// Config holds all scorecard configuration.
type Config struct {
	Stats       StatsConfig       `yaml:"stats"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Log         LogConfig         `yaml:"log"`

	// Profile seeds the learner profile shown before the first refresh.
	Profile profile.Snapshot `yaml:"profile"`
}

// StatsConfig configures the stats API client.
type StatsConfig struct {
	// BaseURL of the stats API. Empty disables refresh and feedback.
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"` // Default: 10s
}

// LeaderboardConfig selects where leaderboard entries come from. At most
// one of File and RedisAddr may be set.
type LeaderboardConfig struct {
	File          string `yaml:"file"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	RedisKey      string `yaml:"redis_key"`
	Limit         int    `yaml:"limit"` // Default: 50
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// File receives log output. Empty discards logs, since stdout
	// belongs to the TUI.
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error. Default: info
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Stats: StatsConfig{
			Timeout: 10 * time.Second,
		},
		Leaderboard: LeaderboardConfig{
			RedisKey: leaderboard.DefaultRedisKey,
			Limit:    leaderboard.DefaultLimit,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath resolves the config file path:
// 1. SCORECARD_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/scorecard/config.yaml
// 3. ~/.config/scorecard/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("SCORECARD_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "scorecard", "config.yaml"), nil
}

// Load builds a Config from defaults, the YAML file at path (if it exists),
// a .env file in the working directory (if it exists), and finally
// SCORECARD_* environment variables.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SCORECARD_* environment variables.
func (c *Config) ApplyEnv() error {
	if u := os.Getenv("SCORECARD_STATS_URL"); u != "" {
		c.Stats.BaseURL = u
	}
	if t := os.Getenv("SCORECARD_STATS_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("SCORECARD_STATS_TIMEOUT: %w", err)
		}
		c.Stats.Timeout = d
	}

	if f := os.Getenv("SCORECARD_LEADERBOARD_FILE"); f != "" {
		c.Leaderboard.File = f
	}
	if a := os.Getenv("SCORECARD_REDIS_ADDR"); a != "" {
		c.Leaderboard.RedisAddr = a
	}
	if p := os.Getenv("SCORECARD_REDIS_PASSWORD"); p != "" {
		c.Leaderboard.RedisPassword = p
	}
	if db := os.Getenv("SCORECARD_REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return fmt.Errorf("SCORECARD_REDIS_DB: %w", err)
		}
		c.Leaderboard.RedisDB = n
	}

	if f := os.Getenv("SCORECARD_LOG_FILE"); f != "" {
		c.Log.File = f
	}
	if l := os.Getenv("SCORECARD_LOG_LEVEL"); l != "" {
		c.Log.Level = l
	}

	if u := os.Getenv("SCORECARD_USERNAME"); u != "" {
		c.Profile.Username = u
	}
	return nil
}

// Validate checks for contradictory or out-of-range settings.
func (c Config) Validate() error {
	if c.Leaderboard.File != "" && c.Leaderboard.RedisAddr != "" {
		return fmt.Errorf("leaderboard: file and redis_addr are mutually exclusive")
	}
	if c.Leaderboard.Limit < 0 {
		return fmt.Errorf("leaderboard: limit must not be negative, got %d", c.Leaderboard.Limit)
	}
	if c.Stats.Timeout <= 0 {
		return fmt.Errorf("stats: timeout must be positive, got %s", c.Stats.Timeout)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", c.Log.Level)
	}
	return nil
}

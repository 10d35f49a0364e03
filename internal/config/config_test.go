package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so no stray .env is read.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stats:
  base_url: https://learn.example.com
  timeout: 3s
leaderboard:
  redis_addr: localhost:6379
  limit: 10
log:
  level: debug
profile:
  username: BigOrange
  level: 7
  streak: 12
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://learn.example.com", cfg.Stats.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Stats.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Leaderboard.RedisAddr)
	assert.Equal(t, "leaderboard:streak", cfg.Leaderboard.RedisKey, "unset keys keep defaults")
	assert.Equal(t, 10, cfg.Leaderboard.Limit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "BigOrange", cfg.Profile.Username)
	assert.Equal(t, 7, cfg.Profile.Level)
	assert.Equal(t, 12, cfg.Profile.Streak)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stats: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_DotEnvAndEnvOverride(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SCORECARD_LOG_LEVEL=warn\n"), 0o644))
	t.Setenv("SCORECARD_STATS_URL", "http://localhost:8080")
	t.Setenv("SCORECARD_REDIS_DB", "2")
	t.Cleanup(func() { _ = os.Unsetenv("SCORECARD_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Stats.BaseURL)
	assert.Equal(t, 2, cfg.Leaderboard.RedisDB)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("SCORECARD_STATS_TIMEOUT", "soon")
	cfg := DefaultConfig()
	assert.Error(t, cfg.ApplyEnv())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"file and redis", func(c *Config) {
			c.Leaderboard.File = "board.json"
			c.Leaderboard.RedisAddr = "localhost:6379"
		}, true},
		{"negative limit", func(c *Config) { c.Leaderboard.Limit = -1 }, true},
		{"zero timeout", func(c *Config) { c.Stats.Timeout = 0 }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

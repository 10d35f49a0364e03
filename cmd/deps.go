package cmd

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/abhisek/scorecard/internal/app"
	"github.com/abhisek/scorecard/internal/config"
	"github.com/abhisek/scorecard/internal/leaderboard"
	"github.com/abhisek/scorecard/internal/logging"
	"github.com/abhisek/scorecard/internal/profile"
	"github.com/abhisek/scorecard/internal/results"
	"github.com/abhisek/scorecard/internal/stats"
)

// deps holds everything built from configuration for one command run.
type deps struct {
	cfg     config.Config
	log     *slog.Logger
	profile *profile.Store
	client  *stats.Client // nil when no stats URL is configured
	board   leaderboard.Source
	redis   *leaderboard.RedisSource // set when the board is backed by Redis

	closers []func() error
}

// loadConfig resolves the config path, loads it, and applies persistent
// flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if f, _ := cmd.Flags().GetString("log-file"); f != "" {
		cfg.Log.File = f
	}
	if u, _ := cmd.Flags().GetString("stats-url"); u != "" {
		cfg.Stats.BaseURL = u
	}
	return cfg, nil
}

// buildDeps wires the profile store, stats client, and leaderboard source
// from cfg. Call close on the result when done.
func buildDeps(cfg config.Config) (*deps, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	d := &deps{
		cfg:     cfg,
		log:     log,
		profile: profile.NewStore(cfg.Profile),
		closers: []func() error{closeLog},
	}

	if cfg.Stats.BaseURL != "" {
		d.client = stats.NewClient(cfg.Stats.BaseURL, cfg.Stats.Timeout, d.profile)
	}

	switch {
	case cfg.Leaderboard.File != "":
		d.board = leaderboard.NewFileSource(cfg.Leaderboard.File)
	case cfg.Leaderboard.RedisAddr != "":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Leaderboard.RedisAddr,
			Password: cfg.Leaderboard.RedisPassword,
			DB:       cfg.Leaderboard.RedisDB,
		})
		d.redis = leaderboard.NewRedisSource(rdb, cfg.Leaderboard.RedisKey)
		d.board = d.redis
		d.closers = append(d.closers, rdb.Close)
	default:
		d.board = &leaderboard.StaticSource{}
	}

	log.Info("scorecard starting",
		"stats_api", cfg.Stats.BaseURL != "",
		"leaderboard", boardKind(cfg.Leaderboard))
	return d, nil
}

func boardKind(c config.LeaderboardConfig) string {
	switch {
	case c.File != "":
		return "file"
	case c.RedisAddr != "":
		return "redis"
	default:
		return "none"
	}
}

func (d *deps) close() {
	// Close in reverse so the log file outlives everything else.
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			d.log.Warn("close failed", "error", err)
		}
	}
}

// appOptions converts deps into TUI options. last may be nil.
func (d *deps) appOptions(last *results.State) app.Options {
	opts := app.Options{
		Profile:     d.profile,
		Leaderboard: d.board,
		Limit:       d.cfg.Leaderboard.Limit,
		Logger:      d.log,
		LastResult:  last,
	}
	// Assign only when set so the interfaces stay nil otherwise.
	if d.client != nil {
		opts.Stats = d.client
		opts.Feedback = d.client
	}
	return opts
}

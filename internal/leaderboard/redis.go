package leaderboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the sorted set holding current streak lengths by username.
const DefaultRedisKey = "leaderboard:streak"

// RedisSource reads the leaderboard from a Redis sorted set. Avatar
// references live in a companion hash at "<key>:icons".
type RedisSource struct {
	client *redis.Client
	key    string
}

var _ Source = (*RedisSource)(nil)

// NewRedisSource creates a RedisSource over key. An empty key selects DefaultRedisKey.
func NewRedisSource(client *redis.Client, key string) *RedisSource {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisSource{client: client, key: key}
}

func (s *RedisSource) iconsKey() string {
	return s.key + ":icons"
}

func (s *RedisSource) Top(ctx context.Context, limit int) ([]Entry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	results, err := s.client.ZRevRangeWithScores(ctx, s.key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard %s: %w", s.key, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	members := make([]string, len(results))
	for i, z := range results {
		members[i] = fmt.Sprint(z.Member)
	}

	icons, err := s.client.HMGet(ctx, s.iconsKey(), members...).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard icons: %w", err)
	}

	entries := make([]Entry, len(results))
	for i, z := range results {
		entries[i] = Entry{
			Rank:  strconv.Itoa(i + 1),
			Label: members[i],
			Value: strconv.FormatFloat(z.Score, 'f', -1, 64),
		}
		if i < len(icons) {
			if icon, ok := icons[i].(string); ok {
				entries[i].Image = icon
			}
		}
	}
	return entries, nil
}

// SetStreak records a user's streak and optional avatar reference.
func (s *RedisSource) SetStreak(ctx context.Context, username string, streak int, icon string) error {
	if err := s.client.ZAdd(ctx, s.key, redis.Z{Score: float64(streak), Member: username}).Err(); err != nil {
		return fmt.Errorf("update streak for %s: %w", username, err)
	}
	if icon == "" {
		return nil
	}
	if err := s.client.HSet(ctx, s.iconsKey(), username, icon).Err(); err != nil {
		return fmt.Errorf("update icon for %s: %w", username, err)
	}
	return nil
}

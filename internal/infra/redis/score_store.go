package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"language-sprint-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ScoreStore persists personal bests and the leaderboard in Redis.
// Layout:
//   - bests:{username}      — JSON personal-bests blob
//   - leaderboard:scores    — sorted set, member = username, score = total
//   - leaderboard:meta      — hash, field = username, value = JSON entry
//
// The sorted set gives ordering; the meta hash carries the row details.
type ScoreStore struct {
	client *redis.Client
	clock  func() time.Time
}

const (
	leaderboardScoresKey = "leaderboard:scores"
	leaderboardMetaKey   = "leaderboard:meta"
)

func NewScoreStore(client *redis.Client) *ScoreStore {
	return &ScoreStore{client: client, clock: time.Now}
}

func bestsKey(username string) string {
	return "bests:" + username
}

func (s *ScoreStore) PersonalBests(ctx context.Context, username string) (domain.PersonalBests, error) {
	raw, err := s.client.Get(ctx, bestsKey(username)).Result()
	if err == redis.Nil {
		return domain.PersonalBests{}, nil
	}
	if err != nil {
		return domain.PersonalBests{}, fmt.Errorf("load personal bests: %w", err)
	}
	var bests domain.PersonalBests
	if err := json.Unmarshal([]byte(raw), &bests); err != nil {
		return domain.PersonalBests{}, fmt.Errorf("unmarshal personal bests: %w", err)
	}
	return bests, nil
}

func (s *ScoreStore) SavePersonalBests(ctx context.Context, username string, bests domain.PersonalBests) error {
	raw, err := json.Marshal(bests)
	if err != nil {
		return fmt.Errorf("marshal personal bests: %w", err)
	}
	if err := s.client.Set(ctx, bestsKey(username), raw, 0).Err(); err != nil {
		return fmt.Errorf("save personal bests: %w", err)
	}
	return nil
}

func (s *ScoreStore) LeaderboardEntry(ctx context.Context, username string) (domain.LeaderboardEntry, bool, error) {
	raw, err := s.client.HGet(ctx, leaderboardMetaKey, username).Result()
	if err == redis.Nil {
		return domain.LeaderboardEntry{}, false, nil
	}
	if err != nil {
		return domain.LeaderboardEntry{}, false, fmt.Errorf("load leaderboard entry: %w", err)
	}
	var entry domain.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.LeaderboardEntry{}, false, fmt.Errorf("unmarshal leaderboard entry: %w", err)
	}
	return entry, true, nil
}

func (s *ScoreStore) SaveLeaderboardEntry(ctx context.Context, entry domain.LeaderboardEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal leaderboard entry: %w", err)
	}
	pipe := s.client.Pipeline()
	pipe.ZAdd(ctx, leaderboardScoresKey, redis.Z{Score: float64(entry.TotalScore), Member: entry.Username})
	pipe.HSet(ctx, leaderboardMetaKey, entry.Username, raw)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save leaderboard entry: %w", err)
	}
	return nil
}

func (s *ScoreStore) Leaderboard(ctx context.Context, limit int) (domain.Leaderboard, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	usernames, err := s.client.ZRevRange(ctx, leaderboardScoresKey, 0, stop).Result()
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("load leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(usernames))
	for _, username := range usernames {
		raw, err := s.client.HGet(ctx, leaderboardMetaKey, username).Result()
		if err != nil {
			continue
		}
		var entry domain.LeaderboardEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return domain.Leaderboard{Entries: entries, UpdatedAt: s.clock()}, nil
}

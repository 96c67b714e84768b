package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"language-sprint-service/internal/domain"
)

// ScoreStore keeps personal bests and the leaderboard in process memory.
type ScoreStore struct {
	mu      sync.RWMutex
	bests   map[string]domain.PersonalBests
	entries map[string]domain.LeaderboardEntry
	clock   func() time.Time
}

func NewScoreStore() *ScoreStore {
	return &ScoreStore{
		bests:   make(map[string]domain.PersonalBests),
		entries: make(map[string]domain.LeaderboardEntry),
		clock:   time.Now,
	}
}

func (s *ScoreStore) PersonalBests(_ context.Context, username string) (domain.PersonalBests, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bests[username], nil
}

func (s *ScoreStore) SavePersonalBests(_ context.Context, username string, bests domain.PersonalBests) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bests[username] = bests
	return nil
}

func (s *ScoreStore) LeaderboardEntry(_ context.Context, username string) (domain.LeaderboardEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[username]
	return entry, ok, nil
}

func (s *ScoreStore) SaveLeaderboardEntry(_ context.Context, entry domain.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Username] = entry
	return nil
}

func (s *ScoreStore) Leaderboard(_ context.Context, limit int) (domain.Leaderboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.LeaderboardEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].Username < entries[j].Username
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return domain.Leaderboard{Entries: entries, UpdatedAt: s.clock()}, nil
}

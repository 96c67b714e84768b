package redis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"language-sprint-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// GuestbookStore keeps guestbook signatures in a Redis hash keyed by
// username, so re-signing overwrites the previous timestamp.
type GuestbookStore struct {
	client *redis.Client
	clock  func() time.Time
}

const guestbookKey = "guestbook:entries"

func NewGuestbookStore(client *redis.Client) *GuestbookStore {
	return &GuestbookStore{client: client, clock: time.Now}
}

func (s *GuestbookStore) Sign(ctx context.Context, username string) (domain.GuestbookEntry, error) {
	entry := domain.GuestbookEntry{Username: username, SignedAt: s.clock()}
	if err := s.client.HSet(ctx, guestbookKey, username, entry.SignedAt.Format(time.RFC3339Nano)).Err(); err != nil {
		return domain.GuestbookEntry{}, fmt.Errorf("sign guestbook: %w", err)
	}
	return entry, nil
}

func (s *GuestbookStore) Entries(ctx context.Context) ([]domain.GuestbookEntry, error) {
	raw, err := s.client.HGetAll(ctx, guestbookKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load guestbook: %w", err)
	}

	entries := make([]domain.GuestbookEntry, 0, len(raw))
	for username, stamp := range raw {
		signedAt, err := time.Parse(time.RFC3339Nano, stamp)
		if err != nil {
			continue
		}
		entries = append(entries, domain.GuestbookEntry{Username: username, SignedAt: signedAt})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SignedAt.Before(entries[j].SignedAt)
	})
	return entries, nil
}

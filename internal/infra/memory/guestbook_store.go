package memory

import (
	"context"
	"sync"
	"time"

	"language-sprint-service/internal/domain"
)

// GuestbookStore keeps guestbook signatures in process memory. Re-signing
// refreshes the existing entry's timestamp.
type GuestbookStore struct {
	mu      sync.RWMutex
	entries []domain.GuestbookEntry
	clock   func() time.Time
}

func NewGuestbookStore() *GuestbookStore {
	return &GuestbookStore{clock: time.Now}
}

func (s *GuestbookStore) Sign(_ context.Context, username string) (domain.GuestbookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.GuestbookEntry{Username: username, SignedAt: s.clock()}
	for i := range s.entries {
		if s.entries[i].Username == username {
			s.entries[i] = entry
			return entry, nil
		}
	}
	s.entries = append(s.entries, entry)
	return entry, nil
}

func (s *GuestbookStore) Entries(_ context.Context) ([]domain.GuestbookEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.GuestbookEntry, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}

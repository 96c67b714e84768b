package app

import (
	"context"
	"strings"

	"language-sprint-service/internal/domain"
)

// GuestbookStore persists guestbook signatures.
type GuestbookStore interface {
	Sign(ctx context.Context, username string) (domain.GuestbookEntry, error)
	Entries(ctx context.Context) ([]domain.GuestbookEntry, error)
}

// GuestbookService validates and records guestbook signatures.
type GuestbookService struct {
	store GuestbookStore
}

func NewGuestbookService(store GuestbookStore) *GuestbookService {
	return &GuestbookService{store: store}
}

func (s *GuestbookService) Sign(ctx context.Context, username string) (domain.GuestbookEntry, error) {
	username, err := ValidateUsername(username)
	if err != nil {
		return domain.GuestbookEntry{}, err
	}
	return s.store.Sign(ctx, username)
}

func (s *GuestbookService) Entries(ctx context.Context) ([]domain.GuestbookEntry, error) {
	return s.store.Entries(ctx)
}

// ValidateUsername trims and checks a username: 2-20 characters, no markup
// or quoting characters. Returns the trimmed name.
func ValidateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if len(username) < 2 || len(username) > 20 {
		return "", domain.ErrInvalidUsername
	}
	if strings.ContainsAny(username, `<>"'&`) {
		return "", domain.ErrInvalidUsername
	}
	return username, nil
}

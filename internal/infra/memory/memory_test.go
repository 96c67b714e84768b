package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"language-sprint-service/internal/domain"
)

type countingLoader struct {
	calls     int
	languages []domain.Language
	err       error
}

func (l *countingLoader) LoadCorpus(context.Context) ([]domain.Language, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.languages, nil
}

func sampleLanguages() []domain.Language {
	return []domain.Language{
		{Code: "es", Name: "Spanish", AcceptableAnswers: []string{"spanish"}, Samples: []string{"hola"}},
		{Code: "fr", Name: "French", AcceptableAnswers: []string{"french"}, Samples: []string{"bonjour"}},
	}
}

func TestCorpusRepositoryCachesWithinTTL(t *testing.T) {
	loader := &countingLoader{languages: sampleLanguages()}
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := NewCorpusRepository(loader, 10*time.Minute)
	repo.clock = func() time.Time { return current }
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		languages, err := repo.Languages(ctx)
		if err != nil {
			t.Fatalf("Languages: %v", err)
		}
		if len(languages) != 2 {
			t.Fatalf("expected 2 languages, got %d", len(languages))
		}
	}
	if loader.calls != 1 {
		t.Fatalf("expected 1 loader call, got %d", loader.calls)
	}
}

func TestCorpusRepositoryReloadsAfterExpiry(t *testing.T) {
	loader := &countingLoader{languages: sampleLanguages()}
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := NewCorpusRepository(loader, 10*time.Minute)
	repo.clock = func() time.Time { return current }
	ctx := context.Background()

	if _, err := repo.Languages(ctx); err != nil {
		t.Fatalf("Languages: %v", err)
	}

	// Past the TTL plus the full jitter margin the cache must be stale.
	current = current.Add(12 * time.Minute)
	if _, err := repo.Languages(ctx); err != nil {
		t.Fatalf("Languages after expiry: %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected a reload, got %d loader calls", loader.calls)
	}
}

func TestCorpusRepositoryDoesNotCacheErrors(t *testing.T) {
	loader := &countingLoader{err: errors.New("store down")}
	repo := NewCorpusRepository(loader, 10*time.Minute)
	ctx := context.Background()

	if _, err := repo.Languages(ctx); err == nil {
		t.Fatal("expected an error")
	}

	loader.err = nil
	loader.languages = sampleLanguages()
	languages, err := repo.Languages(ctx)
	if err != nil {
		t.Fatalf("Languages after recovery: %v", err)
	}
	if len(languages) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(languages))
	}
	if loader.calls != 2 {
		t.Fatalf("expected 2 loader calls, got %d", loader.calls)
	}
}

func TestStaticCorpusLoaderEmpty(t *testing.T) {
	loader := NewStaticCorpusLoader(nil)
	if _, err := loader.LoadCorpus(context.Background()); !errors.Is(err, domain.ErrCorpusEmpty) {
		t.Fatalf("expected ErrCorpusEmpty, got %v", err)
	}
}

func TestScoreStoreRoundTrip(t *testing.T) {
	store := NewScoreStore()
	ctx := context.Background()

	bests, err := store.PersonalBests(ctx, "alice")
	if err != nil {
		t.Fatalf("PersonalBests: %v", err)
	}
	if bests.TotalGamesPlayed != 0 {
		t.Fatalf("expected zero value for unknown player, got %+v", bests)
	}

	bests.TotalGamesPlayed = 4
	if err := store.SavePersonalBests(ctx, "alice", bests); err != nil {
		t.Fatalf("SavePersonalBests: %v", err)
	}
	loaded, err := store.PersonalBests(ctx, "alice")
	if err != nil {
		t.Fatalf("PersonalBests reload: %v", err)
	}
	if loaded.TotalGamesPlayed != 4 {
		t.Fatalf("expected 4 games, got %d", loaded.TotalGamesPlayed)
	}
}

func TestScoreStoreLeaderboardOrdering(t *testing.T) {
	store := NewScoreStore()
	ctx := context.Background()

	for _, entry := range []domain.LeaderboardEntry{
		{Username: "carol", TotalScore: 700},
		{Username: "alice", TotalScore: 900},
		{Username: "bob", TotalScore: 700},
		{Username: "dave", TotalScore: 100},
	} {
		if err := store.SaveLeaderboardEntry(ctx, entry); err != nil {
			t.Fatalf("SaveLeaderboardEntry: %v", err)
		}
	}

	board, err := store.Leaderboard(ctx, 3)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(board.Entries))
	}
	want := []string{"alice", "bob", "carol"}
	for i, username := range want {
		if board.Entries[i].Username != username {
			t.Fatalf("position %d: got %s, want %s", i, board.Entries[i].Username, username)
		}
	}
}

func TestGuestbookResignRefreshesTimestamp(t *testing.T) {
	store := NewGuestbookStore()
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.clock = func() time.Time { return current }
	ctx := context.Background()

	if _, err := store.Sign(ctx, "alice"); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	current = current.Add(time.Hour)
	entry, err := store.Sign(ctx, "alice")
	if err != nil {
		t.Fatalf("re-Sign: %v", err)
	}
	if !entry.SignedAt.Equal(current) {
		t.Fatalf("expected refreshed timestamp %v, got %v", current, entry.SignedAt)
	}

	entries, err := store.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("re-signing should not duplicate, got %d entries", len(entries))
	}
}

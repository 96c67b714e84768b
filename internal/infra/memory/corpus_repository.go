package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"language-sprint-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CorpusLoader fetches the language corpus from a backing store.
type CorpusLoader interface {
	LoadCorpus(ctx context.Context) ([]domain.Language, error)
}

// CorpusRepository caches the corpus with TTL to avoid repeated store hits.
// The corpus is one table loaded as a whole, so a single cache slot suffices.
type CorpusRepository struct {
	loader CorpusLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cache     []domain.Language
	expiresAt time.Time
}

func NewCorpusRepository(loader CorpusLoader, ttl time.Duration) *CorpusRepository {
	return &CorpusRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CorpusRepository) Languages(ctx context.Context) ([]domain.Language, error) {
	now := r.clock()

	r.mu.RLock()
	if r.cache != nil && r.expiresAt.After(now) {
		cached := r.cache
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("corpus", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.cache != nil && r.expiresAt.After(now) {
			cached := r.cache
			r.mu.RUnlock()
			return cached, nil
		}
		r.mu.RUnlock()

		languages, err := r.loader.LoadCorpus(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache = languages
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return languages, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Language), nil
}

// StaticCorpusLoader serves a fixed language table (useful for tests/demos
// and when no database is configured).
type StaticCorpusLoader struct {
	languages []domain.Language
}

func NewStaticCorpusLoader(languages []domain.Language) *StaticCorpusLoader {
	return &StaticCorpusLoader{languages: languages}
}

func (l *StaticCorpusLoader) LoadCorpus(_ context.Context) ([]domain.Language, error) {
	if len(l.languages) == 0 {
		return nil, domain.ErrCorpusEmpty
	}
	return l.languages, nil
}

func (r *CorpusRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

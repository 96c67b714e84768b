package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"language-sprint-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// CorpusLoader fetches the language corpus from a backing store.
type CorpusLoader interface {
	LoadCorpus(ctx context.Context) ([]domain.Language, error)
}

// CorpusRepository caches languages in Redis (one hash, field per language
// code, JSON value) and falls back to a loader on cache miss.
type CorpusRepository struct {
	client *redis.Client
	loader CorpusLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

const corpusKey = "corpus:languages"

func NewCorpusRepository(client *redis.Client, loader CorpusLoader, ttl time.Duration) *CorpusRepository {
	return &CorpusRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CorpusRepository) Languages(ctx context.Context) ([]domain.Language, error) {
	cached, err := r.client.HGetAll(ctx, corpusKey).Result()
	if err == nil && len(cached) > 0 {
		return decodeLanguages(cached), nil
	}

	result, err, _ := r.sf.Do(corpusKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		cached, err := r.client.HGetAll(ctx, corpusKey).Result()
		if err == nil && len(cached) > 0 {
			return decodeLanguages(cached), nil
		}

		languages, err := r.loader.LoadCorpus(ctx)
		if err != nil {
			return nil, err
		}

		pipe := r.client.Pipeline()
		for _, lang := range languages {
			raw, err := json.Marshal(lang)
			if err != nil {
				continue
			}
			pipe.HSet(ctx, corpusKey, lang.Code, raw)
		}
		if ttl := r.ttlWithJitter(); ttl > 0 {
			pipe.Expire(ctx, corpusKey, ttl)
		}
		_, _ = pipe.Exec(ctx)

		return languages, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Language), nil
}

func decodeLanguages(cached map[string]string) []domain.Language {
	languages := make([]domain.Language, 0, len(cached))
	for _, raw := range cached {
		var lang domain.Language
		if err := json.Unmarshal([]byte(raw), &lang); err != nil {
			continue
		}
		languages = append(languages, lang)
	}
	return languages
}

func (r *CorpusRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

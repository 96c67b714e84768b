package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"language-sprint-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CorpusLoader loads language JSONB rows from Postgres.
type CorpusLoader struct {
	pool *pgxpool.Pool
}

func NewCorpusLoader(pool *pgxpool.Pool) *CorpusLoader {
	return &CorpusLoader{pool: pool}
}

func (l *CorpusLoader) LoadCorpus(ctx context.Context) ([]domain.Language, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM languages ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	defer rows.Close()

	var languages []domain.Language
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		var lang domain.Language
		if err := json.Unmarshal(raw, &lang); err != nil {
			return nil, fmt.Errorf("unmarshal language: %w", err)
		}
		languages = append(languages, lang)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corpus: %w", err)
	}
	if len(languages) == 0 {
		return nil, domain.ErrCorpusEmpty
	}
	return languages, nil
}

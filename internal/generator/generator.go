// Package generator samples the language corpus into an ordered question
// list for one game: shuffle-then-slice so no language repeats within a run,
// one random sample phrase per chosen language.
package generator

import (
	"math/rand"
	"time"

	"language-sprint-service/internal/domain"
)

// Generator produces question lists. The random source and clock are
// injectable for deterministic tests.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// New seeds a generator from the wall clock.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithRand builds a generator with an explicit source and clock.
func NewWithRand(rnd *rand.Rand, now func() time.Time) *Generator {
	return &Generator{rnd: rnd, now: now}
}

// Generate samples the corpus for a mode. It returns min(configured count,
// available languages) questions; a short or empty list is a valid result,
// never an error. Callers own the returned slice.
func (g *Generator) Generate(languages []domain.Language, cfg domain.ModeConfig, difficulty domain.Difficulty) []domain.Question {
	pool := filterByDifficulty(languages, difficulty)

	shuffled := make([]domain.Language, len(pool))
	copy(shuffled, pool)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	count := cfg.QuestionCount
	if count > len(shuffled) {
		count = len(shuffled)
	}

	questions := make([]domain.Question, 0, count)
	createdAt := g.now()
	for i := 0; i < count; i++ {
		lang := shuffled[i]
		questions = append(questions, domain.Question{
			ID:                i,
			Prompt:            lang.Samples[g.rnd.Intn(len(lang.Samples))],
			CorrectAnswer:     lang.Name,
			AcceptableAnswers: lang.AcceptableAnswers,
			CreatedAt:         createdAt,
		})
	}
	return questions
}

// filterByDifficulty keeps languages whose tag matches the request. Untagged
// and medium languages pass every filter; an empty request passes everything.
func filterByDifficulty(languages []domain.Language, difficulty domain.Difficulty) []domain.Language {
	if difficulty == domain.DifficultyAny {
		return languages
	}
	filtered := make([]domain.Language, 0, len(languages))
	for _, lang := range languages {
		if lang.Difficulty == difficulty || lang.Difficulty == domain.DifficultyAny || lang.Difficulty == domain.DifficultyMedium {
			filtered = append(filtered, lang)
		}
	}
	return filtered
}

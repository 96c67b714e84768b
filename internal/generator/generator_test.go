package generator

import (
	"math/rand"
	"testing"
	"time"

	"language-sprint-service/internal/domain"
)

func testCorpus() []domain.Language {
	return []domain.Language{
		{Code: "es", Name: "Spanish", AcceptableAnswers: []string{"spanish", "es"}, Samples: []string{"hola", "buenos días"}, Difficulty: domain.DifficultyEasy},
		{Code: "fr", Name: "French", AcceptableAnswers: []string{"french", "fr"}, Samples: []string{"bonjour"}, Difficulty: domain.DifficultyEasy},
		{Code: "ja", Name: "Japanese", AcceptableAnswers: []string{"japanese", "ja"}, Samples: []string{"こんにちは"}, Difficulty: domain.DifficultyMedium},
		{Code: "ar", Name: "Arabic", AcceptableAnswers: []string{"arabic", "ar"}, Samples: []string{"مرحبا"}, Difficulty: domain.DifficultyHard},
		{Code: "eo", Name: "Esperanto", AcceptableAnswers: []string{"esperanto", "eo"}, Samples: []string{"saluton"}},
	}
}

func newTestGenerator(seed int64) *Generator {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewWithRand(rand.New(rand.NewSource(seed)), func() time.Time { return now })
}

func TestGenerateNoLanguageRepeats(t *testing.T) {
	cfg := domain.ModeConfig{Mode: domain.ModeSprint, QuestionCount: 5}

	for seed := int64(0); seed < 20; seed++ {
		questions := newTestGenerator(seed).Generate(testCorpus(), cfg, domain.DifficultyAny)
		seen := make(map[string]bool)
		for _, q := range questions {
			if seen[q.CorrectAnswer] {
				t.Fatalf("seed %d: language %q repeated", seed, q.CorrectAnswer)
			}
			seen[q.CorrectAnswer] = true
		}
	}
}

func TestGenerateCountClampedToAvailable(t *testing.T) {
	gen := newTestGenerator(2)
	cfg := domain.ModeConfig{Mode: domain.ModeEndless, QuestionCount: 100}

	questions := gen.Generate(testCorpus(), cfg, domain.DifficultyAny)
	if len(questions) != len(testCorpus()) {
		t.Fatalf("expected %d questions, got %d", len(testCorpus()), len(questions))
	}
}

func TestGenerateSequentialIDs(t *testing.T) {
	gen := newTestGenerator(3)
	cfg := domain.ModeConfig{Mode: domain.ModeSprint, QuestionCount: 4}

	questions := gen.Generate(testCorpus(), cfg, domain.DifficultyAny)
	for i, q := range questions {
		if q.ID != i {
			t.Fatalf("question %d has id %d", i, q.ID)
		}
	}
}

func TestGenerateDifficultyFilterIsInclusive(t *testing.T) {
	gen := newTestGenerator(4)
	cfg := domain.ModeConfig{Mode: domain.ModeSprint, QuestionCount: 10}

	// Hard request keeps hard, medium, and untagged languages.
	questions := gen.Generate(testCorpus(), cfg, domain.DifficultyHard)
	if len(questions) != 3 {
		t.Fatalf("expected 3 hard-eligible questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.CorrectAnswer == "Spanish" || q.CorrectAnswer == "French" {
			t.Fatalf("easy language %q passed a hard filter", q.CorrectAnswer)
		}
	}
}

func TestGenerateImpossibleFilterYieldsEmptyList(t *testing.T) {
	gen := newTestGenerator(5)
	cfg := domain.ModeConfig{Mode: domain.ModeSprint, QuestionCount: 10}
	easyOnly := []domain.Language{
		{Code: "es", Name: "Spanish", AcceptableAnswers: []string{"es"}, Samples: []string{"hola"}, Difficulty: domain.DifficultyEasy},
	}

	questions := gen.Generate(easyOnly, cfg, domain.DifficultyHard)
	if len(questions) != 0 {
		t.Fatalf("expected empty list, got %d questions", len(questions))
	}
}

func TestGeneratePromptComesFromChosenLanguage(t *testing.T) {
	gen := newTestGenerator(6)
	cfg := domain.ModeConfig{Mode: domain.ModeSprint, QuestionCount: 5}

	samplesByName := make(map[string]map[string]bool)
	for _, lang := range testCorpus() {
		set := make(map[string]bool)
		for _, sample := range lang.Samples {
			set[sample] = true
		}
		samplesByName[lang.Name] = set
	}

	for _, q := range gen.Generate(testCorpus(), cfg, domain.DifficultyAny) {
		if !samplesByName[q.CorrectAnswer][q.Prompt] {
			t.Fatalf("prompt %q does not belong to %q", q.Prompt, q.CorrectAnswer)
		}
	}
}

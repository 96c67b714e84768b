// Package engine implements the round engine: the state machine that turns a
// mode's rules, a question list, and a stream of answers into scores, lives,
// and a terminal result. Transitions are synchronous and never block; calls
// that arrive in the wrong state are no-ops rather than errors, since
// presentation-side timing races are expected.
package engine

import (
	"sync"
	"time"

	"language-sprint-service/internal/domain"
	"language-sprint-service/internal/matching"
)

const (
	baseScore   = 10
	comboBonus  = 5
	skipPenalty = 5
)

// SubmitResult is the synchronous feedback for one submit or skip call.
// Applied is false when the call was ignored (wrong state); full state is
// queried separately via Snapshot.
type SubmitResult struct {
	Applied   bool
	Correct   bool
	Finished  bool
	TimeSpent time.Duration
}

// Engine owns the state of a single run. One engine per run; transitions are
// serialized by an internal mutex so concurrent host calls are not reentrant.
type Engine struct {
	mu        sync.Mutex
	cfg       domain.ModeConfig
	questions []domain.Question
	now       func() time.Time

	status      domain.Status
	current     int
	answers     []domain.AnswerRecord
	lives       int
	score       int
	combo       int
	startedAt   time.Time
	endedAt     time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	abandoned   bool
}

// New constructs an engine in the ready state.
func New(cfg domain.ModeConfig, questions []domain.Question) *Engine {
	return NewWithClock(cfg, questions, time.Now)
}

// NewWithClock allows deterministic timestamps in tests.
func NewWithClock(cfg domain.ModeConfig, questions []domain.Question, now func() time.Time) *Engine {
	return &Engine{
		cfg:       cfg,
		questions: questions,
		now:       now,
		status:    domain.StatusReady,
		lives:     livesFor(cfg),
	}
}

func livesFor(cfg domain.ModeConfig) int {
	if cfg.Lives <= 0 {
		return domain.LivesUnlimited
	}
	return cfg.Lives
}

// Start begins a run from ready, or restarts from finished. It is a no-op
// while playing or paused. A run started with zero questions finishes
// immediately with an empty answer list.
func (e *Engine) Start() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == domain.StatusPlaying || e.status == domain.StatusPaused {
		return false
	}

	e.current = 0
	e.answers = nil
	e.lives = livesFor(e.cfg)
	e.score = 0
	e.combo = 0
	e.startedAt = e.now()
	e.endedAt = time.Time{}
	e.pausedAt = time.Time{}
	e.pausedTotal = 0
	e.abandoned = false
	e.status = domain.StatusPlaying

	if len(e.questions) == 0 {
		e.finishLocked()
	}
	return true
}

// SubmitAnswer judges raw input against the current question and advances the
// run. Valid only while playing; otherwise returns Applied=false.
func (e *Engine) SubmitAnswer(raw string) SubmitResult {
	return e.resolve(raw, 0)
}

// Skip resolves the current question as an incorrect empty answer with an
// extra point penalty.
func (e *Engine) Skip() SubmitResult {
	return e.resolve("", skipPenalty)
}

func (e *Engine) resolve(raw string, penalty int) SubmitResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != domain.StatusPlaying {
		return SubmitResult{Finished: e.status == domain.StatusFinished}
	}

	question := e.questions[e.current]
	correct := matching.Matches(raw, question.AcceptableAnswers)

	// Per-round time is total elapsed minus what prior rounds already
	// consumed, so pauses and clock jitter never double-charge a round.
	spent := e.elapsedLocked() - e.recordedLocked()
	if spent < 0 {
		spent = 0
	}

	e.answers = append(e.answers, domain.AnswerRecord{
		QuestionID:    question.ID,
		UserAnswer:    raw,
		CorrectAnswer: question.CorrectAnswer,
		IsCorrect:     correct,
		TimeSpent:     spent,
	})

	if correct {
		e.combo++
		e.score += baseScore + (e.combo-1)*comboBonus
	} else {
		e.combo = 0
		e.score -= penalty
		if e.lives > 0 {
			e.lives--
		}
	}

	lastQuestion := e.current == len(e.questions)-1
	over := e.lives == 0 || (e.cfg.EndOnMiss && !correct)
	if over || lastQuestion {
		e.finishLocked()
	} else {
		e.current++
	}

	return SubmitResult{
		Applied:   true,
		Correct:   correct,
		Finished:  e.status == domain.StatusFinished,
		TimeSpent: spent,
	}
}

// Pause suspends the run. The elapsed clock stops; paused time is never
// charged to the next round.
func (e *Engine) Pause() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != domain.StatusPlaying {
		return false
	}
	e.pausedAt = e.now()
	e.status = domain.StatusPaused
	return true
}

// Resume restarts a paused run.
func (e *Engine) Resume() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != domain.StatusPaused {
		return false
	}
	e.pausedTotal += e.now().Sub(e.pausedAt)
	e.pausedAt = time.Time{}
	e.status = domain.StatusPlaying
	return true
}

// UpdateElapsed is the asynchronous deadline trigger for timed modes: once
// elapsed reaches the mode's time limit the run finishes exactly as if lives
// had run out. Idempotent after termination; inert for untimed modes.
func (e *Engine) UpdateElapsed(elapsed time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != domain.StatusPlaying || e.cfg.TimeLimit <= 0 {
		return false
	}
	if elapsed < e.cfg.TimeLimit {
		return false
	}
	e.finishLocked()
	return true
}

// Quit abandons the run: terminal like finished, but flagged so callers skip
// persistence.
func (e *Engine) Quit() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == domain.StatusFinished || e.status == domain.StatusReady {
		return false
	}
	if e.status == domain.StatusPaused {
		e.pausedTotal += e.now().Sub(e.pausedAt)
		e.pausedAt = time.Time{}
	}
	e.abandoned = true
	e.finishLocked()
	return true
}

// Elapsed reports playing time so far, excluding paused intervals.
func (e *Engine) Elapsed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elapsedLocked()
}

// Snapshot returns a copy of the full engine state.
func (e *Engine) Snapshot() domain.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	answers := make([]domain.AnswerRecord, len(e.answers))
	copy(answers, e.answers)

	return domain.GameState{
		Status:               e.status,
		CurrentQuestionIndex: e.current,
		Answers:              answers,
		LivesRemaining:       e.lives,
		StartedAt:            e.startedAt,
		EndedAt:              e.endedAt,
		Score:                e.score,
		ComboStreak:          e.combo,
		Abandoned:            e.abandoned,
	}
}

// CurrentQuestion returns the question awaiting an answer, if any.
func (e *Engine) CurrentQuestion() (domain.Question, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == domain.StatusFinished || e.current >= len(e.questions) {
		return domain.Question{}, false
	}
	return e.questions[e.current], true
}

// Questions returns the full question list for this run.
func (e *Engine) Questions() []domain.Question {
	return e.questions
}

// Stats builds the terminal result record. Meaningful once finished, but safe
// to call at any point.
func (e *Engine) Stats() domain.GameStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	correct := 0
	for _, answer := range e.answers {
		if answer.IsCorrect {
			correct++
		}
	}
	accuracy := 0
	if len(e.answers) > 0 {
		accuracy = int(float64(correct)/float64(len(e.answers))*100 + 0.5)
	}
	return domain.GameStats{
		Mode:         e.cfg.Mode,
		CorrectCount: correct,
		TotalCount:   len(e.answers),
		Accuracy:     accuracy,
		Score:        e.score,
		TotalTime:    e.elapsedLocked(),
	}
}

func (e *Engine) finishLocked() {
	e.status = domain.StatusFinished
	e.endedAt = e.now()
}

func (e *Engine) elapsedLocked() time.Duration {
	if e.startedAt.IsZero() {
		return 0
	}
	end := e.now()
	if !e.endedAt.IsZero() {
		end = e.endedAt
	}
	elapsed := end.Sub(e.startedAt) - e.pausedTotal
	if !e.pausedAt.IsZero() {
		elapsed -= e.now().Sub(e.pausedAt)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (e *Engine) recordedLocked() time.Duration {
	var total time.Duration
	for _, answer := range e.answers {
		total += answer.TimeSpent
	}
	return total
}

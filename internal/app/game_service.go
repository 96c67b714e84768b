package app

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"language-sprint-service/internal/domain"
	"language-sprint-service/internal/engine"
	"language-sprint-service/internal/generator"
	"language-sprint-service/internal/timing"
)

// SessionRepository abstracts how live game sessions are stored.
type SessionRepository interface {
	Put(session *Session)
	Get(gameID string) (*Session, bool)
	Delete(gameID string)
}

// CorpusRepository loads the language corpus (from cache/backing store).
type CorpusRepository interface {
	Languages(ctx context.Context) ([]domain.Language, error)
}

// ScoreStore persists personal bests and the leaderboard. Implementations
// exist for memory and Redis; the service computes the updates, stores only
// read and write them.
type ScoreStore interface {
	PersonalBests(ctx context.Context, username string) (domain.PersonalBests, error)
	SavePersonalBests(ctx context.Context, username string, bests domain.PersonalBests) error
	LeaderboardEntry(ctx context.Context, username string) (domain.LeaderboardEntry, bool, error)
	SaveLeaderboardEntry(ctx context.Context, entry domain.LeaderboardEntry) error
	Leaderboard(ctx context.Context, limit int) (domain.Leaderboard, error)
}

// GameService contains the game use cases: start a run, feed answers through
// the round engine, and persist terminal results.
type GameService struct {
	sessions SessionRepository
	corpus   CorpusRepository
	scores   ScoreStore
	gen      *generator.Generator
	now      func() time.Time
	history  *timing.History

	mu       sync.Mutex
	modes    map[domain.Mode]domain.ModeConfig
	trackers map[string]*timing.Tracker
}

func NewGameService(sessions SessionRepository, corpus CorpusRepository, scores ScoreStore) *GameService {
	return NewGameServiceWithClock(sessions, corpus, scores, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGameServiceWithClock allows deterministic time and shuffling in tests.
func NewGameServiceWithClock(sessions SessionRepository, corpus CorpusRepository, scores ScoreStore, now func() time.Time, rnd *rand.Rand) *GameService {
	return &GameService{
		sessions: sessions,
		corpus:   corpus,
		scores:   scores,
		gen:      generator.NewWithRand(rnd, now),
		now:      now,
		history:  timing.NewHistory(),
		modes:    make(map[domain.Mode]domain.ModeConfig),
		trackers: make(map[string]*timing.Tracker),
	}
}

// ConfigureMode overrides the built-in ruleset for one mode (e.g. a custom
// time-attack limit or pool size from config).
func (s *GameService) ConfigureMode(cfg domain.ModeConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[cfg.Mode] = cfg
}

func (s *GameService) modeConfig(mode domain.Mode) (domain.ModeConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg, ok := s.modes[mode]; ok {
		return cfg, true
	}
	return domain.ConfigFor(mode)
}

// SubmitOutcome is the synchronous feedback for one resolved question, plus
// the terminal result when the run just finished.
type SubmitOutcome struct {
	Applied    bool
	Correct    bool
	Finished   bool
	TimeSpent  time.Duration
	Score      int
	ComboStreak int
	Lives      int
	Comparison *timing.Comparison
	Next       *domain.Question
	Result     *FinalResult
}

// FinalResult summarizes a finished (non-abandoned) run.
type FinalResult struct {
	Stats     domain.GameStats
	Bests     domain.PersonalBests
	ShareText string
}

// StartGame generates questions for the mode, starts an engine, and registers
// the session. A restrictive difficulty filter may yield fewer questions than
// the mode requests; that is a valid, shorter run.
func (s *GameService) StartGame(ctx context.Context, mode domain.Mode, difficulty domain.Difficulty, username string) (*Session, error) {
	username, err := ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	cfg, ok := s.modeConfig(mode)
	if !ok {
		return nil, domain.ErrUnknownMode
	}

	languages, err := s.corpus.Languages(ctx)
	if err != nil {
		return nil, err
	}

	questions := s.gen.Generate(languages, cfg, difficulty)
	session := &Session{
		ID:        newGameID(),
		Username:  username,
		Config:    cfg,
		Engine:    engine.NewWithClock(cfg, questions, s.now),
		Tracker:   s.trackerFor(username, cfg.Mode),
		StartedAt: s.now(),
	}
	session.Engine.Start()
	s.sessions.Put(session)
	return session, nil
}

// Submit resolves the current question with the player's raw answer.
func (s *GameService) Submit(ctx context.Context, gameID, raw string) (SubmitOutcome, error) {
	return s.resolve(ctx, gameID, func(session *Session) engine.SubmitResult {
		return session.Engine.SubmitAnswer(raw)
	})
}

// Skip resolves the current question as a skipped (incorrect) answer.
func (s *GameService) Skip(ctx context.Context, gameID string) (SubmitOutcome, error) {
	return s.resolve(ctx, gameID, func(session *Session) engine.SubmitResult {
		return session.Engine.Skip()
	})
}

func (s *GameService) resolve(ctx context.Context, gameID string, apply func(*Session) engine.SubmitResult) (SubmitOutcome, error) {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return SubmitOutcome{}, domain.ErrGameNotFound
	}

	answered, hasQuestion := session.CurrentQuestion()
	result := apply(session)
	if !result.Applied {
		return SubmitOutcome{Finished: result.Finished}, nil
	}

	outcome := SubmitOutcome{
		Applied:   true,
		Correct:   result.Correct,
		Finished:  result.Finished,
		TimeSpent: result.TimeSpent,
	}
	if hasQuestion {
		outcome.Comparison = session.Tracker.Compare(result.TimeSpent, answered.ID)
		session.Tracker.Record(answered.ID, result.TimeSpent)
	}

	state := session.Engine.Snapshot()
	outcome.Score = state.Score
	outcome.ComboStreak = state.ComboStreak
	outcome.Lives = state.LivesRemaining

	if result.Finished {
		outcome.Result = s.finalize(ctx, session)
	} else if next, ok := session.CurrentQuestion(); ok {
		outcome.Next = &next
	}
	return outcome, nil
}

// Tick feeds the wall-clock deadline trigger for timed modes. It returns a
// terminal outcome when the deadline just fired, and is inert otherwise.
func (s *GameService) Tick(ctx context.Context, gameID string, elapsed time.Duration) (SubmitOutcome, error) {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return SubmitOutcome{}, domain.ErrGameNotFound
	}
	if !session.Engine.UpdateElapsed(elapsed) {
		return SubmitOutcome{}, nil
	}
	state := session.Engine.Snapshot()
	return SubmitOutcome{
		Applied:  true,
		Finished: true,
		Score:    state.Score,
		Lives:    state.LivesRemaining,
		Result:   s.finalize(ctx, session),
	}, nil
}

// Pause suspends a run; Resume restarts it. Both are no-ops in other states.
func (s *GameService) Pause(gameID string) error {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	session.Engine.Pause()
	return nil
}

func (s *GameService) Resume(gameID string) error {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	session.Engine.Resume()
	return nil
}

// Quit abandons a run without persisting a result.
func (s *GameService) Quit(gameID string) error {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	session.Engine.Quit()
	s.sessions.Delete(gameID)
	return nil
}

// State returns the read-only snapshot of a live run.
func (s *GameService) State(gameID string) (domain.GameState, error) {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.GameState{}, domain.ErrGameNotFound
	}
	return session.Engine.Snapshot(), nil
}

// Leaderboard returns the current scoreboard.
func (s *GameService) Leaderboard(ctx context.Context) (domain.Leaderboard, error) {
	return s.scores.Leaderboard(ctx, 0)
}

// finalize persists the terminal result and retires the session. Abandoned
// runs are dropped without persistence. Store failures are logged and never
// surfaced: the game must stay playable without its persistence layer.
func (s *GameService) finalize(ctx context.Context, session *Session) *FinalResult {
	defer s.sessions.Delete(session.ID)

	state := session.Engine.Snapshot()
	if state.Abandoned {
		return nil
	}

	stats := session.Engine.Stats()
	now := s.now()

	s.history.Append(timing.Session{
		Username:  session.Username,
		Mode:      string(session.Config.Mode),
		Rounds:    session.Tracker.Rounds(),
		StartedAt: session.StartedAt,
	})

	bests, err := s.scores.PersonalBests(ctx, session.Username)
	if err != nil {
		log.Printf("load personal bests for %s: %v", session.Username, err)
	}
	bests = applyStats(bests, stats, now)
	if err := s.scores.SavePersonalBests(ctx, session.Username, bests); err != nil {
		log.Printf("save personal bests for %s: %v", session.Username, err)
	}

	entry, _, err := s.scores.LeaderboardEntry(ctx, session.Username)
	if err != nil {
		log.Printf("load leaderboard entry for %s: %v", session.Username, err)
	}
	entry = applyLeaderboard(entry, session.Username, stats, now)
	if err := s.scores.SaveLeaderboardEntry(ctx, entry); err != nil {
		log.Printf("save leaderboard entry for %s: %v", session.Username, err)
	}

	return &FinalResult{
		Stats:     stats,
		Bests:     bests,
		ShareText: FormatShare(stats, state.Answers),
	}
}

func (s *GameService) trackerFor(username string, mode domain.Mode) *timing.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := username + "|" + string(mode)
	tracker, ok := s.trackers[key]
	if !ok {
		tracker = timing.NewTrackerWithClock(s.now)
		s.trackers[key] = tracker
	}
	return tracker
}

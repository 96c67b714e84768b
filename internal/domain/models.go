package domain

import "time"

// Mode is a named ruleset controlling question count, lives, and termination.
type Mode string

const (
	ModeSprint     Mode = "sprint"
	ModeTimeAttack Mode = "timeattack"
	ModeEndless    Mode = "endless"
	ModePerfect    Mode = "perfect"
	ModeZen        Mode = "zen"
)

// Difficulty tags a language for question filtering. Untagged languages and
// medium languages are considered acceptable for every difficulty.
type Difficulty string

const (
	DifficultyAny    Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// LivesUnlimited marks a lives counter that never decrements.
const LivesUnlimited = -1

// ModeConfig is the explicit policy record for one mode, selected once at
// game start. Lives <= 0 means unlimited. EndOnMiss terminates the run on the
// first incorrect answer. TimeLimit > 0 arms the wall-clock deadline.
type ModeConfig struct {
	Mode          Mode
	QuestionCount int
	Lives         int
	EndOnMiss     bool
	TimeLimit     time.Duration
}

// ConfigFor returns the built-in ruleset for a mode. The second return value
// is false for unknown mode names.
func ConfigFor(mode Mode) (ModeConfig, bool) {
	switch mode {
	case ModeSprint:
		return ModeConfig{Mode: ModeSprint, QuestionCount: 10}, true
	case ModeTimeAttack:
		// The 50-question pool is capacity, not a guarantee; the run ends
		// early if the pool is exhausted before the deadline.
		return ModeConfig{Mode: ModeTimeAttack, QuestionCount: 50, TimeLimit: 60 * time.Second}, true
	case ModeEndless:
		return ModeConfig{Mode: ModeEndless, QuestionCount: 100, Lives: 3}, true
	case ModePerfect:
		return ModeConfig{Mode: ModePerfect, QuestionCount: 20, Lives: 3, EndOnMiss: true}, true
	case ModeZen:
		return ModeConfig{Mode: ModeZen, QuestionCount: 15}, true
	}
	return ModeConfig{}, false
}

// Language is one corpus entry: a language with its canonical name, the
// answer strings judged equivalent to it, and the sample phrases shown to
// players. Immutable once loaded.
type Language struct {
	Code              string     `json:"code"`
	Name              string     `json:"name"`
	AcceptableAnswers []string   `json:"acceptableAnswers"`
	Samples           []string   `json:"samples"`
	Difficulty        Difficulty `json:"difficulty,omitempty"`
}

// Question is one round's prompt, drawn from a single language. IDs are
// zero-based and sequential within one game.
type Question struct {
	ID                int       `json:"id"`
	Prompt            string    `json:"prompt"`
	CorrectAnswer     string    `json:"correctAnswer"`
	AcceptableAnswers []string  `json:"acceptableAnswers"`
	CreatedAt         time.Time `json:"createdAt"`
}

// AnswerRecord captures one resolved question. Skips are stored with an
// empty UserAnswer. Records are append-only and immutable.
type AnswerRecord struct {
	QuestionID    int           `json:"questionId"`
	UserAnswer    string        `json:"userAnswer"`
	CorrectAnswer string        `json:"correctAnswer"`
	IsCorrect     bool          `json:"isCorrect"`
	TimeSpent     time.Duration `json:"timeSpentMs"`
}

// Status is the round engine's lifecycle state.
type Status string

const (
	StatusReady    Status = "ready"
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusFinished Status = "finished"
)

// GameState is a read-only snapshot of one run. LivesRemaining is
// LivesUnlimited when the mode has no lives policy. Abandoned runs are
// terminal but never persisted.
type GameState struct {
	Status               Status         `json:"status"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
	Answers              []AnswerRecord `json:"answers"`
	LivesRemaining       int            `json:"livesRemaining"`
	StartedAt            time.Time      `json:"startedAt"`
	EndedAt              time.Time      `json:"endedAt"`
	Score                int            `json:"score"`
	ComboStreak          int            `json:"comboStreak"`
	Abandoned            bool           `json:"abandoned"`
}

// GameStats is the terminal result record handed to the persistence sink.
type GameStats struct {
	Mode         Mode          `json:"mode"`
	CorrectCount int           `json:"correctCount"`
	TotalCount   int           `json:"totalCount"`
	Accuracy     int           `json:"accuracy"`
	Score        int           `json:"score"`
	TotalTime    time.Duration `json:"totalTimeMs"`
}

// ModeStats aggregates personal bests for one mode.
type ModeStats struct {
	BestTime     time.Duration `json:"bestTime,omitempty"`
	BestAccuracy int           `json:"bestAccuracy,omitempty"`
	HighScore    int           `json:"highScore,omitempty"`
	Completions  int           `json:"completions,omitempty"`
	GamesPlayed  int           `json:"gamesPlayed"`
}

// PersonalBests is one player's aggregate record across modes.
type PersonalBests struct {
	Modes            map[Mode]ModeStats `json:"modes"`
	TotalGamesPlayed int                `json:"totalGamesPlayed"`
	LastPlayed       time.Time          `json:"lastPlayed"`
}

// LeaderboardEntry is one player's aggregate leaderboard row.
type LeaderboardEntry struct {
	Username        string        `json:"username"`
	TotalScore      int           `json:"totalScore"`
	GamesPlayed     int           `json:"gamesPlayed"`
	Streak          int           `json:"streak"`
	LastPlayed      time.Time     `json:"lastPlayed"`
	BestTime        time.Duration `json:"bestTime,omitempty"`
	HighestAccuracy int           `json:"highestAccuracy,omitempty"`
}

// Leaderboard is the ordered scoreboard across all players.
type Leaderboard struct {
	Entries   []LeaderboardEntry `json:"entries"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// GuestbookEntry records a signature on the public guestbook.
type GuestbookEntry struct {
	Username string    `json:"username"`
	SignedAt time.Time `json:"signedAt"`
}

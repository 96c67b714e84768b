// Package timing tracks per-round durations and compares them against the
// most recent prior duration recorded for the same question index, so players
// see "faster/slower than last time" feedback across repeated runs.
package timing

import (
	"fmt"
	"sync"
	"time"
)

// comparisonFloor suppresses feedback for near-identical timings.
const comparisonFloor = time.Second

// Round is one recorded round duration.
type Round struct {
	QuestionIndex int           `json:"questionIndex"`
	Duration      time.Duration `json:"timeMs"`
	RecordedAt    time.Time     `json:"recordedAt"`
}

// Comparison describes the current round relative to the previous duration
// at the same index. Show is false when the difference is within the floor.
type Comparison struct {
	Difference time.Duration `json:"difference"`
	Faster     bool          `json:"isFaster"`
	Show       bool          `json:"showComparison"`
}

// Tracker keeps an ordered history of round durations for one player+mode.
type Tracker struct {
	mu     sync.Mutex
	rounds []Round
	now    func() time.Time
}

// NewTracker builds a tracker on the wall clock.
func NewTracker() *Tracker {
	return NewTrackerWithClock(time.Now)
}

// NewTrackerWithClock allows deterministic timestamps in tests.
func NewTrackerWithClock(now func() time.Time) *Tracker {
	return &Tracker{now: now}
}

// Record appends one round duration.
func (t *Tracker) Record(questionIndex int, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rounds = append(t.rounds, Round{
		QuestionIndex: questionIndex,
		Duration:      d,
		RecordedAt:    t.now(),
	})
}

// Compare relates current to the most recently recorded duration for the
// same question index. Returns nil when no prior duration exists.
func (t *Tracker) Compare(current time.Duration, questionIndex int) *Comparison {
	previous, ok := t.previous(questionIndex)
	if !ok {
		return nil
	}

	difference := current - previous
	if difference < 0 {
		difference = -difference
	}
	return &Comparison{
		Difference: difference,
		Faster:     current < previous,
		Show:       difference > comparisonFloor,
	}
}

// Rounds returns a copy of the recorded history.
func (t *Tracker) Rounds() []Round {
	t.mu.Lock()
	defer t.mu.Unlock()
	rounds := make([]Round, len(t.rounds))
	copy(rounds, t.rounds)
	return rounds
}

func (t *Tracker) previous(questionIndex int) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.rounds) - 1; i >= 0; i-- {
		if t.rounds[i].QuestionIndex == questionIndex {
			return t.rounds[i].Duration, true
		}
	}
	return 0, false
}

// FormatDifference renders a difference as "3s" or "1m 5s".
func FormatDifference(d time.Duration) string {
	totalSeconds := int(d / time.Second)
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

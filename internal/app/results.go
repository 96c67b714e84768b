package app

import (
	"fmt"
	"strings"
	"time"

	"language-sprint-service/internal/domain"
)

var modeLabels = map[domain.Mode]string{
	domain.ModeSprint:     "Sprint 🏃",
	domain.ModeTimeAttack: "Time Attack ⏰",
	domain.ModeEndless:    "Endless ♾️",
	domain.ModePerfect:    "Perfect Run 💎",
	domain.ModeZen:        "Zen 🧘",
}

// FormatDuration renders a duration as "MM:SS.cc".
func FormatDuration(d time.Duration) string {
	totalSeconds := int(d / time.Second)
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	centis := int(d.Milliseconds()%1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

// FormatShare builds the copyable result summary: mode, time, accuracy, and
// a per-answer check row.
func FormatShare(stats domain.GameStats, answers []domain.AnswerRecord) string {
	var checks strings.Builder
	for _, answer := range answers {
		if answer.IsCorrect {
			checks.WriteString("✅")
		} else {
			checks.WriteString("❌")
		}
	}

	label, ok := modeLabels[stats.Mode]
	if !ok {
		label = string(stats.Mode)
	}

	return fmt.Sprintf("🌍 Language %s\n⏱️ %s | ✅ %d/%d (%d%%)\n\n%s",
		label, FormatDuration(stats.TotalTime), stats.CorrectCount, stats.TotalCount, stats.Accuracy, checks.String())
}

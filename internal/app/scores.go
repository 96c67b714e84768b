package app

import (
	"time"

	"language-sprint-service/internal/domain"
)

// perfectAccuracyBonus is added to leaderboard points for a flawless run.
const perfectAccuracyBonus = 500

// leaderboardPoints converts a terminal result into leaderboard points.
func leaderboardPoints(stats domain.GameStats) int {
	points := stats.CorrectCount * 100
	if stats.Accuracy == 100 && stats.TotalCount > 0 {
		points += perfectAccuracyBonus
	}
	return points
}

// applyStats folds one terminal result into a player's personal bests.
// Improvement rules differ per mode: sprint and perfect chase best time,
// timeattack and endless chase high score, zen only counts plays.
func applyStats(bests domain.PersonalBests, stats domain.GameStats, now time.Time) domain.PersonalBests {
	if bests.Modes == nil {
		bests.Modes = make(map[domain.Mode]domain.ModeStats)
	}
	modeStats := bests.Modes[stats.Mode]
	modeStats.GamesPlayed++

	switch stats.Mode {
	case domain.ModeSprint:
		if modeStats.BestTime == 0 || stats.TotalTime < modeStats.BestTime {
			modeStats.BestTime = stats.TotalTime
			modeStats.BestAccuracy = stats.Accuracy
		}
	case domain.ModeTimeAttack, domain.ModeEndless:
		if stats.CorrectCount > modeStats.HighScore {
			modeStats.HighScore = stats.CorrectCount
		}
	case domain.ModePerfect:
		if stats.Accuracy == 100 && stats.TotalCount > 0 {
			if modeStats.BestTime == 0 || stats.TotalTime < modeStats.BestTime {
				modeStats.BestTime = stats.TotalTime
			}
			modeStats.Completions++
		}
	}

	bests.Modes[stats.Mode] = modeStats
	bests.TotalGamesPlayed++
	bests.LastPlayed = now
	return bests
}

// advanceStreak updates a day-streak: same calendar day keeps it, the next
// day increments it, any gap resets to 1.
func advanceStreak(current int, lastPlayed, now time.Time) int {
	if current == 0 || lastPlayed.IsZero() {
		return 1
	}
	last := lastPlayed.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	switch int(today.Sub(last).Hours() / 24) {
	case 0:
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

// applyLeaderboard folds a terminal result into a player's leaderboard row.
func applyLeaderboard(entry domain.LeaderboardEntry, username string, stats domain.GameStats, now time.Time) domain.LeaderboardEntry {
	entry.Username = username
	entry.TotalScore += leaderboardPoints(stats)
	entry.Streak = advanceStreak(entry.Streak, entry.LastPlayed, now)
	entry.GamesPlayed++
	entry.LastPlayed = now
	if stats.TotalTime > 0 && (entry.BestTime == 0 || stats.TotalTime < entry.BestTime) {
		entry.BestTime = stats.TotalTime
	}
	if stats.Accuracy > entry.HighestAccuracy {
		entry.HighestAccuracy = stats.Accuracy
	}
	return entry
}

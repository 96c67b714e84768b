package timing

import (
	"fmt"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestCompareWithoutPriorRoundReturnsNil(t *testing.T) {
	tracker := NewTrackerWithClock(fixedClock())
	if cmp := tracker.Compare(3*time.Second, 0); cmp != nil {
		t.Fatalf("expected nil comparison, got %+v", cmp)
	}

	tracker.Record(1, 2*time.Second)
	if cmp := tracker.Compare(3*time.Second, 0); cmp != nil {
		t.Fatalf("expected nil for index with no history, got %+v", cmp)
	}
}

func TestCompareSuppressesSmallDifferences(t *testing.T) {
	tracker := NewTrackerWithClock(fixedClock())
	tracker.Record(0, 5*time.Second)

	cmp := tracker.Compare(5*time.Second+800*time.Millisecond, 0)
	if cmp == nil {
		t.Fatal("expected a comparison")
	}
	if cmp.Show {
		t.Fatalf("difference %v should be suppressed", cmp.Difference)
	}

	// Exactly at the floor is still suppressed.
	cmp = tracker.Compare(6*time.Second, 0)
	if cmp.Show {
		t.Fatal("difference equal to the floor should be suppressed")
	}

	cmp = tracker.Compare(7*time.Second, 0)
	if !cmp.Show {
		t.Fatal("difference above the floor should be shown")
	}
}

func TestCompareReportsFasterAndSlower(t *testing.T) {
	tracker := NewTrackerWithClock(fixedClock())
	tracker.Record(2, 10*time.Second)

	cmp := tracker.Compare(6*time.Second, 2)
	if !cmp.Faster || cmp.Difference != 4*time.Second {
		t.Fatalf("expected faster by 4s, got %+v", cmp)
	}

	cmp = tracker.Compare(14*time.Second, 2)
	if cmp.Faster || cmp.Difference != 4*time.Second {
		t.Fatalf("expected slower by 4s, got %+v", cmp)
	}
}

func TestCompareUsesMostRecentDurationForIndex(t *testing.T) {
	tracker := NewTrackerWithClock(fixedClock())
	tracker.Record(0, 20*time.Second)
	tracker.Record(1, 4*time.Second)
	tracker.Record(0, 8*time.Second)

	cmp := tracker.Compare(5*time.Second, 0)
	if cmp == nil || !cmp.Faster || cmp.Difference != 3*time.Second {
		t.Fatalf("expected comparison against the latest 8s round, got %+v", cmp)
	}
}

func TestRoundsReturnsCopy(t *testing.T) {
	tracker := NewTrackerWithClock(fixedClock())
	tracker.Record(0, time.Second)

	rounds := tracker.Rounds()
	rounds[0].Duration = time.Hour

	if got := tracker.Rounds()[0].Duration; got != time.Second {
		t.Fatalf("internal history mutated through copy: %v", got)
	}
}

func TestHistoryCapsRetainedSessions(t *testing.T) {
	history := NewHistory()
	for i := 0; i < historyCap+10; i++ {
		history.Append(Session{Username: fmt.Sprintf("player-%d", i)})
	}

	sessions := history.Sessions()
	if len(sessions) != historyCap {
		t.Fatalf("expected %d sessions, got %d", historyCap, len(sessions))
	}
	if sessions[0].Username != "player-10" {
		t.Fatalf("expected oldest retained session player-10, got %s", sessions[0].Username)
	}
	if sessions[len(sessions)-1].Username != fmt.Sprintf("player-%d", historyCap+9) {
		t.Fatalf("unexpected newest session %s", sessions[len(sessions)-1].Username)
	}
}

func TestFormatDifference(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{3 * time.Second, "3s"},
		{65 * time.Second, "1m 5s"},
		{2 * time.Minute, "2m 0s"},
		{900 * time.Millisecond, "0s"},
	}
	for _, tc := range cases {
		if got := FormatDifference(tc.in); got != tc.want {
			t.Fatalf("FormatDifference(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

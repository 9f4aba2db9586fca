package progress

import (
	"testing"
	"time"
)

const testTZ = "Asia/Ho_Chi_Minh"

func at(day int, hour int) time.Time {
	loc, _ := time.LoadLocation(testTZ)
	return time.Date(2026, 8, day, hour, 0, 0, 0, loc)
}

func TestStreakExtendsFromYesterday(t *testing.T) {
	t.Parallel()

	yesterday := at(14, 20)
	s := GamificationState{CurrentStreak: 4, LastActivityAt: &yesterday}

	got := UpdateGamification(s, Event{Kind: KindReading}, at(15, 9), testTZ)
	if got.CurrentStreak != 5 {
		t.Errorf("streak = %d, want 5", got.CurrentStreak)
	}
	if got.LastActivityAt == nil || !got.LastActivityAt.Equal(at(15, 9)) {
		t.Errorf("last activity not stamped to now")
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	t.Parallel()

	threeDaysAgo := at(12, 20)
	s := GamificationState{CurrentStreak: 9, LastActivityAt: &threeDaysAgo}

	got := UpdateGamification(s, Event{Kind: KindReading}, at(15, 9), testTZ)
	if got.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 after a gap", got.CurrentStreak)
	}
}

func TestStreakUnchangedSameDay(t *testing.T) {
	t.Parallel()

	earlierToday := at(15, 8)
	s := GamificationState{CurrentStreak: 3, LastActivityAt: &earlierToday}

	got := UpdateGamification(s, Event{Kind: KindReading}, at(15, 21), testTZ)
	if got.CurrentStreak != 3 {
		t.Errorf("streak = %d, want 3 (same-day repeat is a no-op)", got.CurrentStreak)
	}
	if !got.LastActivityAt.Equal(earlierToday) {
		t.Errorf("same-day repeat must not restamp last activity")
	}
}

func TestStreakStartsAtOneForNewLearner(t *testing.T) {
	t.Parallel()

	got := UpdateGamification(GamificationState{}, Event{Kind: KindVocab}, at(15, 9), testTZ)
	if got.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", got.CurrentStreak)
	}
}

func TestPointsAndLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind ActivityKind
		want int
	}{
		{KindWriting, 100},
		{KindSpeaking, 25},
		{KindDictation, 20},
		{KindReading, 15},
		{KindVocab, 0},
	}
	for _, tc := range cases {
		if got := PointsFor(tc.kind); got != tc.want {
			t.Errorf("PointsFor(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}

	if got := LevelFor(0); got != 1 {
		t.Errorf("LevelFor(0) = %d, want 1", got)
	}
	if got := LevelFor(999); got != 1 {
		t.Errorf("LevelFor(999) = %d, want 1", got)
	}
	if got := LevelFor(1000); got != 2 {
		t.Errorf("LevelFor(1000) = %d, want 2", got)
	}
	if got := LevelFor(4250); got != 5 {
		t.Errorf("LevelFor(4250) = %d, want 5", got)
	}
}

func TestPointsAddOnSameDayRepeats(t *testing.T) {
	t.Parallel()

	earlierToday := at(15, 8)
	s := GamificationState{TotalPoints: 980, Level: 1, LastActivityAt: &earlierToday}

	got := UpdateGamification(s, Event{Kind: KindSpeaking, LessonJustFinished: true}, at(15, 9), testTZ)
	if got.TotalPoints != 1005 {
		t.Errorf("points = %d, want 1005", got.TotalPoints)
	}
	if got.Level != 2 {
		t.Errorf("level = %d, want 2", got.Level)
	}
}

func TestDailyGoalResetsOnNewDay(t *testing.T) {
	t.Parallel()

	yesterday := at(14, 20)
	s := GamificationState{
		CurrentStreak:  2,
		DailyGoalCount: 6,
		DailyGoalDate:  "2026-08-14",
		LastActivityAt: &yesterday,
	}

	got := UpdateGamification(s, Event{Kind: KindWriting}, at(15, 9), testTZ)
	if got.DailyGoalCount != 1 {
		t.Errorf("daily goal count = %d, want 1 on first completion of new day", got.DailyGoalCount)
	}
	if got.DailyGoalDate != "2026-08-15" {
		t.Errorf("daily goal date = %q, want 2026-08-15", got.DailyGoalDate)
	}
}

func TestDailyGoalIncrementsWithinDay(t *testing.T) {
	t.Parallel()

	earlierToday := at(15, 8)
	s := GamificationState{
		DailyGoalCount: 2,
		DailyGoalDate:  "2026-08-15",
		LastActivityAt: &earlierToday,
	}

	got := UpdateGamification(s, Event{Kind: KindReading}, at(15, 12), testTZ)
	if got.DailyGoalCount != 3 {
		t.Errorf("daily goal count = %d, want 3", got.DailyGoalCount)
	}
}

// Unfinished dictation is activity (streak moves) but not completion (goal
// counter resets to zero on the new day).
func TestNonCompletionActivityOnNewDay(t *testing.T) {
	t.Parallel()

	yesterday := at(14, 20)
	s := GamificationState{
		CurrentStreak:  1,
		DailyGoalCount: 4,
		DailyGoalDate:  "2026-08-14",
		LastActivityAt: &yesterday,
	}

	got := UpdateGamification(s, Event{Kind: KindDictation}, at(15, 9), testTZ)
	if got.CurrentStreak != 2 {
		t.Errorf("streak = %d, want 2", got.CurrentStreak)
	}
	if got.DailyGoalCount != 0 {
		t.Errorf("daily goal count = %d, want 0 for non-completion activity", got.DailyGoalCount)
	}
	if got.DailyGoalDate != "2026-08-15" {
		t.Errorf("daily goal date = %q, want 2026-08-15", got.DailyGoalDate)
	}
}

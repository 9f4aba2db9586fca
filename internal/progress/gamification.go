package progress

import "time"

// Per-activity point values. Writing is weighted highest: graded written
// submissions take the most effort to produce and evaluate.
const (
	pointsWriting   = 100
	pointsSpeaking  = 25
	pointsDictation = 20
	pointsReading   = 15
)

// GamificationState mirrors the streak/points fields embedded in the
// learner's profile.
type GamificationState struct {
	TotalPoints      int
	Level            int
	CurrentStreak    int
	DailyGoalCount   int        // completions recorded today
	DailyGoalDate    string     // local date key the counter belongs to
	LastActivityAt   *time.Time // server instant of the last recorded activity
}

// PointsFor returns the fixed point value awarded for one activity of the
// given kind. Vocabulary reviews earn no points; they still count for the
// streak.
func PointsFor(kind ActivityKind) int {
	switch kind {
	case KindWriting:
		return pointsWriting
	case KindSpeaking:
		return pointsSpeaking
	case KindDictation:
		return pointsDictation
	case KindReading:
		return pointsReading
	}
	return 0
}

// LevelFor derives the level from total points. Monotonic, never decreases.
func LevelFor(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return totalPoints/1000 + 1
}

// CountsAsCompletion decides whether an event counts toward the daily goal.
// Reading and writing submissions always count when recorded; dictation and
// speaking only count when the caller signals lesson completion.
func CountsAsCompletion(e Event) bool {
	switch e.Kind {
	case KindReading, KindWriting:
		return true
	case KindDictation, KindSpeaking:
		return e.LessonJustFinished
	}
	return false
}

// UpdateGamification evolves the streak/points state for one event at
// instant now, using the learner's timezone for day boundaries.
//
// Streak rules: a second activity on the same local day is a no-op; an
// activity one day after the last recorded one extends the streak; any wider
// gap, or no prior activity, resets it to 1. The last-activity stamp moves
// whenever today differs from the last recorded activity day. Points are
// added unconditionally and the level is recomputed from the new total.
func UpdateGamification(s GamificationState, e Event, now time.Time, timezone string) GamificationState {
	todayKey := LocalDateKey(now, timezone)
	yesterdayKey := YesterdayKey(now, timezone)

	lastActivityKey := ""
	if s.LastActivityAt != nil {
		lastActivityKey = LocalDateKey(*s.LastActivityAt, timezone)
	}

	isCompletion := CountsAsCompletion(e)
	if isCompletion {
		if s.DailyGoalDate != todayKey {
			s.DailyGoalCount = 1
		} else {
			s.DailyGoalCount++
		}
	}

	if lastActivityKey != todayKey {
		if lastActivityKey == yesterdayKey {
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
		stamp := now
		s.LastActivityAt = &stamp

		if s.DailyGoalDate != todayKey {
			s.DailyGoalDate = todayKey
			if !isCompletion {
				s.DailyGoalCount = 0
			}
		}
	}

	s.TotalPoints += PointsFor(e.Kind)
	s.Level = LevelFor(s.TotalPoints)
	return s
}

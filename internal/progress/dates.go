package progress

import "time"

// DefaultTimezone is used when a learner has no stored timezone or the
// stored name fails to resolve.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

const dateKeyLayout = "2006-01-02"

// LocalDateKey returns the ISO date string for t in the learner's timezone.
// Day boundaries for streaks and daily goals follow the learner's own clock,
// not server time or UTC midnight. This is the single authority for date
// keys; nothing else in the codebase formats calendar days.
func LocalDateKey(t time.Time, timezone string) string {
	return t.In(location(timezone)).Format(dateKeyLayout)
}

// YesterdayKey returns the date key for the calendar day before t in the
// learner's timezone. Computed by shifting the local civil date, so DST
// transitions cannot skip or repeat a day.
func YesterdayKey(t time.Time, timezone string) string {
	return t.In(location(timezone)).AddDate(0, 0, -1).Format(dateKeyLayout)
}

func location(timezone string) *time.Location {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err == nil {
			return loc
		}
	}
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

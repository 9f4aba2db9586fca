package progress

import (
	"testing"
	"time"
)

func TestLocalDateKey(t *testing.T) {
	t.Parallel()

	// 2026-03-10 01:30 UTC is still 2026-03-09 in New York but already
	// 2026-03-10 08:30 in Ho Chi Minh City.
	instant := time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC)

	cases := []struct {
		tz   string
		want string
	}{
		{"UTC", "2026-03-10"},
		{"America/New_York", "2026-03-09"},
		{"Asia/Ho_Chi_Minh", "2026-03-10"},
		{"Pacific/Auckland", "2026-03-10"},
	}
	for _, tc := range cases {
		if got := LocalDateKey(instant, tc.tz); got != tc.want {
			t.Errorf("LocalDateKey(%v, %q) = %q, want %q", instant, tc.tz, got, tc.want)
		}
	}
}

func TestLocalDateKeyFallsBackOnBadTimezone(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, 6, 1, 3, 0, 0, 0, time.UTC)
	want := LocalDateKey(instant, DefaultTimezone)

	if got := LocalDateKey(instant, "Not/AZone"); got != want {
		t.Errorf("bad timezone: got %q, want default-tz key %q", got, want)
	}
	if got := LocalDateKey(instant, ""); got != want {
		t.Errorf("empty timezone: got %q, want default-tz key %q", got, want)
	}
}

func TestYesterdayKeyAcrossDSTTransition(t *testing.T) {
	t.Parallel()

	// US spring-forward happened 2026-03-08; the civil day before 03-09
	// must still be 03-08 even though it was only 23 hours long.
	instant := time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
	if got := YesterdayKey(instant, "America/New_York"); got != "2026-03-08" {
		t.Errorf("YesterdayKey = %q, want 2026-03-08", got)
	}
}

func TestYesterdayKeyAcrossMonthBoundary(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if got := YesterdayKey(instant, "UTC"); got != "2026-02-28" {
		t.Errorf("YesterdayKey = %q, want 2026-02-28", got)
	}
}

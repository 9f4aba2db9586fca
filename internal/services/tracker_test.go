package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/progress"

	"go.uber.org/zap"
)

type fakeStores struct {
	user *models.User

	deltas    []progress.Delta
	dates     []string
	deltaErr  error
	saved     []progress.GamificationState
	saveErr   error
	userErr   error
}

func newTestTracker(f *fakeStores, now time.Time) *Tracker {
	return &Tracker{
		log: zap.NewNop(),
		now: func() time.Time { return now },
		getUser: func(ctx context.Context, id uint) (*models.User, error) {
			return f.user, f.userErr
		},
		applyDelta: func(ctx context.Context, userID uint, date string, d progress.Delta) error {
			f.dates = append(f.dates, date)
			f.deltas = append(f.deltas, d)
			return f.deltaErr
		},
		saveGamification: func(ctx context.Context, userID uint, s progress.GamificationState) error {
			f.saved = append(f.saved, s)
			return f.saveErr
		},
	}
}

func testUser() *models.User {
	return &models.User{ID: 7, Timezone: "Asia/Ho_Chi_Minh", Level: 1}
}

func score(v float64) *float64 { return &v }

func TestRecordAppliesDeltaAndGamification(t *testing.T) {
	t.Parallel()

	f := &fakeStores{user: testUser()}
	now := time.Date(2026, 8, 15, 2, 0, 0, 0, time.UTC) // 09:00 local
	tr := newTestTracker(f, now)

	tr.Record(7, progress.Event{
		Kind:               progress.KindDictation,
		DurationSeconds:    30,
		Score:              score(0.8),
		LessonJustFinished: true,
	})

	if len(f.deltas) != 1 {
		t.Fatalf("expected 1 delta, got %d", len(f.deltas))
	}
	if f.dates[0] != "2026-08-15" {
		t.Errorf("date key = %q, want 2026-08-15 (learner-local)", f.dates[0])
	}
	if f.deltas[0].StudySeconds != 30 || f.deltas[0].LessonsListening != 1 {
		t.Errorf("unexpected delta %+v", f.deltas[0])
	}
	if len(f.saved) != 1 {
		t.Fatalf("expected 1 gamification save, got %d", len(f.saved))
	}
	if f.saved[0].TotalPoints != 20 || f.saved[0].CurrentStreak != 1 {
		t.Errorf("unexpected gamification state %+v", f.saved[0])
	}
}

func TestRecordNegativeDurationClamped(t *testing.T) {
	t.Parallel()

	f := &fakeStores{user: testUser()}
	tr := newTestTracker(f, time.Now())

	tr.Record(7, progress.Event{Kind: progress.KindReading, DurationSeconds: -10})

	if len(f.deltas) != 1 {
		t.Fatalf("expected 1 delta, got %d", len(f.deltas))
	}
	if f.deltas[0].StudySeconds != 0 {
		t.Errorf("StudySeconds = %d, want 0", f.deltas[0].StudySeconds)
	}
}

func TestRecordUnknownKindDropped(t *testing.T) {
	t.Parallel()

	f := &fakeStores{user: testUser()}
	tr := newTestTracker(f, time.Now())

	tr.Record(7, progress.Event{Kind: "juggling"})

	if len(f.deltas) != 0 || len(f.saved) != 0 {
		t.Error("unknown kind must not reach storage")
	}
}

// A daily-progress failure must not prevent the gamification write, and
// vice versa; both are independent best-effort side channels.
func TestRecordPartialFailureIsolated(t *testing.T) {
	t.Parallel()

	f := &fakeStores{user: testUser(), deltaErr: errors.New("db down")}
	tr := newTestTracker(f, time.Now())

	tr.Record(7, progress.Event{Kind: progress.KindWriting, DurationSeconds: 60, Score: score(0.9), LessonJustFinished: true})

	if len(f.saved) != 1 {
		t.Fatalf("gamification skipped after progress failure: saves = %d", len(f.saved))
	}

	f2 := &fakeStores{user: testUser(), saveErr: errors.New("db down")}
	tr2 := newTestTracker(f2, time.Now())

	tr2.Record(7, progress.Event{Kind: progress.KindWriting, DurationSeconds: 60})
	if len(f2.deltas) != 1 {
		t.Fatalf("progress skipped when only gamification fails: deltas = %d", len(f2.deltas))
	}
}

func TestRecordUserLookupFailureSkipsBoth(t *testing.T) {
	t.Parallel()

	f := &fakeStores{userErr: errors.New("no such user")}
	tr := newTestTracker(f, time.Now())

	tr.Record(99, progress.Event{Kind: progress.KindVocab})

	if len(f.deltas) != 0 || len(f.saved) != 0 {
		t.Error("no writes expected when the user cannot be resolved")
	}
}

// Simulated resubmission of an already completed lesson: the second event
// carries LessonJustFinished=false (the enrollment flip fires once), so the
// lesson counter moves exactly once while durations accumulate.
func TestResubmissionDoesNotDoubleCountCompletion(t *testing.T) {
	t.Parallel()

	f := &fakeStores{user: testUser()}
	tr := newTestTracker(f, time.Now())

	tr.Record(7, progress.Event{Kind: progress.KindDictation, DurationSeconds: 40, LessonJustFinished: true})
	tr.Record(7, progress.Event{Kind: progress.KindDictation, DurationSeconds: 25, LessonJustFinished: false})

	summary := progress.DaySummary{}
	for _, d := range f.deltas {
		summary = progress.Apply(summary, d)
	}
	if summary.LessonsListening != 1 {
		t.Errorf("lessons listening = %d, want exactly 1", summary.LessonsListening)
	}
	if summary.StudySeconds != 65 {
		t.Errorf("study seconds = %d, want 65", summary.StudySeconds)
	}
}

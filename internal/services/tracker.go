package services

import (
	"context"
	"time"

	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/progress"
	"github.com/phanduy2004/english-for-community/internal/repository"

	"go.uber.org/zap"
)

// Tracker folds scoring/activity events into the learner's daily summary
// and streak/points state. Both writes are best-effort side channels to the
// primary attempt record: each is attempted and logged independently, and a
// failure in one never blocks the other. Handlers invoke Record in a
// goroutine after the attempt-submission response is already determined.
type Tracker struct {
	log *zap.Logger
	now func() time.Time

	getUser          func(ctx context.Context, id uint) (*models.User, error)
	applyDelta       func(ctx context.Context, userID uint, date string, d progress.Delta) error
	saveGamification func(ctx context.Context, userID uint, s progress.GamificationState) error
}

func NewTracker(log *zap.Logger) *Tracker {
	return &Tracker{
		log:              log,
		now:              time.Now,
		getUser:          repository.GetUserByID,
		applyDelta:       repository.ApplyDelta,
		saveGamification: repository.SaveGamificationState,
	}
}

// Record processes one event: daily-progress increments plus the
// streak/points update. Safe to call more than once for the same event as
// long as only one call carries LessonJustFinished — callers obtain that
// flag from the enrollment completion flip, which fires exactly once.
func (t *Tracker) Record(userID uint, e progress.Event) {
	if !e.Kind.Valid() {
		t.log.Warn("Dropping activity event with unknown kind",
			zap.Uint("userID", userID), zap.String("kind", string(e.Kind)))
		return
	}
	if e.DurationSeconds < 0 {
		t.log.Warn("Clamping negative activity duration",
			zap.Uint("userID", userID), zap.Int("durationSeconds", e.DurationSeconds))
		e.DurationSeconds = 0
	}

	// The request that produced this event has already been answered; the
	// tracker runs on its own context.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := t.getUser(ctx, userID)
	if err != nil {
		t.log.Error("Failed to load user for activity tracking",
			zap.Uint("userID", userID), zap.Error(err))
		return
	}

	t.trackDailyProgress(ctx, user, e)
	t.updateGamification(ctx, user, e)
}

func (t *Tracker) trackDailyProgress(ctx context.Context, user *models.User, e progress.Event) {
	date := progress.LocalDateKey(t.now(), user.Timezone)
	if err := t.applyDelta(ctx, user.ID, date, progress.DeltaFor(e)); err != nil {
		t.log.Error("Failed to apply daily progress delta",
			zap.Uint("userID", user.ID),
			zap.String("date", date),
			zap.String("kind", string(e.Kind)),
			zap.Error(err))
	}
}

func (t *Tracker) updateGamification(ctx context.Context, user *models.User, e progress.Event) {
	state := repository.GamificationState(user)
	next := progress.UpdateGamification(state, e, t.now(), user.Timezone)
	if err := t.saveGamification(ctx, user.ID, next); err != nil {
		t.log.Error("Failed to save gamification state",
			zap.Uint("userID", user.ID),
			zap.String("kind", string(e.Kind)),
			zap.Error(err))
	}
}

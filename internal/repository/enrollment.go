package repository

import (
	"context"
	"errors"
	"time"

	"github.com/phanduy2004/english-for-community/internal/database"
	"github.com/phanduy2004/english-for-community/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarkItemsCompleted folds newly passed item indexes into the learner's
// enrollment for one lesson and reports whether this call completed the
// lesson.
//
// The returned justFinished is true for exactly one call per (learner,
// lesson): the completed flag is flipped by a conditional UPDATE guarded on
// completed = false, so resubmissions of an already finished lesson never
// report a second completion. This is the idempotent source of the
// "lesson just finished" signal consumed by the progress tracker.
func MarkItemsCompleted(ctx context.Context, userID uint, lessonKind string, lessonID uint, passedItems []int, totalItems int) (justFinished bool, err error) {
	db := database.DB.WithContext(ctx)
	now := time.Now()

	// Ensure the enrollment row exists; concurrent first submissions race
	// benignly on the insert.
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_kind"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"last_accessed_at": now}),
	}).Create(&models.Enrollment{
		UserID:         userID,
		LessonKind:     lessonKind,
		LessonID:       lessonID,
		CompletedItems: pq.Int64Array{},
		LastAccessedAt: now,
	}).Error
	if err != nil {
		return false, err
	}

	var enr models.Enrollment
	if err = db.Where("user_id = ? AND lesson_kind = ? AND lesson_id = ?", userID, lessonKind, lessonID).
		First(&enr).Error; err != nil {
		return false, err
	}

	done := make(map[int64]bool, len(enr.CompletedItems))
	for _, idx := range enr.CompletedItems {
		done[idx] = true
	}
	for _, idx := range passedItems {
		done[int64(idx)] = true
	}
	merged := make(pq.Int64Array, 0, len(done))
	for idx := range done {
		merged = append(merged, idx)
	}

	prog := 0.0
	if totalItems > 0 {
		prog = float64(len(merged)) / float64(totalItems)
		if prog > 1 {
			prog = 1
		}
	}

	if err = db.Model(&models.Enrollment{}).Where("id = ?", enr.ID).
		Updates(map[string]interface{}{
			"completed_items":  merged,
			"progress":         prog,
			"last_accessed_at": now,
		}).Error; err != nil {
		return false, err
	}

	if prog >= 1 {
		res := db.Model(&models.Enrollment{}).
			Where("id = ? AND completed = ?", enr.ID, false).
			Update("completed", true)
		if res.Error != nil {
			return false, res.Error
		}
		justFinished = res.RowsAffected > 0
	}
	return justFinished, nil
}

// GetEnrollment returns the learner's enrollment for one lesson, or
// gorm.ErrRecordNotFound.
func GetEnrollment(ctx context.Context, userID uint, lessonKind string, lessonID uint) (*models.Enrollment, error) {
	var enr models.Enrollment
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND lesson_kind = ? AND lesson_id = ?", userID, lessonKind, lessonID).
		First(&enr).Error
	if err != nil {
		return nil, err
	}
	return &enr, nil
}

// IsEnrollmentCompleted reports whether the learner has finished the lesson.
// A missing enrollment simply means not started.
func IsEnrollmentCompleted(ctx context.Context, userID uint, lessonKind string, lessonID uint) (bool, error) {
	enr, err := GetEnrollment(ctx, userID, lessonKind, lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return enr.Completed, nil
}

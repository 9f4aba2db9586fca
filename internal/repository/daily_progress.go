package repository

import (
	"context"
	"errors"

	"github.com/phanduy2004/english-for-community/internal/database"
	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/progress"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplyDelta folds one event's deltas into the learner's day row. A single
// upsert: the insert covers the first activity of the day, the conflict
// branch turns every field into an additive increment, so concurrent events
// for the same learner and day never lose writes to a race on row creation.
func ApplyDelta(ctx context.Context, userID uint, date string, d progress.Delta) error {
	row := models.UserDailyProgress{
		UserID:                 userID,
		Date:                   date,
		StudySeconds:           d.StudySeconds,
		VocabLearned:           d.VocabLearned,
		LessonsListening:       d.LessonsListening,
		LessonsReading:         d.LessonsReading,
		LessonsSpeaking:        d.LessonsSpeaking,
		LessonsWriting:         d.LessonsWriting,
		ReadingAccuracyTotal:   d.ReadingAccuracyTotal,
		ReadingAccuracyCount:   d.ReadingAccuracyCount,
		ReadingWPMTotal:        d.ReadingWPMTotal,
		ReadingWPMCount:        d.ReadingWPMCount,
		DictationAccuracyTotal: d.DictationAccuracyTotal,
		DictationAccuracyCount: d.DictationAccuracyCount,
		SpeakingScoreTotal:     d.SpeakingScoreTotal,
		SpeakingScoreCount:     d.SpeakingScoreCount,
		WritingScoreTotal:      d.WritingScoreTotal,
		WritingScoreCount:      d.WritingScoreCount,
	}

	increments := map[string]interface{}{}
	for column, value := range map[string]interface{}{
		"study_seconds":            d.StudySeconds,
		"vocab_learned":            d.VocabLearned,
		"lessons_listening":        d.LessonsListening,
		"lessons_reading":          d.LessonsReading,
		"lessons_speaking":         d.LessonsSpeaking,
		"lessons_writing":          d.LessonsWriting,
		"reading_accuracy_total":   d.ReadingAccuracyTotal,
		"reading_accuracy_count":   d.ReadingAccuracyCount,
		"reading_wpm_total":        d.ReadingWPMTotal,
		"reading_wpm_count":        d.ReadingWPMCount,
		"dictation_accuracy_total": d.DictationAccuracyTotal,
		"dictation_accuracy_count": d.DictationAccuracyCount,
		"speaking_score_total":     d.SpeakingScoreTotal,
		"speaking_score_count":     d.SpeakingScoreCount,
		"writing_score_total":      d.WritingScoreTotal,
		"writing_score_count":      d.WritingScoreCount,
	} {
		increments[column] = gorm.Expr("user_daily_progresses."+column+" + ?", value)
	}

	return database.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(increments),
	}).Create(&row).Error
}

// GetDay returns the learner's summary row for one date. A missing row is a
// zero summary, not an error.
func GetDay(ctx context.Context, userID uint, date string) (*models.UserDailyProgress, error) {
	var row models.UserDailyProgress
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserDailyProgress{UserID: userID, Date: date}, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetRange returns the learner's summary rows between two date keys
// inclusive, oldest first. Date keys sort lexicographically.
func GetRange(ctx context.Context, userID uint, fromDate, toDate string) ([]models.UserDailyProgress, error) {
	var rows []models.UserDailyProgress
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, fromDate, toDate).
		Order("date").
		Find(&rows).Error
	return rows, err
}

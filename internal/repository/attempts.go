package repository

import (
	"context"
	"time"

	"github.com/phanduy2004/english-for-community/internal/database"
	"github.com/phanduy2004/english-for-community/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertDictationAttempt stores the current attempt for one cue. At most one
// row exists per (user, listening, cue): a resubmission overwrites the score
// fields and bumps attempts_count while first_submitted_at stays put.
func UpsertDictationAttempt(ctx context.Context, attempt *models.DictationAttempt) error {
	now := time.Now()
	attempt.FirstSubmittedAt = now
	attempt.LastSubmittedAt = now
	attempt.AttemptsCount = 1

	return database.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "listening_id"}, {Name: "cue_idx"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"cue_id":            attempt.CueID,
			"user_text":         attempt.UserText,
			"user_text_norm":    attempt.UserTextNorm,
			"passed":            attempt.Passed,
			"wer":               attempt.WER,
			"cer":               attempt.CER,
			"correct_words":     attempt.CorrectWords,
			"total_words":       attempt.TotalWords,
			"duration_seconds":  attempt.DurationSeconds,
			"last_submitted_at": now,
			"attempts_count":    gorm.Expr("dictation_attempts.attempts_count + 1"),
		}),
	}).Create(attempt).Error
}

// GetDictationAttempts returns the current attempt per cue for one lesson,
// ordered by cue index.
func GetDictationAttempts(ctx context.Context, userID, listeningID uint) ([]models.DictationAttempt, error) {
	var attempts []models.DictationAttempt
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND listening_id = ?", userID, listeningID).
		Order("cue_idx").
		Find(&attempts).Error
	return attempts, err
}

// UpsertSpeakingAttempt stores the current attempt for one sentence, same
// overwrite semantics as dictation.
func UpsertSpeakingAttempt(ctx context.Context, attempt *models.SpeakingAttempt) error {
	now := time.Now()
	attempt.FirstSubmittedAt = now
	attempt.LastSubmittedAt = now
	attempt.AttemptsCount = 1

	return database.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "speaking_set_id"}, {Name: "sentence_idx"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"transcript":        attempt.Transcript,
			"transcript_norm":   attempt.TranscriptNorm,
			"wer":               attempt.WER,
			"score":             attempt.Score,
			"passed":            attempt.Passed,
			"last_submitted_at": now,
			"attempts_count":    gorm.Expr("speaking_attempts.attempts_count + 1"),
		}),
	}).Create(attempt).Error
}

// GetSpeakingAttempts returns the current attempt per sentence for one set.
func GetSpeakingAttempts(ctx context.Context, userID, setID uint) ([]models.SpeakingAttempt, error) {
	var attempts []models.SpeakingAttempt
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND speaking_set_id = ?", userID, setID).
		Order("sentence_idx").
		Find(&attempts).Error
	return attempts, err
}

// CreateReadingAttempt appends to the raw reading history log; every
// submission keeps its own row.
func CreateReadingAttempt(ctx context.Context, attempt *models.ReadingAttempt) error {
	attempt.SubmittedAt = time.Now()
	return database.DB.WithContext(ctx).Create(attempt).Error
}

// GetReadingAttempts returns a learner's history for one passage, newest
// first.
func GetReadingAttempts(ctx context.Context, userID, readingID uint) ([]models.ReadingAttempt, error) {
	var attempts []models.ReadingAttempt
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND reading_id = ?", userID, readingID).
		Order("submitted_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// CreateWritingSubmission stores one graded essay.
func CreateWritingSubmission(ctx context.Context, submission *models.WritingSubmission) error {
	submission.SubmittedAt = time.Now()
	return database.DB.WithContext(ctx).Create(submission).Error
}

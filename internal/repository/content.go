package repository

import (
	"context"

	"github.com/phanduy2004/english-for-community/internal/database"
	"github.com/phanduy2004/english-for-community/internal/models"

	"gorm.io/gorm"
)

func GetListeningByID(ctx context.Context, id uint) (*models.Listening, error) {
	var listening models.Listening
	err := database.DB.WithContext(ctx).Preload("Cues", func(db *gorm.DB) *gorm.DB {
		return db.Order("cues.idx")
	}).First(&listening, id).Error
	if err != nil {
		return nil, err
	}
	return &listening, nil
}

func GetCue(ctx context.Context, listeningID uint, idx int) (*models.Cue, error) {
	var cue models.Cue
	err := database.DB.WithContext(ctx).
		Where("listening_id = ? AND idx = ?", listeningID, idx).
		First(&cue).Error
	if err != nil {
		return nil, err
	}
	return &cue, nil
}

func CountCues(ctx context.Context, listeningID uint) (int, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Cue{}).
		Where("listening_id = ?", listeningID).
		Count(&count).Error
	return int(count), err
}

func ListListenings(ctx context.Context, difficulty string, page, limit int) ([]models.Listening, int64, error) {
	query := database.DB.WithContext(ctx).Model(&models.Listening{})
	if difficulty != "" && difficulty != "all" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listenings []models.Listening
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&listenings).Error
	return listenings, total, err
}

func GetReadingByID(ctx context.Context, id uint) (*models.Reading, error) {
	var reading models.Reading
	err := database.DB.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("reading_questions.idx")
	}).First(&reading, id).Error
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

func GetSpeakingSetByID(ctx context.Context, id uint) (*models.SpeakingSet, error) {
	var set models.SpeakingSet
	err := database.DB.WithContext(ctx).Preload("Sentences", func(db *gorm.DB) *gorm.DB {
		return db.Order("speaking_sentences.idx")
	}).First(&set, id).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func GetSpeakingSentence(ctx context.Context, setID uint, idx int) (*models.SpeakingSentence, error) {
	var sentence models.SpeakingSentence
	err := database.DB.WithContext(ctx).
		Where("speaking_set_id = ? AND idx = ?", setID, idx).
		First(&sentence).Error
	if err != nil {
		return nil, err
	}
	return &sentence, nil
}

func CountSpeakingSentences(ctx context.Context, setID uint) (int, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.SpeakingSentence{}).
		Where("speaking_set_id = ?", setID).
		Count(&count).Error
	return int(count), err
}

func GetWritingTopicByID(ctx context.Context, id uint) (*models.WritingTopic, error) {
	var topic models.WritingTopic
	err := database.DB.WithContext(ctx).First(&topic, id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

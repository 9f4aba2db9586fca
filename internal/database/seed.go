package database

import (
	"strings"

	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/scoring"

	"go.uber.org/zap"
)

// SeedContent inserts the content pack into empty lesson tables. Existing
// content is never touched; reruns are no-ops once each table has rows.
func SeedContent(log *zap.Logger, pack *models.ContentPack) {
	if pack == nil {
		return
	}

	var count int64

	DB.Model(&models.Listening{}).Count(&count)
	if count == 0 {
		for _, seed := range pack.Listenings {
			listening := models.Listening{
				Code:       seed.Code,
				Title:      seed.Title,
				Difficulty: seed.Difficulty,
				AudioURL:   seed.AudioURL,
			}
			for i, cue := range seed.Cues {
				listening.Cues = append(listening.Cues, models.Cue{
					Idx:      i,
					StartMs:  cue.StartMs,
					EndMs:    cue.EndMs,
					Text:     cue.Text,
					TextNorm: scoring.Normalize(cue.Text),
				})
			}
			if err := DB.Create(&listening).Error; err != nil {
				log.Error("Failed to seed listening", zap.String("code", seed.Code), zap.Error(err))
			}
		}
		log.Info("Seeded listening lessons", zap.Int("count", len(pack.Listenings)))
	}

	DB.Model(&models.Reading{}).Count(&count)
	if count == 0 {
		for _, seed := range pack.Readings {
			reading := models.Reading{
				Code:      seed.Code,
				Title:     seed.Title,
				Level:     seed.Level,
				Content:   seed.Content,
				WordCount: len(strings.Fields(seed.Content)),
			}
			for i, q := range seed.Questions {
				reading.Questions = append(reading.Questions, models.ReadingQuestion{
					Idx:     i,
					Prompt:  q.Prompt,
					Options: q.Options,
					Answer:  q.Answer,
				})
			}
			if err := DB.Create(&reading).Error; err != nil {
				log.Error("Failed to seed reading", zap.String("code", seed.Code), zap.Error(err))
			}
		}
		log.Info("Seeded reading lessons", zap.Int("count", len(pack.Readings)))
	}

	DB.Model(&models.SpeakingSet{}).Count(&count)
	if count == 0 {
		for _, seed := range pack.SpeakingSets {
			set := models.SpeakingSet{
				Code:  seed.Code,
				Title: seed.Title,
				Level: seed.Level,
			}
			for i, text := range seed.Sentences {
				set.Sentences = append(set.Sentences, models.SpeakingSentence{
					Idx:      i,
					Text:     text,
					TextNorm: scoring.Normalize(text),
				})
			}
			if err := DB.Create(&set).Error; err != nil {
				log.Error("Failed to seed speaking set", zap.String("code", seed.Code), zap.Error(err))
			}
		}
		log.Info("Seeded speaking sets", zap.Int("count", len(pack.SpeakingSets)))
	}

	DB.Model(&models.WritingTopic{}).Count(&count)
	if count == 0 {
		for _, seed := range pack.WritingTopics {
			topic := models.WritingTopic{
				Code:     seed.Code,
				Title:    seed.Title,
				Prompt:   seed.Prompt,
				Level:    seed.Level,
				MinWords: seed.MinWords,
			}
			if err := DB.Create(&topic).Error; err != nil {
				log.Error("Failed to seed writing topic", zap.String("code", seed.Code), zap.Error(err))
			}
		}
		log.Info("Seeded writing topics", zap.Int("count", len(pack.WritingTopics)))
	}
}

package database

import (
	"fmt"

	"github.com/phanduy2004/english-for-community/internal/config"
	logging "github.com/phanduy2004/english-for-community/internal/logging"
	"github.com/phanduy2004/english-for-community/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logging.NewGormZapLogger(log),
	})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate creates tables, columns and declared indexes. The
	// attempt-history query index is handled separately below.
	err := DB.AutoMigrate(
		&models.User{},
		&models.Listening{},
		&models.Cue{},
		&models.Reading{},
		&models.ReadingQuestion{},
		&models.SpeakingSet{},
		&models.SpeakingSentence{},
		&models.WritingTopic{},
		&models.VocabItem{},
		&models.DictationAttempt{},
		&models.SpeakingAttempt{},
		&models.ReadingAttempt{},
		&models.WritingSubmission{},
		&models.Enrollment{},
		&models.UserDailyProgress{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	historyIndex := `CREATE INDEX IF NOT EXISTS idx_reading_attempt_history ON reading_attempts (user_id, reading_id, submitted_at DESC);`
	if err := DB.Exec(historyIndex).Error; err != nil {
		log.Fatal("Failed to create attempt history index", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}

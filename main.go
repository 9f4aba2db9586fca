package main

import (
	"github.com/phanduy2004/english-for-community/internal/config"
	"github.com/phanduy2004/english-for-community/internal/database"
	logger "github.com/phanduy2004/english-for-community/internal/logging"
	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/router"
	"github.com/phanduy2004/english-for-community/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Configuration loads before the real logger exists, so it reports
	// through a plain production logger.
	bootLog, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize bootstrap logger: " + err.Error())
	}
	if err := config.Init(".", bootLog); err != nil {
		bootLog.Fatal("Failed to load configuration", zap.Error(err))
	}
	bootLog.Sync()

	// Initialize Logger
	log, err := logger.Init(config.Conf.Logging.Directory, logger.RotationSettings{
		MaxSizeMB:  config.Conf.Logging.MaxSize,
		MaxBackups: config.Conf.Logging.MaxBackups,
		MaxAgeDays: config.Conf.Logging.MaxAge,
		Compress:   config.Conf.Logging.Compress,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Database
	database.Init(log)

	// Seed lesson content at startup
	pack, err := models.LoadContentPack(config.Conf.Content.PackPath)
	if err != nil {
		log.Warn("No content pack loaded", zap.String("path", config.Conf.Content.PackPath), zap.Error(err))
	} else {
		database.SeedContent(log, pack)
	}

	// Background services
	emailService := services.NewEmailService(log)
	scheduler := services.NewScheduler(log, emailService)
	scheduler.Start()

	tracker := services.NewTracker(log)

	// Setup router, passing the logger to it
	r := router.Setup(log, tracker)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}

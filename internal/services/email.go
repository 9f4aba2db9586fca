package services

import (
	"fmt"

	"github.com/phanduy2004/english-for-community/internal/models"

	"go.uber.org/zap"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendStreakReminder simulates sending a streak reminder email.
func (s *EmailService) SendStreakReminder(user models.User) {
	s.log.Info("Sending streak reminder email",
		zap.String("to", user.Email),
		zap.String("name", user.FullName),
		zap.Int("streak", user.CurrentStreak),
	)
	// A real deployment would plug an SMTP client in here.
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Keep your %d-day streak alive\nHi %s,\nYou haven't studied yet today. A quick lesson keeps your streak going.\n\n", user.Email, user.CurrentStreak, user.FullName)
}

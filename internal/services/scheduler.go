package services

import (
	"context"
	"time"

	"github.com/phanduy2004/english-for-community/internal/progress"
	"github.com/phanduy2004/english-for-community/internal/repository"

	"go.uber.org/zap"
)

// Scheduler nudges learners who have a reminder set for the current local
// time but no recorded activity today. Streaks break silently otherwise.
type Scheduler struct {
	log          *zap.Logger
	emailService *EmailService
}

func NewScheduler(log *zap.Logger, emailService *EmailService) *Scheduler {
	return &Scheduler{
		log:          log,
		emailService: emailService,
	}
}

// Start runs the scheduler in a goroutine.
func (s *Scheduler) Start() {
	s.log.Info("Starting reminder scheduler...")
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runReminderCheck()
		}
	}()
}

func (s *Scheduler) runReminderCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users, err := repository.GetUsersWithReminders(ctx)
	if err != nil {
		s.log.Error("Failed to load users for reminders", zap.Error(err))
		return
	}

	now := time.Now()
	for _, user := range users {
		// Reminder times are stored on the learner's clock.
		loc, err := time.LoadLocation(user.Timezone)
		if err != nil {
			loc, _ = time.LoadLocation(progress.DefaultTimezone)
		}
		if now.In(loc).Format("15:04") != user.ReminderTime {
			continue
		}

		today := progress.LocalDateKey(now, user.Timezone)
		if user.LastActivityAt != nil && progress.LocalDateKey(*user.LastActivityAt, user.Timezone) == today {
			continue // already studied today
		}

		go s.emailService.SendStreakReminder(user)
	}
}

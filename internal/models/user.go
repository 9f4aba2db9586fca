package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     string `gorm:"default:user" json:"role"`

	// Day boundaries for streaks and daily goals follow the learner's own
	// clock, never server time.
	Timezone string `gorm:"default:Asia/Ho_Chi_Minh" json:"timezone"`

	TotalPoints    int        `json:"totalPoints"`
	Level          int        `gorm:"default:1" json:"level"`
	CurrentStreak  int        `json:"currentStreak"`
	LastActivityAt *time.Time `json:"lastActivityAt,omitempty"`

	DailyGoalTarget int    `gorm:"default:5" json:"dailyGoalTarget"`
	DailyGoalCount  int    `json:"dailyGoalCount"`
	DailyGoalDate   string `json:"dailyGoalDate"`

	// Reminder time on the learner's local clock, "HH:MM". Empty disables
	// reminders.
	ReminderTime     string `json:"reminderTime"`
	RemindersEnabled bool   `json:"remindersEnabled"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

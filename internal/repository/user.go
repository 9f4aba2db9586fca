package repository

import (
	"context"
	"time"

	"github.com/phanduy2004/english-for-community/internal/database"
	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/progress"

	"golang.org/x/crypto/bcrypt"
)

func CreateUser(email, password, fullName, timezone string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if timezone == "" {
		timezone = progress.DefaultTimezone
	}
	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		FullName: fullName,
		Timezone: timezone,
		Level:    1,
	}
	result := database.DB.Create(user)
	return user, result.Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "email = ?", email)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, id)
	return &user, result.Error
}

func UpdateUser(ctx context.Context, userID uint, fullName, timezone string) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"full_name": fullName, "timezone": timezone}).Error
}

func UpdateUserPassword(ctx context.Context, userID uint, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Update("password", string(hashedPassword)).Error
}

// UpdateUserSettings writes the reminder and daily goal preferences.
func UpdateUserSettings(ctx context.Context, userID uint, reminderTime string, remindersEnabled bool, dailyGoalTarget int) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reminder_time":     reminderTime,
			"reminders_enabled": remindersEnabled,
			"daily_goal_target": dailyGoalTarget,
		}).Error
}

func DeleteUser(ctx context.Context, userID uint) error {
	return database.DB.WithContext(ctx).Delete(&models.User{}, userID).Error
}

// GamificationState extracts the streak/points fields from the profile.
func GamificationState(u *models.User) progress.GamificationState {
	return progress.GamificationState{
		TotalPoints:    u.TotalPoints,
		Level:          u.Level,
		CurrentStreak:  u.CurrentStreak,
		DailyGoalCount: u.DailyGoalCount,
		DailyGoalDate:  u.DailyGoalDate,
		LastActivityAt: u.LastActivityAt,
	}
}

// SaveGamificationState writes the streak/points fields back to the profile.
// Plain read-modify-write: concurrent submissions from the same learner are
// last-writer-wins, which is acceptable for motivational counters.
func SaveGamificationState(ctx context.Context, userID uint, s progress.GamificationState) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_points":     s.TotalPoints,
			"level":            s.Level,
			"current_streak":   s.CurrentStreak,
			"daily_goal_count": s.DailyGoalCount,
			"daily_goal_date":  s.DailyGoalDate,
			"last_activity_at": s.LastActivityAt,
			"updated_at":       time.Now(),
		}).Error
}

// GetUsersWithReminders returns every user who has opted into study
// reminders. The scheduler filters by local time per user.
func GetUsersWithReminders(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := database.DB.WithContext(ctx).
		Where("reminders_enabled = ? AND reminder_time <> ''", true).
		Find(&users).Error
	return users, err
}

package handlers

import (
	"net/http"
	"time"

	"github.com/phanduy2004/english-for-community/internal/repository"
	"github.com/phanduy2004/english-for-community/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	log *zap.Logger
}

func NewUserHandler(log *zap.Logger) *UserHandler {
	return &UserHandler{log: log}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

type profileUpdateRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Timezone string `json:"timezone" binding:"required"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := currentUser(c)

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown timezone"})
		return
	}

	if err := repository.UpdateUser(c.Request.Context(), user.ID, req.FullName, req.Timezone); err != nil {
		h.log.Error("Failed to update profile", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.Status(http.StatusNoContent)
}

type settingsUpdateRequest struct {
	ReminderTime     string `json:"reminderTime"`
	RemindersEnabled bool   `json:"remindersEnabled"`
	DailyGoalTarget  int    `json:"dailyGoalTarget" binding:"required,min=1"`
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	user := currentUser(c)

	var req settingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ReminderTime != "" {
		if _, err := time.Parse("15:04", req.ReminderTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder time, expected HH:MM"})
			return
		}
	}

	err := repository.UpdateUserSettings(c.Request.Context(), user.ID,
		req.ReminderTime, req.RemindersEnabled, req.DailyGoalTarget)
	if err != nil {
		h.log.Error("Failed to update settings", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.Status(http.StatusNoContent)
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	user := currentUser(c)

	var req passwordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !user.CheckPassword(req.CurrentPassword) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Current password is incorrect"})
		return
	}
	if !utils.IsComplexPassword(req.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password does not meet complexity requirements"})
		return
	}

	if err := repository.UpdateUserPassword(c.Request.Context(), user.ID, req.NewPassword); err != nil {
		h.log.Error("Failed to change password", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	c.Status(http.StatusNoContent)
}

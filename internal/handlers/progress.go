package handlers

import (
	"net/http"
	"time"

	"github.com/phanduy2004/english-for-community/internal/progress"
	"github.com/phanduy2004/english-for-community/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProgressHandler struct {
	log *zap.Logger
}

func NewProgressHandler(log *zap.Logger) *ProgressHandler {
	return &ProgressHandler{log: log}
}

type daySummaryResponse struct {
	Date string `json:"date"`

	StudySeconds int `json:"studySeconds"`
	VocabLearned int `json:"vocabLearned"`

	LessonsListening int `json:"lessonsListening"`
	LessonsReading   int `json:"lessonsReading"`
	LessonsSpeaking  int `json:"lessonsSpeaking"`
	LessonsWriting   int `json:"lessonsWriting"`

	ReadingAccuracy   float64 `json:"readingAccuracy"`
	ReadingWPM        float64 `json:"readingWpm"`
	DictationAccuracy float64 `json:"dictationAccuracy"`
	SpeakingScore     float64 `json:"speakingScore"`
	WritingScore      float64 `json:"writingScore"`
}

func toDayResponse(date string, s progress.DaySummary) daySummaryResponse {
	return daySummaryResponse{
		Date:              date,
		StudySeconds:      s.StudySeconds,
		VocabLearned:      s.VocabLearned,
		LessonsListening:  s.LessonsListening,
		LessonsReading:    s.LessonsReading,
		LessonsSpeaking:   s.LessonsSpeaking,
		LessonsWriting:    s.LessonsWriting,
		ReadingAccuracy:   s.ReadingAccuracy.Average(),
		ReadingWPM:        s.ReadingWPM.Average(),
		DictationAccuracy: s.DictationAccuracy.Average(),
		SpeakingScore:     s.SpeakingScore.Average(),
		WritingScore:      s.WritingScore.Average(),
	}
}

// GetDaily returns one day's summary with averages computed from the stored
// running sums. Defaults to today on the learner's clock.
func (h *ProgressHandler) GetDaily(c *gin.Context) {
	user := currentUser(c)

	date := c.Query("date")
	if date == "" {
		date = progress.LocalDateKey(time.Now(), user.Timezone)
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	row, err := repository.GetDay(c.Request.Context(), user.ID, date)
	if err != nil {
		h.log.Error("Failed to load daily progress",
			zap.Uint("userID", user.ID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}

	c.JSON(http.StatusOK, toDayResponse(date, row.Summary()))
}

// GetHistory returns per-day summaries over an inclusive date range,
// defaulting to the last 30 days. Days without activity are omitted.
func (h *ProgressHandler) GetHistory(c *gin.Context) {
	user := currentUser(c)

	now := time.Now()
	to := c.DefaultQuery("to", progress.LocalDateKey(now, user.Timezone))
	from := c.DefaultQuery("from", progress.LocalDateKey(now.AddDate(0, 0, -29), user.Timezone))
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
	}

	rows, err := repository.GetRange(c.Request.Context(), user.ID, from, to)
	if err != nil {
		h.log.Error("Failed to load progress history", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}

	days := make([]daySummaryResponse, 0, len(rows))
	for i := range rows {
		days = append(days, toDayResponse(rows[i].Date, rows[i].Summary()))
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "days": days})
}

// GetOverview returns the gamification state plus today's summary in one
// payload for the dashboard.
func (h *ProgressHandler) GetOverview(c *gin.Context) {
	user := currentUser(c)

	today := progress.LocalDateKey(time.Now(), user.Timezone)
	row, err := repository.GetDay(c.Request.Context(), user.ID, today)
	if err != nil {
		h.log.Error("Failed to load daily progress", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}

	dailyGoalCount := user.DailyGoalCount
	if user.DailyGoalDate != today {
		// The stored counter belongs to an earlier day; today starts at zero.
		dailyGoalCount = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"totalPoints":     user.TotalPoints,
		"level":           user.Level,
		"currentStreak":   user.CurrentStreak,
		"lastActivityAt":  user.LastActivityAt,
		"dailyGoalTarget": user.DailyGoalTarget,
		"dailyGoalCount":  dailyGoalCount,
		"today":           toDayResponse(today, row.Summary()),
	})
}

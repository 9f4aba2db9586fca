package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/progress"
	"github.com/phanduy2004/english-for-community/internal/repository"
	"github.com/phanduy2004/english-for-community/internal/scoring"
	"github.com/phanduy2004/english-for-community/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReadingHandler struct {
	log     *zap.Logger
	tracker *services.Tracker
}

func NewReadingHandler(log *zap.Logger, tracker *services.Tracker) *ReadingHandler {
	return &ReadingHandler{log: log, tracker: tracker}
}

func (h *ReadingHandler) GetReading(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reading id"})
		return
	}
	reading, err := repository.GetReadingByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reading not found"})
		return
	}
	c.JSON(http.StatusOK, reading)
}

type readingAnswer struct {
	QuestionIdx int    `json:"questionIdx"`
	Value       string `json:"value"`
}

type readingSubmitRequest struct {
	ReadingID       uint            `json:"readingId" binding:"required"`
	Answers         []readingAnswer `json:"answers" binding:"required"`
	DurationSeconds int             `json:"durationSeconds"`
}

type readingSubmitResponse struct {
	CorrectCount   int     `json:"correctCount"`
	TotalQuestions int     `json:"totalQuestions"`
	Score          float64 `json:"score"`
	WPM            float64 `json:"wpm"`
	LessonDone     bool    `json:"lessonDone"`
}

// SubmitAttempt grades a comprehension quiz. Answers compare in normalized
// form so punctuation and case never cost the learner a point. Every
// submission is its own history row; only the first passing one flips the
// lesson to completed.
func (h *ReadingHandler) SubmitAttempt(c *gin.Context) {
	user := currentUser(c)

	var req readingSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reading, err := repository.GetReadingByID(c.Request.Context(), req.ReadingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reading not found"})
		return
	}
	if len(reading.Questions) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Reading has no questions"})
		return
	}

	answers := make(map[int]string, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionIdx] = a.Value
	}

	correct := 0
	for _, q := range reading.Questions {
		if scoring.Normalize(answers[q.Idx]) == scoring.Normalize(q.Answer) {
			correct++
		}
	}

	total := len(reading.Questions)
	score := float64(correct) / float64(total)

	var wpm float64
	if req.DurationSeconds > 0 && reading.WordCount > 0 {
		wpm = float64(reading.WordCount) / (float64(req.DurationSeconds) / 60)
	}

	attempt := &models.ReadingAttempt{
		UserID:          user.ID,
		ReadingID:       req.ReadingID,
		CorrectCount:    correct,
		TotalQuestions:  total,
		Score:           score,
		WPM:             wpm,
		DurationSeconds: req.DurationSeconds,
		SubmittedAt:     time.Now(),
	}
	if err := repository.CreateReadingAttempt(c.Request.Context(), attempt); err != nil {
		h.log.Error("Failed to save reading attempt",
			zap.Uint("userID", user.ID), zap.Uint("readingID", req.ReadingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attempt"})
		return
	}

	// A reading lesson is a single completable unit, so the enrollment has
	// one item. Retaking the quiz never double-counts completion.
	justFinished, err := repository.MarkItemsCompleted(
		c.Request.Context(), user.ID, models.LessonKindReading, req.ReadingID, []int{0}, 1)
	if err != nil {
		h.log.Error("Failed to update enrollment",
			zap.Uint("userID", user.ID), zap.Uint("readingID", req.ReadingID), zap.Error(err))
	}

	event := progress.Event{
		Kind:               progress.KindReading,
		DurationSeconds:    req.DurationSeconds,
		Score:              &score,
		LessonJustFinished: justFinished,
	}
	if wpm > 0 {
		event.WPM = &wpm
	}
	go h.tracker.Record(user.ID, event)

	c.JSON(http.StatusOK, readingSubmitResponse{
		CorrectCount:   correct,
		TotalQuestions: total,
		Score:          score,
		WPM:            wpm,
		LessonDone:     justFinished,
	})
}

func (h *ReadingHandler) GetAttempts(c *gin.Context) {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reading id"})
		return
	}
	attempts, err := repository.GetReadingAttempts(c.Request.Context(), user.ID, uint(id))
	if err != nil {
		h.log.Error("Failed to load reading attempts", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attempts"})
		return
	}
	c.JSON(http.StatusOK, attempts)
}

func countWords(s string) int {
	return len(strings.Fields(s))
}

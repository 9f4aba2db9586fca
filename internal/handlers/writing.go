package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/progress"
	"github.com/phanduy2004/english-for-community/internal/repository"
	"github.com/phanduy2004/english-for-community/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WritingHandler struct {
	log     *zap.Logger
	tracker *services.Tracker
}

func NewWritingHandler(log *zap.Logger, tracker *services.Tracker) *WritingHandler {
	return &WritingHandler{log: log, tracker: tracker}
}

func (h *WritingHandler) GetTopic(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic id"})
		return
	}
	topic, err := repository.GetWritingTopicByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}
	c.JSON(http.StatusOK, topic)
}

type writingSubmitRequest struct {
	WritingTopicID  uint   `json:"writingTopicId" binding:"required"`
	Content         string `json:"content" binding:"required"`
	DurationSeconds int    `json:"durationSeconds"`
}

// SubmitEssay stores an essay and awards a provisional length-based score.
// A later grading pass can overwrite Score and Feedback on the stored row.
func (h *WritingHandler) SubmitEssay(c *gin.Context) {
	user := currentUser(c)

	var req writingSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	topic, err := repository.GetWritingTopicByID(c.Request.Context(), req.WritingTopicID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	words := countWords(req.Content)
	score := 1.0
	if topic.MinWords > 0 {
		score = clampUnit(float64(words) / float64(topic.MinWords))
	}

	submission := &models.WritingSubmission{
		UserID:         user.ID,
		WritingTopicID: req.WritingTopicID,
		Content:        req.Content,
		WordCount:      words,
		Score:          score,
		SubmittedAt:    time.Now(),
	}
	if err := repository.CreateWritingSubmission(c.Request.Context(), submission); err != nil {
		h.log.Error("Failed to save writing submission",
			zap.Uint("userID", user.ID), zap.Uint("topicID", req.WritingTopicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		return
	}

	go h.tracker.Record(user.ID, progress.Event{
		Kind:               progress.KindWriting,
		DurationSeconds:    req.DurationSeconds,
		Score:              &score,
		LessonJustFinished: true,
	})

	c.JSON(http.StatusCreated, submission)
}

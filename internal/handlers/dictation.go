package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/progress"
	"github.com/phanduy2004/english-for-community/internal/repository"
	"github.com/phanduy2004/english-for-community/internal/scoring"
	"github.com/phanduy2004/english-for-community/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DictationHandler struct {
	log     *zap.Logger
	tracker *services.Tracker
}

func NewDictationHandler(log *zap.Logger, tracker *services.Tracker) *DictationHandler {
	return &DictationHandler{log: log, tracker: tracker}
}

func (h *DictationHandler) ListListenings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	listenings, total, err := repository.ListListenings(c.Request.Context(), c.Query("difficulty"), page, limit)
	if err != nil {
		h.log.Error("Failed to list listenings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lessons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": listenings, "total": total, "page": page})
}

func (h *DictationHandler) GetListening(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson id"})
		return
	}
	listening, err := repository.GetListeningByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}
	c.JSON(http.StatusOK, listening)
}

type dictationSubmitRequest struct {
	ListeningID     uint   `json:"listeningId" binding:"required"`
	CueIdx          *int   `json:"cueIdx" binding:"required"`
	UserText        string `json:"userText"`
	DurationSeconds int    `json:"durationSeconds"`
}

type dictationSubmitResponse struct {
	Passed       bool          `json:"passed"`
	WER          float64       `json:"wer"`
	CER          float64       `json:"cer"`
	CorrectWords int           `json:"correctWords"`
	TotalWords   int           `json:"totalWords"`
	Hint         *scoring.Hint `json:"hint,omitempty"`
	LessonDone   bool          `json:"lessonDone"`
}

// SubmitCue scores one typed cue, upserts the attempt, advances the lesson's
// completion set, and fires a progress event in the background.
func (h *DictationHandler) SubmitCue(c *gin.Context) {
	user := currentUser(c)

	var req dictationSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cue, err := repository.GetCue(c.Request.Context(), req.ListeningID, *req.CueIdx)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cue not found"})
		return
	}

	result := scoring.Score(cue.Text, req.UserText)

	now := time.Now()
	attempt := &models.DictationAttempt{
		UserID:           user.ID,
		ListeningID:      req.ListeningID,
		CueIdx:           *req.CueIdx,
		CueID:            cue.ID,
		UserText:         req.UserText,
		UserTextNorm:     scoring.Normalize(req.UserText),
		Passed:           result.Passed,
		WER:              result.WER,
		CER:              result.CER,
		CorrectWords:     result.CorrectWords,
		TotalWords:       result.TotalWords,
		DurationSeconds:  req.DurationSeconds,
		FirstSubmittedAt: now,
		LastSubmittedAt:  now,
	}
	if err := repository.UpsertDictationAttempt(c.Request.Context(), attempt); err != nil {
		h.log.Error("Failed to save dictation attempt",
			zap.Uint("userID", user.ID), zap.Uint("listeningID", req.ListeningID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attempt"})
		return
	}

	justFinished := false
	if result.Passed {
		totalCues, err := repository.CountCues(c.Request.Context(), req.ListeningID)
		if err != nil {
			h.log.Error("Failed to count cues", zap.Uint("listeningID", req.ListeningID), zap.Error(err))
		} else {
			justFinished, err = repository.MarkItemsCompleted(
				c.Request.Context(), user.ID, models.LessonKindListening, req.ListeningID,
				[]int{*req.CueIdx}, totalCues)
			if err != nil {
				h.log.Error("Failed to update enrollment",
					zap.Uint("userID", user.ID), zap.Uint("listeningID", req.ListeningID), zap.Error(err))
			}
		}
	}

	accuracy := clampUnit(1 - result.WER)
	go h.tracker.Record(user.ID, progress.Event{
		Kind:               progress.KindDictation,
		DurationSeconds:    req.DurationSeconds,
		Score:              &accuracy,
		LessonJustFinished: justFinished,
	})

	c.JSON(http.StatusOK, dictationSubmitResponse{
		Passed:       result.Passed,
		WER:          result.WER,
		CER:          result.CER,
		CorrectWords: result.CorrectWords,
		TotalWords:   result.TotalWords,
		Hint:         result.Hint,
		LessonDone:   justFinished,
	})
}

func (h *DictationHandler) GetAttempts(c *gin.Context) {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson id"})
		return
	}
	attempts, err := repository.GetDictationAttempts(c.Request.Context(), user.ID, uint(id))
	if err != nil {
		h.log.Error("Failed to load dictation attempts", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attempts"})
		return
	}
	c.JSON(http.StatusOK, attempts)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

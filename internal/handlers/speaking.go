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

// A sentence counts toward lesson completion once pronunciation accuracy
// reaches this score.
const speakingPassScore = 0.7

type SpeakingHandler struct {
	log     *zap.Logger
	tracker *services.Tracker
}

func NewSpeakingHandler(log *zap.Logger, tracker *services.Tracker) *SpeakingHandler {
	return &SpeakingHandler{log: log, tracker: tracker}
}

func (h *SpeakingHandler) GetSet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid set id"})
		return
	}
	set, err := repository.GetSpeakingSetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Speaking set not found"})
		return
	}
	c.JSON(http.StatusOK, set)
}

type speakingSubmitRequest struct {
	SpeakingSetID   uint   `json:"speakingSetId" binding:"required"`
	SentenceIdx     *int   `json:"sentenceIdx" binding:"required"`
	Transcript      string `json:"transcript"`
	DurationSeconds int    `json:"durationSeconds"`
}

type speakingSubmitResponse struct {
	Score      float64 `json:"score"`
	WER        float64 `json:"wer"`
	Passed     bool    `json:"passed"`
	LessonDone bool    `json:"lessonDone"`
}

// SubmitSentence scores a recognized transcript against the drill sentence.
// The speech recognizer runs client-side; the server only ever sees text.
func (h *SpeakingHandler) SubmitSentence(c *gin.Context) {
	user := currentUser(c)

	var req speakingSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sentence, err := repository.GetSpeakingSentence(c.Request.Context(), req.SpeakingSetID, *req.SentenceIdx)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sentence not found"})
		return
	}

	result := scoring.Score(sentence.Text, req.Transcript)
	score := clampUnit(1 - result.WER)
	passed := score >= speakingPassScore

	now := time.Now()
	attempt := &models.SpeakingAttempt{
		UserID:           user.ID,
		SpeakingSetID:    req.SpeakingSetID,
		SentenceIdx:      *req.SentenceIdx,
		Transcript:       req.Transcript,
		TranscriptNorm:   scoring.Normalize(req.Transcript),
		WER:              result.WER,
		Score:            score,
		Passed:           passed,
		FirstSubmittedAt: now,
		LastSubmittedAt:  now,
	}
	if err := repository.UpsertSpeakingAttempt(c.Request.Context(), attempt); err != nil {
		h.log.Error("Failed to save speaking attempt",
			zap.Uint("userID", user.ID), zap.Uint("setID", req.SpeakingSetID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attempt"})
		return
	}

	justFinished := false
	if passed {
		totalSentences, err := repository.CountSpeakingSentences(c.Request.Context(), req.SpeakingSetID)
		if err != nil {
			h.log.Error("Failed to count sentences", zap.Uint("setID", req.SpeakingSetID), zap.Error(err))
		} else {
			justFinished, err = repository.MarkItemsCompleted(
				c.Request.Context(), user.ID, models.LessonKindSpeaking, req.SpeakingSetID,
				[]int{*req.SentenceIdx}, totalSentences)
			if err != nil {
				h.log.Error("Failed to update enrollment",
					zap.Uint("userID", user.ID), zap.Uint("setID", req.SpeakingSetID), zap.Error(err))
			}
		}
	}

	go h.tracker.Record(user.ID, progress.Event{
		Kind:               progress.KindSpeaking,
		DurationSeconds:    req.DurationSeconds,
		Score:              &score,
		LessonJustFinished: justFinished,
	})

	c.JSON(http.StatusOK, speakingSubmitResponse{
		Score:      score,
		WER:        result.WER,
		Passed:     passed,
		LessonDone: justFinished,
	})
}

func (h *SpeakingHandler) GetAttempts(c *gin.Context) {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid set id"})
		return
	}
	attempts, err := repository.GetSpeakingAttempts(c.Request.Context(), user.ID, uint(id))
	if err != nil {
		h.log.Error("Failed to load speaking attempts", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attempts"})
		return
	}
	c.JSON(http.StatusOK, attempts)
}

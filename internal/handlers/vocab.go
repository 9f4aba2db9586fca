package handlers

import (
	"net/http"
	"strconv"

	"github.com/phanduy2004/english-for-community/internal/models"
	"github.com/phanduy2004/english-for-community/internal/progress"
	"github.com/phanduy2004/english-for-community/internal/repository"
	"github.com/phanduy2004/english-for-community/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VocabHandler struct {
	log     *zap.Logger
	tracker *services.Tracker
}

func NewVocabHandler(log *zap.Logger, tracker *services.Tracker) *VocabHandler {
	return &VocabHandler{log: log, tracker: tracker}
}

func (h *VocabHandler) List(c *gin.Context) {
	user := currentUser(c)
	items, err := repository.ListVocabItems(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to list vocab items", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load vocabulary"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type vocabCreateRequest struct {
	Word    string `json:"word" binding:"required"`
	Meaning string `json:"meaning" binding:"required"`
	Example string `json:"example"`
}

// Create saves a new word and counts it as one learned unit for today.
func (h *VocabHandler) Create(c *gin.Context) {
	user := currentUser(c)

	var req vocabCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item := &models.VocabItem{
		UserID:  user.ID,
		Word:    req.Word,
		Meaning: req.Meaning,
		Example: req.Example,
	}
	if err := repository.CreateVocabItem(c.Request.Context(), item); err != nil {
		h.log.Error("Failed to create vocab item", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save word"})
		return
	}

	go h.tracker.Record(user.ID, progress.Event{Kind: progress.KindVocab})

	c.JSON(http.StatusCreated, item)
}

type vocabReviewRequest struct {
	DurationSeconds int `json:"durationSeconds"`
}

// Review bumps a word's review counter and tracks the review as one more
// vocabulary unit for today.
func (h *VocabHandler) Review(c *gin.Context) {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req vocabReviewRequest
	_ = c.ShouldBindJSON(&req)

	item, err := repository.ReviewVocabItem(c.Request.Context(), user.ID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
		return
	}

	go h.tracker.Record(user.ID, progress.Event{
		Kind:            progress.KindVocab,
		DurationSeconds: req.DurationSeconds,
	})

	c.JSON(http.StatusOK, item)
}

func (h *VocabHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}
	if err := repository.DeleteVocabItem(c.Request.Context(), user.ID, uint(id)); err != nil {
		h.log.Error("Failed to delete vocab item", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete word"})
		return
	}
	c.Status(http.StatusNoContent)
}

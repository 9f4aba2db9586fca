package models

import "time"

// Listening is one dictation lesson: an audio track split into cues the
// learner types out one by one.
type Listening struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Code       string    `gorm:"uniqueIndex" json:"code"`
	Title      string    `json:"title"`
	Difficulty string    `json:"difficulty"`
	AudioURL   string    `json:"audioUrl"`
	Cues       []Cue     `gorm:"constraint:OnDelete:CASCADE" json:"cues,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Cue is one transcript segment of a listening lesson. TextNorm caches the
// normalized form so scoring does not re-normalize the reference on every
// submission.
type Cue struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ListeningID uint   `gorm:"index:idx_cue_listening_idx,unique" json:"listeningId"`
	Idx         int    `gorm:"index:idx_cue_listening_idx,unique" json:"idx"`
	StartMs     int    `json:"startMs"`
	EndMs       int    `json:"endMs"`
	Text        string `json:"-"` // reference transcript, not exposed in listings
	TextNorm    string `json:"-"`
}

// Reading is a timed reading passage with comprehension questions.
type Reading struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Code      string            `gorm:"uniqueIndex" json:"code"`
	Title     string            `json:"title"`
	Level     string            `json:"level"`
	Content   string            `json:"content"`
	WordCount int               `json:"wordCount"`
	Questions []ReadingQuestion `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type ReadingQuestion struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ReadingID uint   `gorm:"index" json:"readingId"`
	Idx       int    `json:"idx"`
	Prompt    string `json:"prompt"`
	Options   string `json:"options"` // JSON-encoded list, opaque to the server
	Answer    string `json:"-"`
}

// SpeakingSet is a pronunciation drill: sentences the learner reads aloud.
// An external speech-recognition collaborator produces the transcript that
// reaches the scoring engine.
type SpeakingSet struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	Code      string             `gorm:"uniqueIndex" json:"code"`
	Title     string             `json:"title"`
	Level     string             `json:"level"`
	Sentences []SpeakingSentence `gorm:"constraint:OnDelete:CASCADE" json:"sentences,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

type SpeakingSentence struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	SpeakingSetID uint   `gorm:"index:idx_sentence_set_idx,unique" json:"speakingSetId"`
	Idx           int    `gorm:"index:idx_sentence_set_idx,unique" json:"idx"`
	Text          string `json:"text"`
	TextNorm      string `json:"-"`
}

// WritingTopic is a graded essay prompt.
type WritingTopic struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"uniqueIndex" json:"code"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Level     string    `json:"level"`
	MinWords  int       `json:"minWords"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VocabItem is one word in the learner's personal vocabulary list.
type VocabItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"userId"`
	Word      string    `json:"word"`
	Meaning   string    `json:"meaning"`
	Example   string    `json:"example"`
	Reviews   int       `json:"reviews"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

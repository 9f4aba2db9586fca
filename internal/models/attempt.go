package models

import (
	"time"

	"github.com/lib/pq"
)

// DictationAttempt is the current attempt for one (learner, listening, cue).
// Resubmissions overwrite in place: FirstSubmittedAt is preserved,
// AttemptsCount increments, everything else reflects the latest submission.
type DictationAttempt struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"index:idx_dictation_attempt,unique" json:"userId"`
	ListeningID uint `gorm:"index:idx_dictation_attempt,unique" json:"listeningId"`
	CueIdx      int  `gorm:"index:idx_dictation_attempt,unique" json:"cueIdx"`
	CueID       uint `json:"cueId"`

	UserText     string `json:"userText"`
	UserTextNorm string `json:"userTextNorm"`

	Passed       bool    `json:"passed"`
	WER          float64 `gorm:"column:wer" json:"wer"`
	CER          float64 `gorm:"column:cer" json:"cer"`
	CorrectWords int     `json:"correctWords"`
	TotalWords   int     `json:"totalWords"`

	AttemptsCount    int       `gorm:"default:1" json:"attemptsCount"`
	DurationSeconds  int       `json:"durationSeconds"`
	FirstSubmittedAt time.Time `json:"firstSubmittedAt"`
	LastSubmittedAt  time.Time `json:"lastSubmittedAt"`
}

// SpeakingAttempt is the current attempt for one (learner, set, sentence).
// Score is 1-WER clamped to [0,1].
type SpeakingAttempt struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	UserID        uint `gorm:"index:idx_speaking_attempt,unique" json:"userId"`
	SpeakingSetID uint `gorm:"index:idx_speaking_attempt,unique" json:"speakingSetId"`
	SentenceIdx   int  `gorm:"index:idx_speaking_attempt,unique" json:"sentenceIdx"`

	Transcript     string `json:"transcript"`
	TranscriptNorm string `json:"transcriptNorm"`

	WER    float64 `gorm:"column:wer" json:"wer"`
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`

	AttemptsCount    int       `gorm:"default:1" json:"attemptsCount"`
	FirstSubmittedAt time.Time `json:"firstSubmittedAt"`
	LastSubmittedAt  time.Time `json:"lastSubmittedAt"`
}

// ReadingAttempt keeps every submission as its own row; reading history is a
// raw log rather than an upserted current state.
type ReadingAttempt struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"index" json:"userId"`
	ReadingID uint `gorm:"index" json:"readingId"`

	CorrectCount    int     `json:"correctCount"`
	TotalQuestions  int     `json:"totalQuestions"`
	Score           float64 `json:"score"`
	WPM             float64 `gorm:"column:wpm" json:"wpm"`
	DurationSeconds int     `json:"durationSeconds"`

	SubmittedAt time.Time `json:"submittedAt"`
}

// WritingSubmission is one graded essay.
type WritingSubmission struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	UserID         uint `gorm:"index" json:"userId"`
	WritingTopicID uint `gorm:"index" json:"writingTopicId"`

	Content   string  `json:"content"`
	WordCount int     `json:"wordCount"`
	Score     float64 `json:"score"`
	Feedback  string  `json:"feedback"`

	SubmittedAt time.Time `json:"submittedAt"`
}

// Lesson kinds an Enrollment row can track.
const (
	LessonKindListening = "listening"
	LessonKindSpeaking  = "speaking"
	LessonKindReading   = "reading"
)

// Enrollment tracks a learner's completion state for one item-based lesson
// (dictation cues, speaking sentences). CompletedItems is the set of item
// indexes the learner has passed; Completed flips exactly once, when every
// item is done — that flip is the idempotent "lesson just finished" signal.
type Enrollment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index:idx_enrollment,unique" json:"userId"`
	LessonKind string `gorm:"index:idx_enrollment,unique" json:"lessonKind"`
	LessonID   uint   `gorm:"index:idx_enrollment,unique" json:"lessonId"`

	CompletedItems pq.Int64Array `gorm:"type:integer[]" json:"completedItems"`
	Progress       float64       `json:"progress"`
	Completed      bool          `json:"completed"`

	CreatedAt      time.Time `json:"createdAt"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
}

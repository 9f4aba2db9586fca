package models

import (
	"time"

	"github.com/phanduy2004/english-for-community/internal/progress"
)

// UserDailyProgress is one learner's per-day summary, keyed by the learner
// and the ISO date string in the learner's local timezone. Exactly one row
// exists per (user, date); all writes are additive increments upserted on
// first activity of the day.
type UserDailyProgress struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index:idx_daily_progress,unique" json:"userId"`
	Date   string `gorm:"index:idx_daily_progress,unique" json:"date"` // "YYYY-MM-DD"

	StudySeconds int `json:"studySeconds"`
	VocabLearned int `json:"vocabLearned"`

	LessonsListening int `json:"lessonsListening"`
	LessonsReading   int `json:"lessonsReading"`
	LessonsSpeaking  int `json:"lessonsSpeaking"`
	LessonsWriting   int `json:"lessonsWriting"`

	// Running {total,count} sums; averages are computed at read time.
	ReadingAccuracyTotal   float64 `json:"-"`
	ReadingAccuracyCount   int     `json:"-"`
	ReadingWPMTotal        float64 `gorm:"column:reading_wpm_total" json:"-"`
	ReadingWPMCount        int     `gorm:"column:reading_wpm_count" json:"-"`
	DictationAccuracyTotal float64 `json:"-"`
	DictationAccuracyCount int     `json:"-"`
	SpeakingScoreTotal     float64 `json:"-"`
	SpeakingScoreCount     int     `json:"-"`
	WritingScoreTotal      float64 `json:"-"`
	WritingScoreCount      int     `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary converts the row to the pure in-memory form used by the reducer
// and the read path.
func (p *UserDailyProgress) Summary() progress.DaySummary {
	return progress.DaySummary{
		StudySeconds:     p.StudySeconds,
		VocabLearned:     p.VocabLearned,
		LessonsListening: p.LessonsListening,
		LessonsReading:   p.LessonsReading,
		LessonsSpeaking:  p.LessonsSpeaking,
		LessonsWriting:   p.LessonsWriting,
		ReadingAccuracy:  progress.StatPair{Total: p.ReadingAccuracyTotal, Count: p.ReadingAccuracyCount},
		ReadingWPM:       progress.StatPair{Total: p.ReadingWPMTotal, Count: p.ReadingWPMCount},
		DictationAccuracy: progress.StatPair{
			Total: p.DictationAccuracyTotal,
			Count: p.DictationAccuracyCount,
		},
		SpeakingScore: progress.StatPair{Total: p.SpeakingScoreTotal, Count: p.SpeakingScoreCount},
		WritingScore:  progress.StatPair{Total: p.WritingScoreTotal, Count: p.WritingScoreCount},
	}
}

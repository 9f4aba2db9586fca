// Package progress folds per-activity events into per-learner-per-day
// summaries and evolves the streak/points state on the learner profile.
// Everything in this package is pure; the services and repository layers
// apply the computed deltas to storage.
package progress

// ActivityKind identifies the skill an event belongs to.
type ActivityKind string

const (
	KindReading   ActivityKind = "reading"
	KindDictation ActivityKind = "dictation"
	KindSpeaking  ActivityKind = "speaking"
	KindWriting   ActivityKind = "writing"
	KindVocab     ActivityKind = "vocab"
)

// Valid reports whether k is one of the known activity kinds.
func (k ActivityKind) Valid() bool {
	switch k {
	case KindReading, KindDictation, KindSpeaking, KindWriting, KindVocab:
		return true
	}
	return false
}

// Event is one scoring/activity occurrence as reported by a request handler.
//
// LessonJustFinished must be computed by the caller as "this submission
// transitioned the lesson from not-done to done", never as "is currently
// done" — the latter double-counts on every resubmission of an already
// completed item.
type Event struct {
	Kind            ActivityKind
	DurationSeconds int
	Score           *float64 // normalized 0..1 quality statistic, when scored
	WPM             *float64 // reading words-per-minute, when measured
	LessonJustFinished bool
}

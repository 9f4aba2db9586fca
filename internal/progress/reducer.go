package progress

// StatPair is a running sum for one per-skill statistic. The average is
// always Total/Count at read time and is never stored, so late-arriving
// corrections stay consistent.
type StatPair struct {
	Total float64
	Count int
}

// Average returns Total/Count, or 0 for an empty pair.
func (p StatPair) Average() float64 {
	if p.Count == 0 {
		return 0
	}
	return p.Total / float64(p.Count)
}

// DaySummary is the in-memory form of one learner's per-day record.
type DaySummary struct {
	StudySeconds int
	VocabLearned int

	LessonsListening int
	LessonsReading   int
	LessonsSpeaking  int
	LessonsWriting   int

	ReadingAccuracy   StatPair
	ReadingWPM        StatPair
	DictationAccuracy StatPair
	SpeakingScore     StatPair
	WritingScore      StatPair
}

// Delta is the additive update one event contributes to a DaySummary. All
// fields are increments; storage applies them with upsert-increment
// semantics so concurrent events never lose writes on document creation.
type Delta struct {
	StudySeconds int
	VocabLearned int

	LessonsListening int
	LessonsReading   int
	LessonsSpeaking  int
	LessonsWriting   int

	ReadingAccuracyTotal   float64
	ReadingAccuracyCount   int
	ReadingWPMTotal        float64
	ReadingWPMCount        int
	DictationAccuracyTotal float64
	DictationAccuracyCount int
	SpeakingScoreTotal     float64
	SpeakingScoreCount     int
	WritingScoreTotal      float64
	WritingScoreCount      int
}

// DeltaFor reduces one event to its additive deltas.
//
// Study time is always added, even when the activity completes nothing.
// Per-skill lesson counters move only on LessonJustFinished. Score sums move
// on every scored submission regardless of completion, since statistics
// should reflect effort, not just completion. Vocabulary events count one
// learned unit per call.
func DeltaFor(e Event) Delta {
	d := Delta{StudySeconds: e.DurationSeconds}
	if d.StudySeconds < 0 {
		d.StudySeconds = 0
	}

	switch e.Kind {
	case KindReading:
		if e.LessonJustFinished {
			d.LessonsReading = 1
		}
		if e.Score != nil {
			d.ReadingAccuracyTotal = *e.Score
			d.ReadingAccuracyCount = 1
		}
		if e.WPM != nil {
			d.ReadingWPMTotal = *e.WPM
			d.ReadingWPMCount = 1
		}
	case KindDictation:
		if e.LessonJustFinished {
			d.LessonsListening = 1
		}
		if e.Score != nil {
			d.DictationAccuracyTotal = *e.Score
			d.DictationAccuracyCount = 1
		}
	case KindSpeaking:
		if e.LessonJustFinished {
			d.LessonsSpeaking = 1
		}
		if e.Score != nil {
			d.SpeakingScoreTotal = *e.Score
			d.SpeakingScoreCount = 1
		}
	case KindWriting:
		if e.LessonJustFinished {
			d.LessonsWriting = 1
		}
		if e.Score != nil {
			d.WritingScoreTotal = *e.Score
			d.WritingScoreCount = 1
		}
	case KindVocab:
		d.VocabLearned = 1
	}
	return d
}

// Apply folds one delta into a summary and returns the result. The fold is
// commutative over deltas, so replay order does not matter.
func Apply(s DaySummary, d Delta) DaySummary {
	s.StudySeconds += d.StudySeconds
	s.VocabLearned += d.VocabLearned

	s.LessonsListening += d.LessonsListening
	s.LessonsReading += d.LessonsReading
	s.LessonsSpeaking += d.LessonsSpeaking
	s.LessonsWriting += d.LessonsWriting

	s.ReadingAccuracy.Total += d.ReadingAccuracyTotal
	s.ReadingAccuracy.Count += d.ReadingAccuracyCount
	s.ReadingWPM.Total += d.ReadingWPMTotal
	s.ReadingWPM.Count += d.ReadingWPMCount
	s.DictationAccuracy.Total += d.DictationAccuracyTotal
	s.DictationAccuracy.Count += d.DictationAccuracyCount
	s.SpeakingScore.Total += d.SpeakingScoreTotal
	s.SpeakingScore.Count += d.SpeakingScoreCount
	s.WritingScore.Total += d.WritingScoreTotal
	s.WritingScore.Count += d.WritingScoreCount
	return s
}

package progress

import "testing"

func f(v float64) *float64 { return &v }

func TestDeltaForStudyTimeAlwaysAdded(t *testing.T) {
	t.Parallel()

	for _, kind := range []ActivityKind{KindReading, KindDictation, KindSpeaking, KindWriting, KindVocab} {
		d := DeltaFor(Event{Kind: kind, DurationSeconds: 90})
		if d.StudySeconds != 90 {
			t.Errorf("kind %s: StudySeconds = %d, want 90", kind, d.StudySeconds)
		}
	}
}

func TestDeltaForNegativeDurationClamped(t *testing.T) {
	t.Parallel()

	d := DeltaFor(Event{Kind: KindReading, DurationSeconds: -5})
	if d.StudySeconds != 0 {
		t.Errorf("StudySeconds = %d, want 0", d.StudySeconds)
	}
}

func TestDeltaForLessonCounterGatedOnCompletion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind    ActivityKind
		counter func(Delta) int
	}{
		{KindReading, func(d Delta) int { return d.LessonsReading }},
		{KindDictation, func(d Delta) int { return d.LessonsListening }},
		{KindSpeaking, func(d Delta) int { return d.LessonsSpeaking }},
		{KindWriting, func(d Delta) int { return d.LessonsWriting }},
	}
	for _, tc := range cases {
		if got := tc.counter(DeltaFor(Event{Kind: tc.kind})); got != 0 {
			t.Errorf("%s without completion: counter = %d, want 0", tc.kind, got)
		}
		if got := tc.counter(DeltaFor(Event{Kind: tc.kind, LessonJustFinished: true})); got != 1 {
			t.Errorf("%s with completion: counter = %d, want 1", tc.kind, got)
		}
	}
}

func TestDeltaForScoreCountsIndependentOfCompletion(t *testing.T) {
	t.Parallel()

	d := DeltaFor(Event{Kind: KindDictation, Score: f(0.75)})
	if d.DictationAccuracyTotal != 0.75 || d.DictationAccuracyCount != 1 {
		t.Errorf("got total=%v count=%d, want 0.75/1", d.DictationAccuracyTotal, d.DictationAccuracyCount)
	}
	if d.LessonsListening != 0 {
		t.Errorf("scored but unfinished dictation must not bump lesson counter")
	}
}

func TestDeltaForVocab(t *testing.T) {
	t.Parallel()

	d := DeltaFor(Event{Kind: KindVocab, DurationSeconds: 10})
	if d.VocabLearned != 1 {
		t.Errorf("VocabLearned = %d, want 1", d.VocabLearned)
	}
}

func TestDeltaForReadingWPM(t *testing.T) {
	t.Parallel()

	d := DeltaFor(Event{Kind: KindReading, Score: f(0.8), WPM: f(142)})
	if d.ReadingWPMTotal != 142 || d.ReadingWPMCount != 1 {
		t.Errorf("got wpm total=%v count=%d, want 142/1", d.ReadingWPMTotal, d.ReadingWPMCount)
	}
	if d.ReadingAccuracyTotal != 0.8 || d.ReadingAccuracyCount != 1 {
		t.Errorf("got accuracy total=%v count=%d, want 0.8/1", d.ReadingAccuracyTotal, d.ReadingAccuracyCount)
	}
}

// The fold is additive and order-independent: two events with durations d1
// and d2 always produce studySeconds d1+d2.
func TestApplyCommutative(t *testing.T) {
	t.Parallel()

	e1 := Event{Kind: KindReading, DurationSeconds: 120, Score: f(0.9), LessonJustFinished: true}
	e2 := Event{Kind: KindDictation, DurationSeconds: 45, Score: f(0.5)}

	ab := Apply(Apply(DaySummary{}, DeltaFor(e1)), DeltaFor(e2))
	ba := Apply(Apply(DaySummary{}, DeltaFor(e2)), DeltaFor(e1))

	if ab != ba {
		t.Errorf("fold not commutative: %+v vs %+v", ab, ba)
	}
	if ab.StudySeconds != 165 {
		t.Errorf("StudySeconds = %d, want 165", ab.StudySeconds)
	}
	if ab.LessonsReading != 1 || ab.LessonsListening != 0 {
		t.Errorf("lesson counters = reading %d listening %d, want 1/0", ab.LessonsReading, ab.LessonsListening)
	}
}

func TestStatPairAverage(t *testing.T) {
	t.Parallel()

	if got := (StatPair{}).Average(); got != 0 {
		t.Errorf("empty pair average = %v, want 0", got)
	}
	if got := (StatPair{Total: 1.5, Count: 2}).Average(); got != 0.75 {
		t.Errorf("average = %v, want 0.75", got)
	}
}

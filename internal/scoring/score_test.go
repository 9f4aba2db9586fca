package scoring

import (
	"strings"
	"testing"
)

func TestScoreExactMatch(t *testing.T) {
	t.Parallel()

	res := Score("The quick brown fox", "the quick brown fox!")
	if !res.Passed {
		t.Error("expected exact match to pass")
	}
	if res.WER != 0 {
		t.Errorf("WER = %v, want 0", res.WER)
	}
	if res.CorrectWords != 4 || res.TotalWords != 4 {
		t.Errorf("got %d/%d correct words, want 4/4", res.CorrectWords, res.TotalWords)
	}
	if res.Hint != nil {
		t.Error("passing attempt should carry no hint")
	}
}

func TestScoreSubstitution(t *testing.T) {
	t.Parallel()

	res := Score("The quick brown fox", "the kwik brown fox")
	if res.Passed {
		t.Error("expected substitution to fail the exact-match gate")
	}
	if res.WER != 0.25 {
		t.Errorf("WER = %v, want 0.25", res.WER)
	}
	if res.Hint == nil {
		t.Fatal("failing attempt should carry a hint")
	}
	if res.Hint.FirstWrongIndex != 1 {
		t.Errorf("FirstWrongIndex = %d, want 1", res.Hint.FirstWrongIndex)
	}
	if !strings.HasPrefix(res.Hint.MaskedSuggestion, "The quick *****") {
		t.Errorf("MaskedSuggestion = %q, want prefix %q", res.Hint.MaskedSuggestion, "The quick *****")
	}
}

func TestScoreEmptyInput(t *testing.T) {
	t.Parallel()

	res := Score("one two three four five", "")
	if res.Passed {
		t.Error("empty input must not pass")
	}
	if res.WER != 1 {
		t.Errorf("WER = %v, want 1", res.WER)
	}
	if res.CorrectWords != 0 || res.TotalWords != 5 {
		t.Errorf("got %d/%d correct words, want 0/5", res.CorrectWords, res.TotalWords)
	}
}

// Accent and punctuation differences alone must not fail an attempt.
func TestScoreToleratesAccentsAndPunctuation(t *testing.T) {
	t.Parallel()

	res := Score("I’d like a café, please.", "i'd like a cafe please")
	if !res.Passed {
		t.Errorf("expected accent/punctuation-only differences to pass, WER %v", res.WER)
	}
}

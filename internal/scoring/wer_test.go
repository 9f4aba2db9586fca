package scoring

import (
	"math"
	"testing"
)

func TestWordErrorRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		ref, hyp    string
		wantWER     float64
		wantCorrect int
		wantTotal   int
	}{
		{"identical", "the quick brown fox", "the quick brown fox", 0, 4, 4},
		{"one substitution", "the quick brown fox", "the kwik brown fox", 0.25, 3, 4},
		{"empty hypothesis", "one two three four five", "", 1, 0, 5},
		{"both empty", "", "", 0, 0, 0},
		{"empty reference", "", "anything at all", 1, 0, 0},
		{"insertion", "a b c", "a x b c", 1.0 / 3.0, 2, 3},
		{"deletion", "a b c", "a c", 1.0 / 3.0, 2, 3},
		{"total mismatch", "a b", "x y z", 1.5, 0, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WordErrorRate(tc.ref, tc.hyp)
			if math.Abs(got.WER-tc.wantWER) > 1e-9 {
				t.Errorf("WER = %v, want %v", got.WER, tc.wantWER)
			}
			if got.CorrectWords != tc.wantCorrect {
				t.Errorf("CorrectWords = %d, want %d", got.CorrectWords, tc.wantCorrect)
			}
			if got.TotalWords != tc.wantTotal {
				t.Errorf("TotalWords = %d, want %d", got.TotalWords, tc.wantTotal)
			}
		})
	}
}

func TestWordErrorRateSelfIsZero(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"hello", "the quick brown fox", "a b c d e f g"} {
		if got := WordErrorRate(s, s); got.WER != 0 {
			t.Errorf("WordErrorRate(%q, %q).WER = %v, want 0", s, s, got.WER)
		}
	}
}

func TestCharErrorRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		ref, hyp string
		want     float64
	}{
		{"identical", "abc", "abc", 0},
		{"one of four", "abcd", "abxd", 0.25},
		{"both empty", "", "", 0},
		{"empty reference", "", "x", 1},
		{"empty hypothesis", "abcd", "", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CharErrorRate(tc.ref, tc.hyp); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("CharErrorRate(%q, %q) = %v, want %v", tc.ref, tc.hyp, got, tc.want)
			}
		})
	}
}

func TestIsSentenceComplete(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		ref, hyp string
		want     bool
	}{
		{"exact", "the quick brown fox", "the quick brown fox", true},
		{"substitution", "the quick brown fox", "the kwik brown fox", false},
		{"missing word", "the quick brown fox", "the quick brown", false},
		{"extra word", "the quick brown fox", "the quick brown fox jumps", false},
		{"both empty", "", "", true},
		{"single char edit", "hello there", "hello theres", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSentenceComplete(tc.ref, tc.hyp); got != tc.want {
				t.Errorf("IsSentenceComplete(%q, %q) = %v, want %v", tc.ref, tc.hyp, got, tc.want)
			}
		})
	}
}

// The exact-match gate must be at least as strict as WER: any non-zero WER
// implies not complete.
func TestCompleteImpliesZeroWER(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"the quick brown fox", "the quick brown fox"},
		{"the quick brown fox", "the kwik brown fox"},
		{"a b c", "a b"},
		{"hello", "hello hello"},
	}
	for _, p := range pairs {
		complete := IsSentenceComplete(p[0], p[1])
		wer := WordErrorRate(p[0], p[1]).WER
		if complete && wer != 0 {
			t.Errorf("IsSentenceComplete(%q, %q) = true but WER = %v", p[0], p[1], wer)
		}
		if wer == 0 && !complete {
			t.Errorf("WER 0 for (%q, %q) but not complete", p[0], p[1])
		}
	}
}

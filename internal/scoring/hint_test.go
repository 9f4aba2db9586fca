package scoring

import (
	"strings"
	"testing"
)

func TestBuildMaskedHint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		refRaw     string
		hyp        string
		wantIndex  int
		wantMasked string
	}{
		{
			name:       "mismatch mid sentence",
			refRaw:     "The quick brown fox",
			hyp:        "the kwik brown fox",
			wantIndex:  1,
			wantMasked: "The quick *****",
		},
		{
			name:       "empty hypothesis points at first word",
			refRaw:     "The quick brown fox",
			hyp:        "",
			wantIndex:  0,
			wantMasked: "The *****",
		},
		{
			name:       "partial word tolerated",
			refRaw:     "The quick brown fox",
			hyp:        "the qui",
			wantIndex:  2,
			wantMasked: "The quick brown *****",
		},
		{
			name:       "hypothesis is strict prefix",
			refRaw:     "The quick brown fox",
			hyp:        "the quick",
			wantIndex:  2,
			wantMasked: "The quick brown *****",
		},
		{
			name:       "extra trailing words default to last token",
			refRaw:     "The quick",
			hyp:        "the quick brown fox",
			wantIndex:  1,
			wantMasked: "The quick",
		},
		{
			name:       "last word wrong reveals whole reference",
			refRaw:     "The quick brown fox",
			hyp:        "the quick brown dog",
			wantIndex:  3,
			wantMasked: "The quick brown fox",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildMaskedHint(tc.refRaw, Normalize(tc.refRaw), Normalize(tc.hyp))
			if got.FirstWrongIndex != tc.wantIndex {
				t.Errorf("FirstWrongIndex = %d, want %d", got.FirstWrongIndex, tc.wantIndex)
			}
			if got.MaskedSuggestion != tc.wantMasked {
				t.Errorf("MaskedSuggestion = %q, want %q", got.MaskedSuggestion, tc.wantMasked)
			}
		})
	}
}

// The hint must never leak the learner's own text: every non-mask token in
// the suggestion has to come from the reference.
func TestMaskedHintNeverLeaksHypothesis(t *testing.T) {
	t.Parallel()

	ref := "She sells sea shells"
	refNorm := Normalize(ref)
	hyps := []string{
		"she sold sea smells",
		"completely unrelated garbage words",
		"she sells xyzzy",
		"",
	}

	refTokens := map[string]bool{}
	for _, w := range strings.Fields(ref) {
		refTokens[w] = true
	}

	for _, hyp := range hyps {
		h := BuildMaskedHint(ref, refNorm, Normalize(hyp))
		for _, tok := range strings.Fields(h.MaskedSuggestion) {
			if tok == maskMarker {
				continue
			}
			if !refTokens[tok] {
				t.Errorf("hint for hyp %q leaked token %q", hyp, tok)
			}
		}
	}
}

func TestBuildMaskedHintEmptyReference(t *testing.T) {
	t.Parallel()

	h := BuildMaskedHint("", "", Normalize("whatever"))
	if h.MaskedSuggestion != "" {
		t.Errorf("expected empty suggestion for empty reference, got %q", h.MaskedSuggestion)
	}
}

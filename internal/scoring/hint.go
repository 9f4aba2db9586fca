package scoring

import "strings"

// maskMarker is appended to a hint when reference tokens remain beyond the
// revealed prefix, so the hint never becomes a full answer key.
const maskMarker = "*****"

// Hint points the learner at the first diverging word without revealing the
// rest of the reference, and without ever echoing the learner's own input.
type Hint struct {
	FirstWrongIndex  int    `json:"firstWrongIndex"`
	MaskedSuggestion string `json:"maskedSuggestion"`
}

// BuildMaskedHint locates the first wrong token position and builds a hint
// from the raw (non-normalized) reference. A position is accepted while the
// learner's token is a prefix of the reference token, which tolerates a word
// that is only partially typed so far. If the hypothesis is a strict prefix
// of the reference, the first wrong index is the next token to type.
func BuildMaskedHint(refRaw, refNorm, hypNorm string) Hint {
	refWords := strings.Fields(refNorm)
	hypWords := strings.Fields(hypNorm)

	if len(refWords) == 0 {
		return Hint{FirstWrongIndex: 0}
	}

	idx := -1
	limit := len(refWords)
	if len(hypWords) < limit {
		limit = len(hypWords)
	}
	for i := 0; i < limit; i++ {
		if !strings.HasPrefix(refWords[i], hypWords[i]) {
			idx = i
			break
		}
	}
	if idx < 0 {
		if len(hypWords) < len(refWords) {
			idx = len(hypWords)
		} else {
			idx = len(refWords) - 1
		}
	}

	rawWords := strings.Fields(refRaw)
	if idx >= len(rawWords) {
		idx = len(rawWords) - 1
	}

	masked := strings.Join(rawWords[:idx+1], " ")
	if idx+1 < len(rawWords) {
		masked += " " + maskMarker
	}
	return Hint{FirstWrongIndex: idx, MaskedSuggestion: masked}
}

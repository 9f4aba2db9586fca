package scoring

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// WERResult carries the word-level comparison between a reference transcript
// and a learner's input. WER is a similarity metric, not a pass/fail verdict:
// it is kept for dashboards and trend statistics while the dictation gate
// uses IsSentenceComplete.
type WERResult struct {
	WER          float64 `json:"wer"`
	CorrectWords int     `json:"correctWords"`
	TotalWords   int     `json:"totalWords"`
}

// WordErrorRate computes the Levenshtein edit distance over word tokens of
// the two (already normalized) strings, divided by the reference length.
// Both inputs empty yields WER 0; an empty reference against a non-empty
// hypothesis yields WER 1.
func WordErrorRate(ref, hyp string) WERResult {
	refWords := strings.Fields(ref)
	hypWords := strings.Fields(hyp)
	m, n := len(refWords), len(hypWords)

	if m == 0 {
		if n == 0 {
			return WERResult{}
		}
		return WERResult{WER: 1}
	}

	dist := levenshteinTokens(refWords, hypWords)

	correct := m - dist
	if correct < 0 {
		correct = 0
	}
	return WERResult{
		WER:          float64(dist) / float64(m),
		CorrectWords: correct,
		TotalWords:   m,
	}
}

// levenshteinTokens is the standard O(m*n) dynamic program with unit costs
// for insertion, deletion and substitution, rolling a single row.
func levenshteinTokens(ref, hyp []string) int {
	m, n := len(ref), len(hyp)
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}
	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if ref[i-1] == hyp[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}
	return prev[n]
}

// CharErrorRate is the same edit-distance metric applied to the character
// sequence. Secondary statistic only; never load-bearing for pass/fail.
func CharErrorRate(ref, hyp string) float64 {
	m := len([]rune(ref))
	n := len([]rune(hyp))
	if m == 0 {
		if n == 0 {
			return 0
		}
		return 1
	}
	return float64(matchr.Levenshtein(ref, hyp)) / float64(m)
}

// IsSentenceComplete reports whether the hypothesis matches the reference
// token for token after normalization. This is the authoritative dictation
// pass rule: only an exact match counts, WER is informative only.
func IsSentenceComplete(refNorm, hypNorm string) bool {
	refWords := strings.Fields(refNorm)
	hypWords := strings.Fields(hypNorm)
	if len(refWords) != len(hypWords) {
		return false
	}
	for i, w := range refWords {
		if hypWords[i] != w {
			return false
		}
	}
	return true
}

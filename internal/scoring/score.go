// Package scoring compares a reference transcript against a learner's typed
// or spoken attempt. All functions are pure and total over strings: empty or
// malformed input yields a defined result, never a panic or an error. The
// caller is responsible for validating that the referenced exercise exists
// before scoring.
package scoring

// Result is the full outcome of scoring one attempt against a reference.
type Result struct {
	WERResult
	CER    float64 `json:"cer"`
	Passed bool    `json:"passed"`
	Hint   *Hint   `json:"hint,omitempty"`
}

// Score normalizes both sides, computes word and character error rates,
// applies the exact-match pass rule and, on failure, builds a masked hint
// pointing at the first divergence. The hint is derived from the reference
// only; the learner's input is never echoed back.
func Score(reference, learnerInput string) Result {
	refNorm := Normalize(reference)
	hypNorm := Normalize(learnerInput)

	res := Result{
		WERResult: WordErrorRate(refNorm, hypNorm),
		CER:       CharErrorRate(refNorm, hypNorm),
		Passed:    IsSentenceComplete(refNorm, hypNorm),
	}
	if !res.Passed {
		h := BuildMaskedHint(reference, refNorm, hypNorm)
		res.Hint = &h
	}
	return res
}

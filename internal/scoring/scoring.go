// Package scoring implements the five independent verifiers of the proof
// pipeline. Each verifier is a pure function of the submission records and
// returns a score in [0,1] together with a flat attribute map that the
// orchestrator merges into the final proof.
package scoring

import "strings"

// Clamp01 bounds a score to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wordSet lower-cases and whitespace-tokenizes content into a word set.
func wordSet(content string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(content))
	set := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		set[w] = struct{}{}
	}
	return set
}

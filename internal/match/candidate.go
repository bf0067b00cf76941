package match

import (
	"sort"
)

// DefaultThreshold is the minimum similarity a candidate needs to be suggested.
const DefaultThreshold = 0.5

// Candidate represents a known name scored against an unknown one.
type Candidate struct {
	Name string
	// Score is the normalized Levenshtein similarity (0-1).
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against target.
// Returns candidates sorted by score (descending).
func RankCandidates(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	targetNorm := NormalizeToken(target)

	for _, name := range names {
		nameNorm := NormalizeToken(name)
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: LevenshteinNormalized(nameNorm, targetNorm),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit names whose similarity to target is at least
// DefaultThreshold, best first. An exact match is never suggested.
func Suggest(target string, names []string, limit int) []string {
	var similar CandidateList

	for _, c := range RankCandidates(target, names).AboveThreshold(DefaultThreshold) {
		if c.Name != target {
			similar = append(similar, c)
		}
	}

	var out []string
	for _, c := range similar.Top(limit) {
		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n <= 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates whose score is at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Package match provides token normalization, Levenshtein distance calculation
// and candidate ranking used to suggest close names when a format identifier
// or a grammeme is not found.
//
// Key functions:
//   - NormalizeToken: normalizes a token for fuzzy comparison
//   - Levenshtein: computes rune-wise edit distance between strings
//   - RankCandidates: ranks known names against an unknown one
//   - Suggest: returns the best few names above a similarity threshold
package match

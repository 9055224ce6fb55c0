// Package recitation scores a recited transcript against canonical verse text.
package recitation

import (
	"math"

	"hifztrack/internal/arabic"
	"hifztrack/internal/models"
)

// maxPairingDistance is how far apart a deletion and an addition may sit
// and still be reported as one substitution.
const maxPairingDistance = 2

// Mismatch is one discrepancy between the canonical text and the recitation.
// WordIndex points into the canonical words for deletions and substitutions,
// and into the recited words for additions.
type Mismatch struct {
	WordIndex    int              `json:"word_index"`
	ExpectedWord string           `json:"expected_word"`
	ActualWord   string           `json:"actual_word"`
	Kind         models.ErrorKind `json:"kind"`
}

// Result is the outcome of comparing a recitation with its canonical text
type Result struct {
	Score        int        `json:"score"`
	Errors       []Mismatch `json:"errors"`
	TotalWords   int        `json:"total_words"`
	CorrectWords int        `json:"correct_words"`
}

// Passed reports whether the score reaches the threshold
func (r Result) Passed(threshold int) bool {
	return r.Score >= threshold
}

// CountByKind counts mismatches per kind
func (r Result) CountByKind() map[models.ErrorKind]int {
	counts := make(map[models.ErrorKind]int, 3)
	for _, e := range r.Errors {
		counts[e.Kind]++
	}
	return counts
}

type unmatchedWord struct {
	index int
	raw   string
}

// CompareTexts aligns the recited input against the original text with a
// rasm-tolerant longest common subsequence and classifies what is left over.
func CompareTexts(original, input string) Result {
	origWords := arabic.SplitWords(arabic.Normalize(original))
	inputWords := arabic.SplitWords(arabic.Normalize(input))
	origRaw := arabic.SplitWords(arabic.CleanText(original))
	inputRaw := arabic.SplitWords(arabic.CleanText(input))

	lcs := fuzzyLCS(origWords, inputWords)

	origMatched := make([]bool, len(origWords))
	inputMatched := make([]bool, len(inputWords))

	// Each subsequence word claims the earliest remaining fuzzy match on both sides.
	oi, ii := 0, 0
	for _, word := range lcs {
		for oi < len(origWords) && !arabic.WordsMatch(origWords[oi], word) {
			oi++
		}
		for ii < len(inputWords) && !arabic.WordsMatch(inputWords[ii], word) {
			ii++
		}
		if oi < len(origWords) && ii < len(inputWords) {
			origMatched[oi] = true
			inputMatched[ii] = true
			oi++
			ii++
		}
	}

	var deletions, additions []unmatchedWord
	for i := range origWords {
		if !origMatched[i] {
			deletions = append(deletions, unmatchedWord{index: i, raw: tokenAt(origRaw, i)})
		}
	}
	for i := range inputWords {
		if !inputMatched[i] {
			additions = append(additions, unmatchedWord{index: i, raw: tokenAt(inputRaw, i)})
		}
	}

	errors := make([]Mismatch, 0, len(deletions)+len(additions))
	used := make([]bool, len(additions))

	// Greedy pairing in deletion order; not a global minimum-cost matching.
	for _, del := range deletions {
		best := -1
		bestDist := math.MaxInt
		for a, add := range additions {
			if used[a] {
				continue
			}
			dist := abs(del.index - add.index)
			if dist < bestDist && dist <= maxPairingDistance {
				bestDist = dist
				best = a
			}
		}
		if best >= 0 {
			used[best] = true
			errors = append(errors, Mismatch{
				WordIndex:    del.index,
				ExpectedWord: del.raw,
				ActualWord:   additions[best].raw,
				Kind:         models.KindSubstitution,
			})
			continue
		}
		errors = append(errors, Mismatch{
			WordIndex:    del.index,
			ExpectedWord: del.raw,
			Kind:         models.KindDeletion,
		})
	}

	for a, add := range additions {
		if used[a] {
			continue
		}
		errors = append(errors, Mismatch{
			WordIndex:  add.index,
			ActualWord: add.raw,
			Kind:       models.KindAddition,
		})
	}

	total := len(origWords)
	if total == 0 {
		return Result{Score: 100, Errors: errors, TotalWords: 0, CorrectWords: 0}
	}

	wrong := 0
	for _, e := range errors {
		if e.Kind != models.KindAddition {
			wrong++
		}
	}
	correct := max(total-wrong, 0)
	score := int(math.Round(float64(correct) / float64(total) * 100))

	return Result{
		Score:        max(score, 0),
		Errors:       errors,
		TotalWords:   total,
		CorrectWords: correct,
	}
}

// fuzzyLCS returns the longest common subsequence of a and b under
// arabic.WordsMatch, as words taken from a.
func fuzzyLCS(a, b []string) []string {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if arabic.WordsMatch(a[i-1], b[j-1]) {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	result := make([]string, dp[m][n])
	k := len(result)
	i, j := m, n
	for i > 0 && j > 0 {
		switch {
		case arabic.WordsMatch(a[i-1], b[j-1]):
			k--
			result[k] = a[i-1]
			i--
			j--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}

	return result[k:]
}

func tokenAt(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

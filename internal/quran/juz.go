// Package quran holds fixed reference data about the mushaf layout.
package quran

import (
	"sort"

	"hifztrack/internal/models"
)

// JuzCount is the number of sections (ajza) in the Quran
const JuzCount = 30

// JuzBoundary is the first and last verse of a juz
type JuzBoundary struct {
	Juz   int
	Start models.AyahKey
	End   models.AyahKey
}

var juzBoundaries = []JuzBoundary{
	{Juz: 1, Start: models.AyahKey{Surah: 1, Verse: 1}, End: models.AyahKey{Surah: 2, Verse: 141}},
	{Juz: 2, Start: models.AyahKey{Surah: 2, Verse: 142}, End: models.AyahKey{Surah: 2, Verse: 252}},
	{Juz: 3, Start: models.AyahKey{Surah: 2, Verse: 253}, End: models.AyahKey{Surah: 3, Verse: 92}},
	{Juz: 4, Start: models.AyahKey{Surah: 3, Verse: 93}, End: models.AyahKey{Surah: 4, Verse: 23}},
	{Juz: 5, Start: models.AyahKey{Surah: 4, Verse: 24}, End: models.AyahKey{Surah: 4, Verse: 147}},
	{Juz: 6, Start: models.AyahKey{Surah: 4, Verse: 148}, End: models.AyahKey{Surah: 5, Verse: 81}},
	{Juz: 7, Start: models.AyahKey{Surah: 5, Verse: 82}, End: models.AyahKey{Surah: 6, Verse: 110}},
	{Juz: 8, Start: models.AyahKey{Surah: 6, Verse: 111}, End: models.AyahKey{Surah: 7, Verse: 87}},
	{Juz: 9, Start: models.AyahKey{Surah: 7, Verse: 88}, End: models.AyahKey{Surah: 8, Verse: 40}},
	{Juz: 10, Start: models.AyahKey{Surah: 8, Verse: 41}, End: models.AyahKey{Surah: 9, Verse: 92}},
	{Juz: 11, Start: models.AyahKey{Surah: 9, Verse: 93}, End: models.AyahKey{Surah: 11, Verse: 5}},
	{Juz: 12, Start: models.AyahKey{Surah: 11, Verse: 6}, End: models.AyahKey{Surah: 12, Verse: 52}},
	{Juz: 13, Start: models.AyahKey{Surah: 12, Verse: 53}, End: models.AyahKey{Surah: 14, Verse: 52}},
	{Juz: 14, Start: models.AyahKey{Surah: 15, Verse: 1}, End: models.AyahKey{Surah: 16, Verse: 128}},
	{Juz: 15, Start: models.AyahKey{Surah: 17, Verse: 1}, End: models.AyahKey{Surah: 18, Verse: 74}},
	{Juz: 16, Start: models.AyahKey{Surah: 18, Verse: 75}, End: models.AyahKey{Surah: 20, Verse: 135}},
	{Juz: 17, Start: models.AyahKey{Surah: 21, Verse: 1}, End: models.AyahKey{Surah: 22, Verse: 78}},
	{Juz: 18, Start: models.AyahKey{Surah: 23, Verse: 1}, End: models.AyahKey{Surah: 25, Verse: 20}},
	{Juz: 19, Start: models.AyahKey{Surah: 25, Verse: 21}, End: models.AyahKey{Surah: 27, Verse: 55}},
	{Juz: 20, Start: models.AyahKey{Surah: 27, Verse: 56}, End: models.AyahKey{Surah: 29, Verse: 45}},
	{Juz: 21, Start: models.AyahKey{Surah: 29, Verse: 46}, End: models.AyahKey{Surah: 33, Verse: 30}},
	{Juz: 22, Start: models.AyahKey{Surah: 33, Verse: 31}, End: models.AyahKey{Surah: 36, Verse: 27}},
	{Juz: 23, Start: models.AyahKey{Surah: 36, Verse: 28}, End: models.AyahKey{Surah: 39, Verse: 31}},
	{Juz: 24, Start: models.AyahKey{Surah: 39, Verse: 32}, End: models.AyahKey{Surah: 41, Verse: 46}},
	{Juz: 25, Start: models.AyahKey{Surah: 41, Verse: 47}, End: models.AyahKey{Surah: 45, Verse: 37}},
	{Juz: 26, Start: models.AyahKey{Surah: 46, Verse: 1}, End: models.AyahKey{Surah: 51, Verse: 30}},
	{Juz: 27, Start: models.AyahKey{Surah: 51, Verse: 31}, End: models.AyahKey{Surah: 57, Verse: 29}},
	{Juz: 28, Start: models.AyahKey{Surah: 58, Verse: 1}, End: models.AyahKey{Surah: 66, Verse: 12}},
	{Juz: 29, Start: models.AyahKey{Surah: 67, Verse: 1}, End: models.AyahKey{Surah: 77, Verse: 50}},
	{Juz: 30, Start: models.AyahKey{Surah: 78, Verse: 1}, End: models.AyahKey{Surah: 114, Verse: 6}},
}

// Boundaries returns the boundaries of all 30 ajza in order
func Boundaries() []JuzBoundary {
	out := make([]JuzBoundary, len(juzBoundaries))
	copy(out, juzBoundaries)
	return out
}

// Contains reports whether the verse lies within the juz
func (b JuzBoundary) Contains(k models.AyahKey) bool {
	afterStart := k.Surah > b.Start.Surah || (k.Surah == b.Start.Surah && k.Verse >= b.Start.Verse)
	beforeEnd := k.Surah < b.End.Surah || (k.Surah == b.End.Surah && k.Verse <= b.End.Verse)
	return afterStart && beforeEnd
}

// JuzForAyah returns the juz containing the verse, or 1 for an unknown verse
func JuzForAyah(surah, verse int) int {
	k := models.AyahKey{Surah: surah, Verse: verse}
	for _, b := range juzBoundaries {
		if b.Contains(k) {
			return b.Juz
		}
	}
	return 1
}

// SectionsFor returns the distinct ajza touched by the verses, ascending
func SectionsFor(verses []models.AyahKey) []int {
	seen := make(map[int]bool)
	for _, v := range verses {
		seen[JuzForAyah(v.Surah, v.Verse)] = true
	}
	sections := make([]int, 0, len(seen))
	for juz := range seen {
		sections = append(sections, juz)
	}
	sort.Ints(sections)
	return sections
}

// Package arabic normalizes Quranic Arabic text into comparable word tokens.
package arabic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	alef            = '\u0627'
	superscriptAlef = '\u0670'
)

// invisibleMarks covers the byte-order mark and bidirectional/zero-width controls.
var invisibleMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200B, Hi: 0x200F, Stride: 1},
		{Lo: 0x202A, Hi: 0x202E, Stride: 1},
		{Lo: 0x2066, Hi: 0x2069, Stride: 1},
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1},
	},
}

// tashkeel covers harakat, Quranic annotation marks and tatweel (U+0640).
var tashkeel = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0610, Hi: 0x061A, Stride: 1},
		{Lo: 0x0640, Hi: 0x0640, Stride: 1},
		{Lo: 0x064B, Hi: 0x065F, Stride: 1},
		{Lo: 0x06D6, Hi: 0x06DC, Stride: 1},
		{Lo: 0x06DF, Hi: 0x06E4, Stride: 1},
		{Lo: 0x06E7, Hi: 0x06E8, Stride: 1},
		{Lo: 0x06EA, Hi: 0x06ED, Stride: 1},
	},
}

func replaceSuperscriptAlef(r rune) rune {
	if r == superscriptAlef {
		return alef
	}
	return r
}

func normalizeLetter(r rune) rune {
	switch r {
	case '\u0671', '\u0623', '\u0625', '\u0622': // ٱ أ إ آ
		return alef
	case '\u0649': // ى
		return '\u064A'
	case '\u0629': // ة
		return '\u0647'
	case '\u0624': // ؤ
		return '\u0648'
	case '\u0626': // ئ
		return '\u064A'
	}
	return r
}

// CleanText removes the BOM and invisible control characters.
func CleanText(text string) string {
	out, _, err := transform.String(runes.Remove(runes.In(invisibleMarks)), text)
	if err != nil {
		return text
	}
	return out
}

// Normalize prepares text for comparison: invisible marks, diacritics and
// tatweel are removed and letter variants are folded to a single form.
func Normalize(text string) string {
	// Chains carry state, so one is built per call.
	t := transform.Chain(
		runes.Remove(runes.In(invisibleMarks)),
		runes.Map(replaceSuperscriptAlef),
		runes.Remove(runes.In(tashkeel)),
		runes.Map(normalizeLetter),
	)
	out, _, err := transform.String(t, text)
	if err != nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(out)
}

// SplitWords splits text on runs of whitespace.
func SplitWords(text string) []string {
	return strings.Fields(text)
}

// StripInternalAlefs drops alefs between the first and last letter, absorbing
// rasm spelling variance. Words of two letters or fewer are returned as is.
func StripInternalAlefs(word string) string {
	rs := []rune(word)
	if len(rs) <= 2 {
		return word
	}
	var b strings.Builder
	b.Grow(len(word))
	b.WriteRune(rs[0])
	for _, r := range rs[1 : len(rs)-1] {
		if r != alef {
			b.WriteRune(r)
		}
	}
	b.WriteRune(rs[len(rs)-1])
	return b.String()
}

// WordsMatch reports whether two normalized words are equal outright or
// equal once internal alefs are stripped.
func WordsMatch(a, b string) bool {
	if a == b {
		return true
	}
	return StripInternalAlefs(a) == StripInternalAlefs(b)
}

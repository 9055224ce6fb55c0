package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AyahKey identifies a verse by surah and verse-in-surah number
type AyahKey struct {
	Surah int
	Verse int
}

// String formats the key as "surah:verse"
func (k AyahKey) String() string {
	return fmt.Sprintf("%d:%d", k.Surah, k.Verse)
}

// MarshalText keeps persisted maps keyed as "surah:verse"
func (k AyahKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a "surah:verse" key
func (k *AyahKey) UnmarshalText(text []byte) error {
	parsed, err := ParseAyahKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseAyahKey parses "surah:verse" into an AyahKey
func ParseAyahKey(s string) (AyahKey, error) {
	surahStr, verseStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return AyahKey{}, fmt.Errorf("invalid ayah key %q", s)
	}
	surah, err := strconv.Atoi(surahStr)
	if err != nil {
		return AyahKey{}, fmt.Errorf("invalid surah in ayah key %q: %w", s, err)
	}
	verse, err := strconv.Atoi(verseStr)
	if err != nil {
		return AyahKey{}, fmt.Errorf("invalid verse in ayah key %q: %w", s, err)
	}
	return AyahKey{Surah: surah, Verse: verse}, nil
}

// VerseText is canonical verse text supplied by the verse data store
type VerseText struct {
	SurahNumber        int    `json:"surah_number"`
	VerseNumberInSurah int    `json:"verse_number"`
	Text               string `json:"text"`
}

// Key returns the verse's AyahKey
func (v VerseText) Key() AyahKey {
	return AyahKey{Surah: v.SurahNumber, Verse: v.VerseNumberInSurah}
}

package models

import "time"

// ErrorKind classifies a recitation discrepancy
type ErrorKind string

const (
	KindSubstitution ErrorKind = "substitution"
	KindDeletion     ErrorKind = "deletion"
	KindAddition     ErrorKind = "addition"
)

// ErrorLogEntry is one persisted recitation mistake. Entries are append-only.
type ErrorLogEntry struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	Timestamp    time.Time `json:"timestamp"`
	SurahNumber  int       `json:"surah_number"`
	VerseNumber  int       `json:"verse_number"`
	WordIndex    int       `json:"word_index"`
	ExpectedWord string    `json:"expected_word"`
	ActualWord   string    `json:"actual_word"`
	Kind         ErrorKind `json:"kind"`
}

// Key returns the verse the entry belongs to
func (e ErrorLogEntry) Key() AyahKey {
	return AyahKey{Surah: e.SurahNumber, Verse: e.VerseNumber}
}

// AyahErrorSummary aggregates the error log for one verse
type AyahErrorSummary struct {
	SurahNumber        int         `json:"surah_number"`
	VerseNumber        int         `json:"verse_number"`
	TotalErrorCount    int         `json:"total_error_count"`
	LastErrorTimestamp time.Time   `json:"last_error_timestamp"`
	PerWordErrorCounts map[int]int `json:"per_word_error_counts"`
}

// Key returns the summarized verse
func (s AyahErrorSummary) Key() AyahKey {
	return AyahKey{Surah: s.SurahNumber, Verse: s.VerseNumber}
}

// WordErrorStatus is the colour-coded status of a word or verse
type WordErrorStatus string

const (
	StatusNone      WordErrorStatus = "none"
	StatusSingle    WordErrorStatus = "single"
	StatusRepeated  WordErrorStatus = "repeated"
	StatusCorrected WordErrorStatus = "corrected"
)

// Color returns the mushaf highlight colour for the status
func (s WordErrorStatus) Color() string {
	switch s {
	case StatusRepeated:
		return "red"
	case StatusSingle:
		return "yellow"
	case StatusCorrected:
		return "orange"
	default:
		return "none"
	}
}

// ErrorTrendWeek is the error count of one calendar week
type ErrorTrendWeek struct {
	WeekLabel  string `json:"week_label"`
	ErrorCount int    `json:"error_count"`
	StartDate  string `json:"start_date"`
}

// ErrorTypeBreakdown counts logged errors per kind
type ErrorTypeBreakdown struct {
	Substitution int `json:"substitution"`
	Deletion     int `json:"deletion"`
	Addition     int `json:"addition"`
}

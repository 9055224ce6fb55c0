package models

import "time"

// DateLayout is the calendar-date format used for review dates
const DateLayout = "2006-01-02"

// MasteryLevel is the retention state of a verse
type MasteryLevel string

const (
	LevelNew        MasteryLevel = "new"
	LevelPracticing MasteryLevel = "practicing"
	LevelMastered   MasteryLevel = "mastered"
)

// Rank orders levels for prioritisation: new first, mastered last
func (l MasteryLevel) Rank() int {
	switch l {
	case LevelNew:
		return 0
	case LevelPracticing:
		return 1
	default:
		return 2
	}
}

// DrillResult records one drill attempt on a verse
type DrillResult struct {
	Timestamp  time.Time `json:"timestamp"`
	Score      int       `json:"score"`
	ErrorCount int       `json:"error_count"`
}

// AyahMastery tracks drill history and scheduling for one verse.
// Level is always derived from DrillAttempts and LastDrillScore.
type AyahMastery struct {
	SurahNumber        int           `json:"surah_number"`
	VerseNumber        int           `json:"verse_number"`
	Level              MasteryLevel  `json:"level"`
	TotalErrors        int           `json:"total_errors"`
	DrillAttempts      int           `json:"drill_attempts"`
	LastDrillTimestamp *time.Time    `json:"last_drill_timestamp,omitempty"`
	LastDrillScore     *int          `json:"last_drill_score,omitempty"`
	NextReviewDate     string        `json:"next_review_date,omitempty"`
	History            []DrillResult `json:"history"`
}

// Key returns the verse the record tracks
func (m AyahMastery) Key() AyahKey {
	return AyahKey{Surah: m.SurahNumber, Verse: m.VerseNumber}
}

// MasteryData is the persisted mastery collection
type MasteryData struct {
	Ayahs map[AyahKey]*AyahMastery `json:"ayahs"`
}

// MasteryStats counts tracked verses per level
type MasteryStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	Practicing int `json:"practicing"`
	Mastered   int `json:"mastered"`
}

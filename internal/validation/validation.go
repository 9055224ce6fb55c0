package validation

import (
	"fmt"
	"regexp"
	"strings"

	"hifztrack/internal/arabic"
	"hifztrack/internal/quran"
)

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateAyah checks that a surah and verse number address a real verse
func ValidateAyah(surah, verse int) error {
	if surah < 1 || surah > quran.SurahCount {
		return ValidationError{Field: "surah", Message: fmt.Sprintf("must be between 1 and %d", quran.SurahCount)}
	}
	if count := quran.VerseCount(surah); verse < 1 || verse > count {
		return ValidationError{Field: "verse", Message: fmt.Sprintf("surah %d has verses 1 to %d", surah, count)}
	}
	return nil
}

// ValidateScore checks a percentage score
func ValidateScore(score int) error {
	if score < 0 || score > 100 {
		return ValidationError{Field: "score", Message: "must be between 0 and 100"}
	}
	return nil
}

// ValidateSection checks a juz number
func ValidateSection(section int) error {
	if section < 1 || section > quran.JuzCount {
		return ValidationError{Field: "section", Message: fmt.Sprintf("must be between 1 and %d", quran.JuzCount)}
	}
	return nil
}

// ValidateTimeOfDay checks an HH:MM 24-hour time
func ValidateTimeOfDay(field, value string) error {
	if !timeOfDayRegex.MatchString(strings.TrimSpace(value)) {
		return ValidationError{Field: field, Message: "must be a 24-hour HH:MM time"}
	}
	return nil
}

// ValidateVerseText checks that text has at least one word once invisible marks are removed
func ValidateVerseText(field, text string) error {
	if len(arabic.SplitWords(arabic.CleanText(text))) == 0 {
		return ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"hifztrack/internal/models"
	"hifztrack/internal/recitation"
	"hifztrack/internal/repository"
)

// DefaultWeakThreshold is the error count from which a verse counts as weak
const DefaultWeakThreshold = 3

// trendWeeks is how many weekly buckets Trends reports
const trendWeeks = 8

// ErrorService records recitation mistakes and derives per-verse and per-word views
type ErrorService struct {
	repo *repository.ErrorLogRepository
	now  func() time.Time
}

// NewErrorService creates a new error service
func NewErrorService(repo *repository.ErrorLogRepository) *ErrorService {
	return &ErrorService{repo: repo, now: time.Now}
}

// SetClock replaces the time source
func (s *ErrorService) SetClock(now func() time.Time) {
	s.now = now
}

// NewSessionID returns an identifier grouping the errors of one test session
func NewSessionID() string {
	return uuid.NewString()
}

// RecordComparison logs every mismatch of a comparison against the given verse
func (s *ErrorService) RecordComparison(sessionID string, surah, verse int, result recitation.Result) ([]models.ErrorLogEntry, error) {
	timestamp := s.now().UTC()
	entries := make([]models.ErrorLogEntry, 0, len(result.Errors))
	for _, m := range result.Errors {
		entries = append(entries, models.ErrorLogEntry{
			ID:           uuid.NewString(),
			SessionID:    sessionID,
			Timestamp:    timestamp,
			SurahNumber:  surah,
			VerseNumber:  verse,
			WordIndex:    m.WordIndex,
			ExpectedWord: m.ExpectedWord,
			ActualWord:   m.ActualWord,
			Kind:         m.Kind,
		})
	}

	if err := s.repo.Append(entries); err != nil {
		return nil, fmt.Errorf("failed to record comparison errors: %w", err)
	}
	return entries, nil
}

// Append adds entries to the log as given
func (s *ErrorService) Append(entries []models.ErrorLogEntry) error {
	return s.repo.Append(entries)
}

// Clear empties the error log
func (s *ErrorService) Clear() error {
	return s.repo.Clear()
}

// Entries returns the full error log
func (s *ErrorService) Entries() ([]models.ErrorLogEntry, error) {
	return s.repo.All()
}

// Summaries aggregates the log per verse, most errors first
func (s *ErrorService) Summaries() ([]models.AyahErrorSummary, error) {
	entries, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	return summarize(entries), nil
}

// WeakVerses returns the summaries with at least minErrors errors
func (s *ErrorService) WeakVerses(minErrors int) ([]models.AyahErrorSummary, error) {
	summaries, err := s.Summaries()
	if err != nil {
		return nil, err
	}
	weak := make([]models.AyahErrorSummary, 0, len(summaries))
	for _, summary := range summaries {
		if summary.TotalErrorCount >= minErrors {
			weak = append(weak, summary)
		}
	}
	return weak, nil
}

// WeakWordIndices lists the word indices of a verse by error count, highest first
func (s *ErrorService) WeakWordIndices(surah, verse int) ([]int, error) {
	summaries, err := s.Summaries()
	if err != nil {
		return nil, err
	}
	key := models.AyahKey{Surah: surah, Verse: verse}
	for _, summary := range summaries {
		if summary.Key() != key {
			continue
		}
		return sortedWordIndices(summary.PerWordErrorCounts), nil
	}
	return []int{}, nil
}

// sortedWordIndices orders word indices by error count, highest first
func sortedWordIndices(counts map[int]int) []int {
	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool {
		ci, cj := counts[indices[i]], counts[indices[j]]
		if ci != cj {
			return ci > cj
		}
		return indices[i] < indices[j]
	})
	return indices
}

// WordStatuses classifies every word of a verse that has at least one error
func (s *ErrorService) WordStatuses(surah, verse int) (map[int]models.WordErrorStatus, error) {
	entries, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	key := models.AyahKey{Surah: surah, Verse: verse}
	verseEntries := make([]models.ErrorLogEntry, 0)
	for _, e := range entries {
		if e.Key() == key {
			verseEntries = append(verseEntries, e)
		}
	}
	return wordStatuses(verseEntries), nil
}

// VerseStatus rolls the word statuses of a verse up into one status
func (s *ErrorService) VerseStatus(surah, verse int) (models.WordErrorStatus, error) {
	statuses, err := s.WordStatuses(surah, verse)
	if err != nil {
		return models.StatusNone, err
	}
	return verseStatus(statuses), nil
}

// AllVerseStatuses computes the verse status of every verse in the log in one pass
func (s *ErrorService) AllVerseStatuses() (map[models.AyahKey]models.WordErrorStatus, error) {
	entries, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	byVerse := make(map[models.AyahKey][]models.ErrorLogEntry)
	for _, e := range entries {
		byVerse[e.Key()] = append(byVerse[e.Key()], e)
	}
	result := make(map[models.AyahKey]models.WordErrorStatus, len(byVerse))
	for key, verseEntries := range byVerse {
		result[key] = verseStatus(wordStatuses(verseEntries))
	}
	return result, nil
}

// Trends counts errors per week over the last eight weeks, oldest first
func (s *ErrorService) Trends() ([]models.ErrorTrendWeek, error) {
	entries, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	return weeklyTrends(entries, s.now().UTC()), nil
}

// TypeBreakdown counts logged errors per kind
func (s *ErrorService) TypeBreakdown() (models.ErrorTypeBreakdown, error) {
	entries, err := s.repo.All()
	if err != nil {
		return models.ErrorTypeBreakdown{}, err
	}
	var breakdown models.ErrorTypeBreakdown
	for _, e := range entries {
		switch e.Kind {
		case models.KindSubstitution:
			breakdown.Substitution++
		case models.KindDeletion:
			breakdown.Deletion++
		case models.KindAddition:
			breakdown.Addition++
		}
	}
	return breakdown, nil
}

// summarize groups entries per verse. Verses with equal counts keep the
// order in which they first appear in the log.
func summarize(entries []models.ErrorLogEntry) []models.AyahErrorSummary {
	index := make(map[models.AyahKey]int)
	summaries := make([]models.AyahErrorSummary, 0)

	for _, e := range entries {
		i, ok := index[e.Key()]
		if !ok {
			index[e.Key()] = len(summaries)
			summaries = append(summaries, models.AyahErrorSummary{
				SurahNumber:        e.SurahNumber,
				VerseNumber:        e.VerseNumber,
				TotalErrorCount:    1,
				LastErrorTimestamp: e.Timestamp,
				PerWordErrorCounts: map[int]int{e.WordIndex: 1},
			})
			continue
		}
		summary := &summaries[i]
		summary.TotalErrorCount++
		if e.Timestamp.After(summary.LastErrorTimestamp) {
			summary.LastErrorTimestamp = e.Timestamp
		}
		summary.PerWordErrorCounts[e.WordIndex]++
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalErrorCount > summaries[j].TotalErrorCount
	})
	return summaries
}

// wordStatuses classifies the words of one verse from that verse's entries.
// A repeated word whose latest error predates the verse's latest error is
// reported as corrected. This only approximates "fixed": it never checks
// that the word itself was later recited correctly.
func wordStatuses(verseEntries []models.ErrorLogEntry) map[int]models.WordErrorStatus {
	result := make(map[int]models.WordErrorStatus)
	if len(verseEntries) == 0 {
		return result
	}

	type wordHistory struct {
		count  int
		latest time.Time
	}
	words := make(map[int]*wordHistory)
	var latestOverall time.Time
	for _, e := range verseEntries {
		if e.Timestamp.After(latestOverall) {
			latestOverall = e.Timestamp
		}
		h, ok := words[e.WordIndex]
		if !ok {
			words[e.WordIndex] = &wordHistory{count: 1, latest: e.Timestamp}
			continue
		}
		h.count++
		if e.Timestamp.After(h.latest) {
			h.latest = e.Timestamp
		}
	}

	for idx, h := range words {
		switch {
		case h.count == 1:
			result[idx] = models.StatusSingle
		case h.latest.Before(latestOverall):
			result[idx] = models.StatusCorrected
		default:
			result[idx] = models.StatusRepeated
		}
	}
	return result
}

// verseStatus picks the most severe word status: repeated, then single, then corrected
func verseStatus(statuses map[int]models.WordErrorStatus) models.WordErrorStatus {
	if len(statuses) == 0 {
		return models.StatusNone
	}
	hasSingle := false
	for _, status := range statuses {
		if status == models.StatusRepeated {
			return models.StatusRepeated
		}
		if status == models.StatusSingle {
			hasSingle = true
		}
	}
	if hasSingle {
		return models.StatusSingle
	}
	return models.StatusCorrected
}

// weeklyTrends buckets entries into eight inclusive date windows of seven
// days each, the last one ending today
func weeklyTrends(entries []models.ErrorLogEntry, now time.Time) []models.ErrorTrendWeek {
	weeks := make([]models.ErrorTrendWeek, 0, trendWeeks)
	for i := trendWeeks - 1; i >= 0; i-- {
		weekStart := now.AddDate(0, 0, -(i*7 + 6))
		weekEnd := now.AddDate(0, 0, -i*7)
		startStr := weekStart.Format(models.DateLayout)
		endStr := weekEnd.Format(models.DateLayout)

		count := 0
		for _, e := range entries {
			d := e.Timestamp.UTC().Format(models.DateLayout)
			if d >= startStr && d <= endStr {
				count++
			}
		}

		weeks = append(weeks, models.ErrorTrendWeek{
			WeekLabel:  fmt.Sprintf("%d/%d", weekStart.Day(), int(weekStart.Month())),
			ErrorCount: count,
			StartDate:  startStr,
		})
	}
	return weeks
}

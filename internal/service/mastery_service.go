package service

import (
	"fmt"
	"sort"
	"time"

	"hifztrack/internal/models"
	"hifztrack/internal/repository"
)

const (
	masteredScore   = 90
	practicingScore = 70
	maxStrongDays   = 30
	maxPartialDays  = 14
)

// DrillOutcome reports the level change caused by one drill
type DrillOutcome struct {
	Previous models.MasteryLevel `json:"previous_level"`
	New      models.MasteryLevel `json:"new_level"`
}

// MasteryService tracks per-verse mastery, using the error log as the
// source of truth for error counts
type MasteryService struct {
	repo   *repository.MasteryRepository
	errors *ErrorService
	now    func() time.Time
}

// NewMasteryService creates a new mastery service
func NewMasteryService(repo *repository.MasteryRepository, errors *ErrorService) *MasteryService {
	return &MasteryService{repo: repo, errors: errors, now: time.Now}
}

// SetClock replaces the time source
func (s *MasteryService) SetClock(now func() time.Time) {
	s.now = now
}

// DetermineLevel derives a mastery level from drill history. Only the
// latest score counts.
func DetermineLevel(drillAttempts int, lastDrillScore *int) models.MasteryLevel {
	if drillAttempts > 0 && lastDrillScore != nil && *lastDrillScore >= masteredScore {
		return models.LevelMastered
	}
	if drillAttempts > 0 {
		return models.LevelPracticing
	}
	return models.LevelNew
}

// NextReviewInterval returns the number of days until the next review, in [1, 30]
func NextReviewInterval(attempts int, score *int) int {
	s := 0
	if score != nil {
		s = *score
	}
	attempts = max(attempts, 0)

	switch {
	case s >= masteredScore:
		return powCapped(attempts, maxStrongDays)
	case s >= practicingScore:
		return powCapped(max(0, attempts-1), maxPartialDays)
	default:
		return 1
	}
}

// powCapped returns min(2^exp, limit) without overflowing for large exponents
func powCapped(exp, limit int) int {
	v := 1
	for i := 0; i < exp; i++ {
		v *= 2
		if v >= limit {
			return limit
		}
	}
	return min(v, limit)
}

func nextReviewDate(m *models.AyahMastery, now time.Time) string {
	days := NextReviewInterval(m.DrillAttempts, m.LastDrillScore)
	return now.UTC().AddDate(0, 0, days).Format(models.DateLayout)
}

// Sync creates or refreshes a record for every verse in the error log and persists it
func (s *MasteryService) Sync() (*models.MasteryData, error) {
	data, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load mastery data: %w", err)
	}
	summaries, err := s.errors.Summaries()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize error log: %w", err)
	}

	for _, summary := range summaries {
		key := summary.Key()
		existing, ok := data.Ayahs[key]
		if !ok {
			data.Ayahs[key] = &models.AyahMastery{
				SurahNumber: summary.SurahNumber,
				VerseNumber: summary.VerseNumber,
				Level:       models.LevelNew,
				TotalErrors: summary.TotalErrorCount,
				History:     []models.DrillResult{},
			}
			continue
		}
		existing.TotalErrors = summary.TotalErrorCount
		existing.Level = DetermineLevel(existing.DrillAttempts, existing.LastDrillScore)
	}

	if err := s.repo.Save(data); err != nil {
		return nil, fmt.Errorf("failed to save mastery data: %w", err)
	}
	return data, nil
}

// RecordDrill stores a drill result for a verse and reschedules its next review
func (s *MasteryService) RecordDrill(surah, verse, score, errorCount int) (DrillOutcome, error) {
	data, err := s.repo.Load()
	if err != nil {
		return DrillOutcome{}, fmt.Errorf("failed to load mastery data: %w", err)
	}

	now := s.now().UTC()
	result := models.DrillResult{Timestamp: now, Score: score, ErrorCount: errorCount}
	key := models.AyahKey{Surah: surah, Verse: verse}
	outcome := DrillOutcome{Previous: models.LevelNew}

	record, ok := data.Ayahs[key]
	if ok {
		outcome.Previous = record.Level
		record.DrillAttempts++
	} else {
		record = &models.AyahMastery{
			SurahNumber:   surah,
			VerseNumber:   verse,
			TotalErrors:   errorCount,
			DrillAttempts: 1,
		}
		data.Ayahs[key] = record
	}

	lastScore := score
	record.LastDrillScore = &lastScore
	record.LastDrillTimestamp = &now
	record.History = append(record.History, result)
	record.Level = DetermineLevel(record.DrillAttempts, record.LastDrillScore)
	record.NextReviewDate = nextReviewDate(record, now)
	outcome.New = record.Level

	if err := s.repo.Save(data); err != nil {
		return DrillOutcome{}, fmt.Errorf("failed to save mastery data: %w", err)
	}
	return outcome, nil
}

// DueForReview returns the verses needing review today, most urgent first
func (s *MasteryService) DueForReview() ([]models.AyahMastery, error) {
	data, err := s.Sync()
	if err != nil {
		return nil, err
	}
	today := s.now().UTC().Format(models.DateLayout)

	due := make([]models.AyahMastery, 0, len(data.Ayahs))
	for _, m := range data.Ayahs {
		if m.Level != models.LevelMastered || (m.NextReviewDate != "" && m.NextReviewDate <= today) {
			due = append(due, *m)
		}
	}
	sortByPriority(due)
	return due, nil
}

// WeakestForDrill returns up to n verses that are not yet mastered, most urgent first
func (s *MasteryService) WeakestForDrill(n int) ([]models.AyahMastery, error) {
	data, err := s.Sync()
	if err != nil {
		return nil, err
	}

	weakest := make([]models.AyahMastery, 0, len(data.Ayahs))
	for _, m := range data.Ayahs {
		if m.Level != models.LevelMastered {
			weakest = append(weakest, *m)
		}
	}
	sortByPriority(weakest)
	if n >= 0 && len(weakest) > n {
		weakest = weakest[:n]
	}
	return weakest, nil
}

// Stats counts tracked verses per level
func (s *MasteryService) Stats() (models.MasteryStats, error) {
	data, err := s.Sync()
	if err != nil {
		return models.MasteryStats{}, err
	}

	stats := models.MasteryStats{Total: len(data.Ayahs)}
	for _, m := range data.Ayahs {
		switch m.Level {
		case models.LevelNew:
			stats.New++
		case models.LevelPracticing:
			stats.Practicing++
		case models.LevelMastered:
			stats.Mastered++
		}
	}
	return stats, nil
}

// Level returns the mastery level of a verse, false when it is not tracked
func (s *MasteryService) Level(surah, verse int) (models.MasteryLevel, bool, error) {
	data, err := s.Sync()
	if err != nil {
		return "", false, err
	}
	m, ok := data.Ayahs[models.AyahKey{Surah: surah, Verse: verse}]
	if !ok {
		return "", false, nil
	}
	return m.Level, true, nil
}

// Records returns every tracked verse in priority order
func (s *MasteryService) Records() ([]models.AyahMastery, error) {
	data, err := s.Sync()
	if err != nil {
		return nil, err
	}
	records := make([]models.AyahMastery, 0, len(data.Ayahs))
	for _, m := range data.Ayahs {
		records = append(records, *m)
	}
	sortByPriority(records)
	return records, nil
}

// sortByPriority orders new before practicing before mastered, then by
// error count descending. Verse order breaks the remaining ties so map
// iteration never shows through.
func sortByPriority(records []models.AyahMastery) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Level.Rank() != b.Level.Rank() {
			return a.Level.Rank() < b.Level.Rank()
		}
		if a.TotalErrors != b.TotalErrors {
			return a.TotalErrors > b.TotalErrors
		}
		if a.SurahNumber != b.SurahNumber {
			return a.SurahNumber < b.SurahNumber
		}
		return a.VerseNumber < b.VerseNumber
	})
}

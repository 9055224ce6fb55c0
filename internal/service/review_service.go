package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"hifztrack/internal/models"
	"hifztrack/internal/quran"
	"hifztrack/internal/repository"
)

const (
	neverReviewedDays = 999
	neutralScore      = 50
)

// ReviewService picks which completed section to review next
type ReviewService struct {
	repo *repository.FarReviewRepository
	now  func() time.Time
}

// NewReviewService creates a new review service
func NewReviewService(repo *repository.FarReviewRepository) *ReviewService {
	return &ReviewService{repo: repo, now: time.Now}
}

// SetClock replaces the time source
func (s *ReviewService) SetClock(now func() time.Time) {
	s.now = now
}

// SelectSection returns the completed section with the highest review
// priority. Sections are visited in ascending order and the first one wins
// on equal priority. It returns false when nothing is completed.
func SelectSection(completed []int, log []models.FarReviewEntry, now time.Time) (int, bool) {
	sections := distinctSorted(completed)
	if len(sections) == 0 {
		return 0, false
	}

	bySection := make(map[int]models.FarReviewEntry, len(log))
	for _, e := range log {
		bySection[e.Section] = e
	}

	best, bestPriority := 0, math.MinInt
	for _, section := range sections {
		p := sectionPriority(bySection, section, now)
		if p > bestPriority {
			best, bestPriority = section, p
		}
	}
	return best, true
}

func sectionPriority(log map[int]models.FarReviewEntry, section int, now time.Time) int {
	days, avg := neverReviewedDays, neutralScore
	if e, ok := log[section]; ok {
		days = int(now.Sub(e.LastReviewed).Hours() / 24)
		avg = e.RunningAverageScore
	}
	return days*2 + (100 - avg)
}

func distinctSorted(values []int) []int {
	seen := make(map[int]bool, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// NextFarReview picks the next section to review among the completed ones
func (s *ReviewService) NextFarReview(completed []int) (int, bool, error) {
	log, err := s.repo.All()
	if err != nil {
		return 0, false, fmt.Errorf("failed to load review log: %w", err)
	}
	section, ok := SelectSection(completed, log, s.now().UTC())
	return section, ok, nil
}

// LogFarReview records a review of a section and folds the score into its running average
func (s *ReviewService) LogFarReview(section, score int) (models.FarReviewEntry, error) {
	log, err := s.repo.All()
	if err != nil {
		return models.FarReviewEntry{}, fmt.Errorf("failed to load review log: %w", err)
	}

	now := s.now().UTC()
	idx := -1
	for i := range log {
		if log[i].Section == section {
			idx = i
			break
		}
	}

	if idx >= 0 {
		log[idx].LastReviewed = now
		log[idx].RunningAverageScore = int(math.Round(float64(log[idx].RunningAverageScore+score) / 2))
	} else {
		log = append(log, models.FarReviewEntry{Section: section, LastReviewed: now, RunningAverageScore: score})
		idx = len(log) - 1
	}

	if err := s.repo.SaveAll(log); err != nil {
		return models.FarReviewEntry{}, fmt.Errorf("failed to save review log: %w", err)
	}
	return log[idx], nil
}

// Log returns the stored review log
func (s *ReviewService) Log() ([]models.FarReviewEntry, error) {
	return s.repo.All()
}

// CompletedSections maps completed verses to the sections that contain them
func CompletedSections(verses []models.AyahKey) []int {
	return quran.SectionsFor(verses)
}

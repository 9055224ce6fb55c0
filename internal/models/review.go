package models

import "time"

// FarReviewEntry is the review record of one section (juz)
type FarReviewEntry struct {
	Section             int       `json:"section"`
	LastReviewed        time.Time `json:"last_reviewed"`
	RunningAverageScore int       `json:"running_average_score"`
}

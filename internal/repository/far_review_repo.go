package repository

import (
	"hifztrack/internal/models"
	"hifztrack/internal/storage"
)

// FarReviewRepository persists the per-section far review log
type FarReviewRepository struct {
	store storage.BlobStore
}

// NewFarReviewRepository creates a new far review repository
func NewFarReviewRepository(store storage.BlobStore) *FarReviewRepository {
	return &FarReviewRepository{store: store}
}

// All returns the review log entries
func (r *FarReviewRepository) All() ([]models.FarReviewEntry, error) {
	entries := []models.FarReviewEntry{}
	if err := storage.LoadJSON(r.store, storage.FarReviewKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveAll replaces the review log
func (r *FarReviewRepository) SaveAll(entries []models.FarReviewEntry) error {
	return storage.SaveJSON(r.store, storage.FarReviewKey, entries)
}

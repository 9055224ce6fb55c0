package repository

import (
	"hifztrack/internal/models"
	"hifztrack/internal/storage"
)

// ErrorLogRepository persists the append-only error log
type ErrorLogRepository struct {
	store storage.BlobStore
}

// NewErrorLogRepository creates a new error log repository
func NewErrorLogRepository(store storage.BlobStore) *ErrorLogRepository {
	return &ErrorLogRepository{store: store}
}

// All returns every logged error in insertion order
func (r *ErrorLogRepository) All() ([]models.ErrorLogEntry, error) {
	entries := []models.ErrorLogEntry{}
	if err := storage.LoadJSON(r.store, storage.ErrorLogKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Append adds entries after the existing ones, in the order given
func (r *ErrorLogRepository) Append(entries []models.ErrorLogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	existing, err := r.All()
	if err != nil {
		return err
	}
	return storage.SaveJSON(r.store, storage.ErrorLogKey, append(existing, entries...))
}

// Clear empties the log
func (r *ErrorLogRepository) Clear() error {
	return storage.SaveJSON(r.store, storage.ErrorLogKey, []models.ErrorLogEntry{})
}

package repository

import (
	"hifztrack/internal/models"
	"hifztrack/internal/storage"
)

// MasteryRepository persists per-verse mastery records
type MasteryRepository struct {
	store storage.BlobStore
}

// NewMasteryRepository creates a new mastery repository
func NewMasteryRepository(store storage.BlobStore) *MasteryRepository {
	return &MasteryRepository{store: store}
}

// Load returns the stored mastery data, empty when nothing was saved yet
func (r *MasteryRepository) Load() (*models.MasteryData, error) {
	data := &models.MasteryData{}
	if err := storage.LoadJSON(r.store, storage.MasteryKey, data); err != nil {
		return nil, err
	}
	if data.Ayahs == nil {
		data.Ayahs = make(map[models.AyahKey]*models.AyahMastery)
	}
	return data, nil
}

// Save replaces the stored mastery data
func (r *MasteryRepository) Save(data *models.MasteryData) error {
	return storage.SaveJSON(r.store, storage.MasteryKey, data)
}

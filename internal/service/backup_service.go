package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"hifztrack/internal/models"
	"hifztrack/internal/storage"
)

// BackupVersion is the format version written by Export
const BackupVersion = 1

// ErrInvalidBackup is returned when an import file lacks a version or data
var ErrInvalidBackup = errors.New("invalid backup file")

// BackupData is the exported form of every stored blob
type BackupData struct {
	Version    int                        `json:"version"`
	ExportedAt time.Time                  `json:"exported_at"`
	Data       map[string]json.RawMessage `json:"data"`
}

// batchWriter is implemented by stores that can write several blobs atomically
type batchWriter interface {
	SetMany(blobs map[string][]byte) error
}

// BackupService handles backup and restore of the stored progress data
type BackupService struct {
	store storage.BlobStore
	now   func() time.Time
}

// NewBackupService creates a new backup service
func NewBackupService(store storage.BlobStore) *BackupService {
	return &BackupService{store: store, now: time.Now}
}

// SetClock replaces the time source
func (s *BackupService) SetClock(now func() time.Time) {
	s.now = now
}

// BackupFileName returns the default file name for a backup taken at t
func BackupFileName(t time.Time) string {
	return fmt.Sprintf("hifz-backup-%s.json", t.UTC().Format(models.DateLayout))
}

// Export writes a complete backup to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting export...")

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Data exported successfully to %s", outputPath)
	return nil
}

// ExportToWriter writes a complete backup to w
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup, err := s.snapshot()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	log.Printf("Exported %d keys", len(backup.Data))
	return nil
}

func (s *BackupService) snapshot() (*BackupData, error) {
	keys, err := s.store.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	backup := &BackupData{
		Version:    BackupVersion,
		ExportedAt: s.now().UTC(),
		Data:       make(map[string]json.RawMessage, len(keys)),
	}
	for _, key := range keys {
		raw, err := s.store.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !json.Valid(raw) {
			log.Printf("Warning: skipping %s, stored value is not valid JSON", key)
			continue
		}
		backup.Data[key] = json.RawMessage(raw)
	}
	return backup, nil
}

// Import restores data from a backup file
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores data from a backup reader. Keys present in the
// backup overwrite stored values; other stored keys are left alone.
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if backup.Version == 0 || backup.Data == nil {
		return ErrInvalidBackup
	}

	log.Printf("Backup version: %d, exported at: %s", backup.Version, backup.ExportedAt)

	blobs := make(map[string][]byte, len(backup.Data))
	for key, raw := range backup.Data {
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidBackup, key, err)
		}
		blobs[key] = compact.Bytes()
	}

	if batch, ok := s.store.(batchWriter); ok {
		if err := batch.SetMany(blobs); err != nil {
			return fmt.Errorf("failed to import data: %w", err)
		}
	} else {
		for key, value := range blobs {
			if err := s.store.Set(key, value); err != nil {
				return fmt.Errorf("failed to import %s: %w", key, err)
			}
		}
	}

	log.Printf("Import completed successfully, restored %d keys", len(blobs))
	return nil
}

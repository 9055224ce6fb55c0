// Package storage defines the key/value blob contract the trackers persist through.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Keys of the persisted collections
const (
	ErrorLogKey  = "error_log"
	MasteryKey   = "mastery_data"
	FarReviewKey = "far_review_log"
)

// ErrNotFound is returned by Get when a key has never been set
var ErrNotFound = errors.New("blob not found")

// BlobStore stores opaque JSON blobs by string key
type BlobStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
}

// LoadJSON decodes the blob under key into v. A missing key leaves v as is,
// and so does a blob that no longer decodes.
func LoadJSON(store BlobStore, key string, v any) error {
	raw, err := store.Get(key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("Warning: ignoring unreadable %s blob: %v", key, err)
	}
	return nil
}

// SaveJSON encodes v and stores it under key
func SaveJSON(store BlobStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

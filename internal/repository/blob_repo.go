package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hifztrack/internal/database"
	"hifztrack/internal/storage"
)

// BlobRepository is a storage.BlobStore over the kv_store table
type BlobRepository struct {
	db *database.DB
}

// NewBlobRepository creates a new blob repository
func NewBlobRepository(db *database.DB) *BlobRepository {
	return &BlobRepository{db: db}
}

// Get retrieves a blob by key
func (r *BlobRepository) Get(key string) ([]byte, error) {
	var value string
	query := `SELECT blob_value FROM kv_store WHERE blob_key = ?`
	err := r.db.QueryRow(query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// Set updates or inserts a blob
func (r *BlobRepository) Set(key string, value []byte) error {
	return upsertBlob(r.db, key, value)
}

// Delete removes a blob
func (r *BlobRepository) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM kv_store WHERE blob_key = ?`, key)
	return err
}

// Keys lists every stored key in ascending order
func (r *BlobRepository) Keys() ([]string, error) {
	rows, err := r.db.Query(`SELECT blob_key FROM kv_store ORDER BY blob_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

// SetMany writes all blobs in a single transaction
func (r *BlobRepository) SetMany(blobs map[string][]byte) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for key, value := range blobs {
		if err := upsertBlob(tx, key, value); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func upsertBlob(q database.DBTX, key string, value []byte) error {
	_, err := q.Exec(q.GetDialect().UpsertBlob(), key, string(value))
	return err
}

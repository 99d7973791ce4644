package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/frederickpi/pagedate"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagedate.RecordStore = (*RecordStore)(nil)

// RecordStore implements pagedate.RecordStore using SQLite. Records are
// stored as JSON documents keyed by URL and content hash; a document whose
// content changed misses the cache and is extracted again.
type RecordStore struct {
	db *DB
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db}
}

// FindRecord retrieves the cached record for the URL and content hash.
func (s *RecordStore) FindRecord(ctx context.Context, url, contentHash string) (*pagedate.Record, error) {
	var recordJSON string

	err := s.db.QueryRowContext(ctx, `
		SELECT record_json
		FROM records
		WHERE url = ? AND content_hash = ?
	`, url, contentHash).Scan(&recordJSON)

	if err == sql.ErrNoRows {
		return nil, pagedate.Errorf(pagedate.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	var rec pagedate.Record
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return nil, pagedate.Errorf(pagedate.EINTERNAL, "corrupt cached record for %s: %v", url, err)
	}
	return &rec, nil
}

// SaveRecord stores a record, replacing any previous one for the URL.
func (s *RecordStore) SaveRecord(ctx context.Context, rec *pagedate.Record, contentHash string) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if contentHash == "" {
		return pagedate.Errorf(pagedate.EINVALID, "content hash required")
	}

	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, url, content_hash, record_json, extracted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			content_hash = excluded.content_hash,
			record_json = excluded.record_json,
			extracted_at = excluded.extracted_at
	`, uuid.New().String(), rec.URL, contentHash, string(recordJSON),
		time.Now().UTC().Format(time.RFC3339))

	return err
}

package mock

import (
	"context"

	"github.com/frederickpi/pagedate"
)

var _ pagedate.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of pagedate.RecordStore.
type RecordStore struct {
	FindRecordFn func(ctx context.Context, url, contentHash string) (*pagedate.Record, error)
	SaveRecordFn func(ctx context.Context, rec *pagedate.Record, contentHash string) error
}

func (s *RecordStore) FindRecord(ctx context.Context, url, contentHash string) (*pagedate.Record, error) {
	return s.FindRecordFn(ctx, url, contentHash)
}

func (s *RecordStore) SaveRecord(ctx context.Context, rec *pagedate.Record, contentHash string) error {
	return s.SaveRecordFn(ctx, rec, contentHash)
}

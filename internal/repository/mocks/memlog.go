package mocks

import (
	"context"
	"sync"

	"github.com/daybudget/daybudget/internal/domain/tracking"
)

// MemoryLogStore is a map-backed log store for tests that need real
// multi-day history without scripting every GetForDate call.
type MemoryLogStore struct {
	mu      sync.Mutex
	records map[string][]tracking.LogRecord

	// AppendErr, when set, is returned by Append to simulate storage
	// failure.
	AppendErr error
	// GetErr, when set, is returned by GetForDate.
	GetErr error
}

// NewMemoryLogStore creates an empty in-memory log store.
func NewMemoryLogStore() *MemoryLogStore {
	return &MemoryLogStore{records: make(map[string][]tracking.LogRecord)}
}

func (s *MemoryLogStore) Append(ctx context.Context, rec *tracking.LogRecord) error {
	if s.AppendErr != nil {
		return s.AppendErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Date] = append(s.records[rec.Date], *rec)
	return nil
}

func (s *MemoryLogStore) GetForDate(ctx context.Context, date string) ([]tracking.LogRecord, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]tracking.LogRecord, len(s.records[date]))
	copy(out, s.records[date])
	return out, nil
}

// All returns every stored record, for assertions.
func (s *MemoryLogStore) All() []tracking.LogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []tracking.LogRecord
	for _, recs := range s.records {
		out = append(out, recs...)
	}
	return out
}

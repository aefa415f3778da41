package service

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/clock"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
)

// recordingStore оборачивает MemoryStore, считает вызовы и умеет падать по запросу
type recordingStore struct {
	*store.MemoryStore

	mu        sync.Mutex
	inserts   []store.Record
	updates   []store.Record
	insertErr error
	updateErr error
}

func newRecordingStore() *recordingStore {
	mem := store.NewMemoryStore(clock.NewFixed(time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)))
	mem.WithUnique("bookings", "idempotency_key")
	return &recordingStore{MemoryStore: mem}
}

func (s *recordingStore) Insert(ctx context.Context, table string, rec store.Record) (store.Record, error) {
	s.mu.Lock()
	s.inserts = append(s.inserts, rec.Clone())
	err := s.insertErr
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return s.MemoryStore.Insert(ctx, table, rec)
}

func (s *recordingStore) Update(ctx context.Context, table, id string, patch store.Record) error {
	s.mu.Lock()
	s.updates = append(s.updates, patch.Clone())
	err := s.updateErr
	s.mu.Unlock()

	if err != nil {
		return err
	}
	return s.MemoryStore.Update(ctx, table, id, patch)
}

package record

import (
	"fmt"
	"strings"
	"sync"
)

// Store holds records in load order, indexed by id.
type Store struct {
	mu      sync.RWMutex
	records []Record
	index   map[string]int
}

// NewStore builds a store from the initial record sequence.
func NewStore(records []Record) (*Store, error) {
	store := &Store{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, rec := range records {
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			return nil, fmt.Errorf("load record: %w", ErrEmptyID)
		}
		if _, exists := store.index[id]; exists {
			return nil, fmt.Errorf("load record %s: %w", id, ErrDuplicateID)
		}
		rec.ID = id
		store.index[id] = len(store.records)
		store.records = append(store.records, rec)
	}
	return store, nil
}

// All returns a copy of every record in load order.
func (s *Store) All() []Record {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (Record, error) {
	if s == nil {
		return Record{}, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return Record{}, fmt.Errorf("get record %s: %w", id, ErrNotFound)
	}
	return s.records[pos], nil
}

// UpdateStatus replaces the status of one record. Any transition is allowed.
func (s *Store) UpdateStatus(id string, status Status) (Record, error) {
	if s == nil {
		return Record{}, ErrNotFound
	}
	if !status.Valid() {
		return Record{}, fmt.Errorf("update record %s: %w: %q", id, ErrInvalidStatus, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.index[id]
	if !ok {
		return Record{}, fmt.Errorf("update record %s: %w", id, ErrNotFound)
	}
	updated := s.records[pos]
	updated.About.Status = status
	s.records[pos] = updated
	return updated, nil
}

// Stats computes aggregate counts over every record in the store.
func (s *Store) Stats() Stats {
	return ComputeStats(s.All())
}

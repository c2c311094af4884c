package store

import (
	"sync"

	"github.com/aferrand/shelf/internal/api"
)

// Store holds the authoritative local copy of the book collection. Records
// enter and leave only through Load, Upsert, and Delete, each of which pairs
// 1:1 with a confirmed remote response — the store never fabricates a record
// and is never mutated speculatively.
type Store struct {
	mu    sync.RWMutex
	order []int64
	byID  map[int64]api.Book
}

// Load replaces the entire contents with the given records, preserving their
// order. Duplicate ids keep the first occurrence.
func (s *Store) Load(records []api.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.byID = make(map[int64]api.Book, len(records))
	for _, record := range records {
		if _, exists := s.byID[record.ID]; exists {
			continue
		}
		s.byID[record.ID] = record
		s.order = append(s.order, record.ID)
	}
}

// Upsert inserts the record when its id is absent, otherwise overwrites the
// matching record entirely. New records append to the end of the order.
func (s *Store) Upsert(record api.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byID == nil {
		s.byID = make(map[int64]api.Book)
	}
	if _, exists := s.byID[record.ID]; !exists {
		s.order = append(s.order, record.ID)
	}
	s.byID[record.ID] = record
}

// Delete removes the record with the given id. Absent ids are a no-op.
func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Books returns a copy of the collection in insertion/fetch order. Callers
// may mutate the returned slice freely.
func (s *Store) Books() []api.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil
	}
	books := make([]api.Book, 0, len(s.order))
	for _, id := range s.order {
		books = append(books, s.byID[id])
	}
	return books
}

// Get returns the record with the given id, reporting whether it exists.
func (s *Store) Get(id int64) (api.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byID[id]
	return record, ok
}

// Len reports the number of records in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

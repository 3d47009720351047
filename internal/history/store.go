// Package history keeps the most recent URL transformations of a session in memory.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxEntries is the number of records a Store retains.
const MaxEntries = 10

// Record is one completed transformation. Records are values and never change
// after the store creates them.
type Record struct {
	ID        string
	Original  string
	Processed string
	Timestamp time.Time
}

// Store is a bounded, newest-first list of records.
type Store struct {
	mu      sync.RWMutex
	entries []Record
	last    time.Time
	now     func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make([]Record, 0, MaxEntries),
		now:     time.Now,
	}
}

// Add records a transformation at the head of the store and returns it.
// The oldest record is evicted once the store holds MaxEntries.
func (s *Store) Add(original, processed string) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now()
	if !ts.After(s.last) {
		ts = s.last.Add(time.Nanosecond)
	}
	s.last = ts

	rec := Record{
		ID:        uuid.New().String(),
		Original:  original,
		Processed: processed,
		Timestamp: ts,
	}

	if len(s.entries) == MaxEntries {
		s.entries = s.entries[:MaxEntries-1]
	}
	s.entries = append(s.entries, Record{})
	copy(s.entries[1:], s.entries[:len(s.entries)-1])
	s.entries[0] = rec

	return rec
}

// List returns a copy of all records, newest first.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.entries {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Len returns the number of records held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

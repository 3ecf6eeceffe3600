// Package inmemory provides an in-process memory store for tests and
// local development.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/store"
)

// Store implements store.Store using an in-memory map.
type Store struct {
	// mu guards records and nextID
	mu sync.RWMutex

	// records maps memory id to its record
	records map[int]*memory.MemoryRecord

	// nextID is the next surrogate key, assigned monotonically
	nextID int
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		records: make(map[int]*memory.MemoryRecord),
		nextID:  1,
	}
}

// GetLatestMemory returns the most recent record for the conversation with
// the given status, by end sequence descending. Returns (nil, nil) if none.
func (s *Store) GetLatestMemory(_ context.Context, conversationID string, status memory.Status) (*memory.MemoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *memory.MemoryRecord
	for _, rec := range s.records {
		if rec.ConversationID != conversationID || rec.Status != status {
			continue
		}
		if latest == nil || rec.EndSequence > latest.EndSequence ||
			(rec.EndSequence == latest.EndSequence && rec.ID > latest.ID) {
			latest = rec
		}
	}

	if latest == nil {
		return nil, nil
	}
	return copyRecord(latest), nil
}

// GetMemoryByID returns a record by its id.
func (s *Store) GetMemoryByID(_ context.Context, memoryID int) (*memory.MemoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[memoryID]
	if !ok {
		return nil, store.NotFoundError{MemoryID: memoryID}
	}
	return copyRecord(rec), nil
}

// ExistsProcessing reports whether a processing row exists for the conversation.
func (s *Store) ExistsProcessing(_ context.Context, conversationID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ConversationID == conversationID && rec.Status == memory.StatusProcessing {
			return true, nil
		}
	}
	return false, nil
}

// InsertMemory appends a new record and returns its id.
func (s *Store) InsertMemory(_ context.Context, params store.InsertParams) (int, error) {
	if err := store.ValidateWrite(params.Status, params.MemoryText); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	s.records[id] = &memory.MemoryRecord{
		ID:             id,
		ConversationID: params.ConversationID,
		MemoryText:     params.MemoryText,
		StartSequence:  params.StartSequence,
		EndSequence:    params.EndSequence,
		BaseMemoryID:   params.BaseMemoryID,
		Status:         params.Status,
		CreatedAt:      time.Now().UTC(),
		GenerationMs:   params.GenerationMs,
	}

	return id, nil
}

// UpdateMemoryStatus transitions a record to a new status.
func (s *Store) UpdateMemoryStatus(_ context.Context, memoryID int, transition store.StatusTransition) error {
	if err := store.ValidateWrite(transition.Status, transition.MemoryText); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[memoryID]
	if !ok {
		return store.NotFoundError{MemoryID: memoryID}
	}

	rec.Status = transition.Status
	if transition.Status == memory.StatusCompleted {
		rec.MemoryText = transition.MemoryText
	}
	if transition.GenerationMs != nil {
		rec.GenerationMs = transition.GenerationMs
	}

	return nil
}

// GetMemoryHistory returns up to limit records for the conversation by end
// sequence descending.
func (s *Store) GetMemoryHistory(_ context.Context, conversationID string, limit int) ([]*memory.MemoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []*memory.MemoryRecord
	for _, rec := range s.records {
		if rec.ConversationID == conversationID {
			records = append(records, copyRecord(rec))
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].EndSequence != records[j].EndSequence {
			return records[i].EndSequence > records[j].EndSequence
		}
		return records[i].ID > records[j].ID
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Count returns the number of records in the store.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

// copyRecord returns a shallow copy so callers cannot mutate internal state.
func copyRecord(rec *memory.MemoryRecord) *memory.MemoryRecord {
	out := *rec
	return &out
}

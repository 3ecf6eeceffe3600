// Package store defines the persistence interface for memory records.
//
// The memory table is the single shared mutable resource in the system and
// is never locked pessimistically: the processing status row inserted by
// InsertMemory is the advisory lock that ExistsProcessing observes. All
// implementations are append-only; a record's only mutation is its one-time
// transition to a terminal status.
package store

import (
	"context"

	"github.com/mnemolabs/mnemo/pkg/memory"
)

// InsertParams are the fields for a new memory record row.
type InsertParams struct {
	ConversationID string
	MemoryText     string
	StartSequence  int
	EndSequence    int
	BaseMemoryID   *int
	Status         memory.Status
	GenerationMs   *int64
}

// StatusTransition carries a record's move to a new status. MemoryText is
// required non-empty when transitioning to completed and ignored otherwise.
type StatusTransition struct {
	Status       memory.Status
	MemoryText   string
	GenerationMs *int64
}

// Store is the interface for persisting and retrieving memory records.
type Store interface {
	// GetLatestMemory returns the most recent record for a conversation
	// with the given status, ordered by end sequence descending. Returns
	// (nil, nil) when no such record exists.
	GetLatestMemory(ctx context.Context, conversationID string, status memory.Status) (*memory.MemoryRecord, error)

	// GetMemoryByID returns a record by its id, or NotFoundError.
	GetMemoryByID(ctx context.Context, memoryID int) (*memory.MemoryRecord, error)

	// ExistsProcessing reports whether the conversation has an in-flight
	// summarization. This is the concurrency gate's read side.
	ExistsProcessing(ctx context.Context, conversationID string) (bool, error)

	// InsertMemory appends a new record and returns its id. Returns
	// ValidationError when inserting a completed record with empty text.
	InsertMemory(ctx context.Context, params InsertParams) (int, error)

	// UpdateMemoryStatus transitions a record to a new status. Returns
	// ValidationError when transitioning to completed with empty text.
	UpdateMemoryStatus(ctx context.Context, memoryID int, transition StatusTransition) error

	// GetMemoryHistory returns up to limit records for a conversation,
	// ordered by end sequence descending. Diagnostics only.
	GetMemoryHistory(ctx context.Context, conversationID string, limit int) ([]*memory.MemoryRecord, error)

	// Close releases the store's resources.
	Close() error
}

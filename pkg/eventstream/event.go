// Package eventstream defines transport-neutral events emitted when a
// summarization attempt reaches a terminal state, and the Publisher
// interface for shipping them to an event stream backend.
package eventstream

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeMemoryCompleted is emitted after a summarization attempt
	// transitions to completed.
	EventTypeMemoryCompleted = "mnemo.memory.completed"

	// EventTypeMemoryFailed is emitted after a summarization attempt
	// transitions to failed.
	EventTypeMemoryFailed = "mnemo.memory.failed"
)

// MemoryEvent is a transport-neutral event payload for a terminal
// summarization outcome.
type MemoryEvent struct {
	SchemaVersion  int       `json:"schema_version"`
	EventType      string    `json:"event_type"`
	EventID        string    `json:"event_id"`
	EmittedAt      time.Time `json:"emitted_at"`
	ConversationID string    `json:"conversation_id"`
	MemoryID       int       `json:"memory_id"`
	StartSequence  int       `json:"start_sequence"`
	EndSequence    int       `json:"end_sequence"`
	GenerationMs   int64     `json:"generation_time_ms,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// NewMemoryEvent builds a MemoryEvent with a fresh event id and timestamp.
func NewMemoryEvent(eventType, conversationID string, memoryID, startSeq, endSeq int) *MemoryEvent {
	return &MemoryEvent{
		SchemaVersion:  SchemaVersionV1,
		EventType:      eventType,
		EventID:        uuid.NewString(),
		EmittedAt:      time.Now().UTC(),
		ConversationID: conversationID,
		MemoryID:       memoryID,
		StartSequence:  startSeq,
		EndSequence:    endSeq,
	}
}

// Package memory defines the domain model for the mnemo conversation memory
// layer: structured summaries, the append-only records that persist them, and
// the pure logic (window planning, merging) that operates on both.
//
// A conversation's history is folded into a chain of MemoryRecord rows. Each
// record covers an inclusive range of message sequence numbers and points back
// at the completed record it extends, forming a singly linked version chain.
// Only the most recent completed record is authoritative for reads.
package memory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a MemoryRecord.
type Status string

const (
	// StatusProcessing marks a record whose summarization is in flight.
	// The row's existence doubles as the per-conversation lock.
	StatusProcessing Status = "processing"

	// StatusCompleted marks a record with a usable serialized summary.
	StatusCompleted Status = "completed"

	// StatusFailed marks a record whose summarization attempt failed.
	// Failed records are never used as context.
	StatusFailed Status = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether s is a terminal state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Message is a single role-tagged message from the external conversation log.
// The log itself is owned by the caller; mnemo only ever sees ordered slices
// of these.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Entity is a named thing worth remembering across turns, keyed by
// case-insensitive name when merging.
type Entity struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Notes   string   `json:"notes,omitempty"`
}

// StructuredMemory is the decoded payload of a completed record's memory
// text. Each list is semantically a deduplicated ordered set with a cap,
// enforced by Merge.
type StructuredMemory struct {
	Facts           []string `json:"facts,omitempty"`
	Decisions       []string `json:"decisions,omitempty"`
	UserPreferences []string `json:"user_preferences,omitempty"`
	OpenQuestions   []string `json:"open_questions,omitempty"`
	Entities        []Entity `json:"entities,omitempty"`
}

// IsEmpty reports whether the memory carries no information at all.
// An empty memory must never be persisted as a completed record.
func (m *StructuredMemory) IsEmpty() bool {
	return len(m.Facts) == 0 &&
		len(m.Decisions) == 0 &&
		len(m.UserPreferences) == 0 &&
		len(m.OpenQuestions) == 0 &&
		len(m.Entities) == 0
}

// Encode serializes the memory for storage in a record's memory text.
func (m *StructuredMemory) Encode() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding structured memory: %w", err)
	}
	return string(data), nil
}

// Decode parses a record's memory text back into a StructuredMemory.
//
// Decode never fails on malformed input: legacy plain-text summaries (or any
// payload that is not a JSON object) are wrapped as a single fact so that old
// rows keep working as context. Empty text yields nil.
func Decode(memoryText string) *StructuredMemory {
	if strings.TrimSpace(memoryText) == "" {
		return nil
	}

	var m StructuredMemory
	dec := json.NewDecoder(bytes.NewReader([]byte(memoryText)))
	if err := dec.Decode(&m); err != nil {
		return &StructuredMemory{Facts: []string{memoryText}}
	}

	return &m
}

// MemoryRecord is one row of the memory table: a single summarization
// attempt. Rows are append-only; only the status transition mutates them.
type MemoryRecord struct {
	ID             int       `json:"memory_id"`
	ConversationID string    `json:"conversation_id"`
	MemoryText     string    `json:"memory_text"`
	StartSequence  int       `json:"start_sequence"`
	EndSequence    int       `json:"end_sequence"`
	BaseMemoryID   *int      `json:"base_memory_id,omitempty"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	GenerationMs   *int64    `json:"generation_time_ms,omitempty"`
}

// ConversationContext is the per-request view handed to the workflow layer:
// the latest completed structured memory (if any) plus the gap messages that
// are newer than it but not yet summarized. Never persisted.
type ConversationContext struct {
	Memory      *StructuredMemory `json:"memory,omitempty"`
	GapMessages []Message         `json:"gap_messages"`
}

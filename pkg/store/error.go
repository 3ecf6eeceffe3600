package store

import (
	"strconv"
	"strings"

	"github.com/mnemolabs/mnemo/pkg/memory"
)

// NotFoundError is returned when a memory record doesn't exist in the store.
type NotFoundError struct {
	MemoryID int
}

func (e NotFoundError) Error() string {
	return "memory record not found: " + strconv.Itoa(e.MemoryID)
}

// ValidationError is returned when a write would violate a record invariant,
// most notably a completed record with empty memory text.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "invalid memory record: " + e.Reason
}

// ValidateWrite enforces the terminal-state exclusivity invariant shared by
// all drivers: a record never reaches completed with empty or
// whitespace-only memory text.
func ValidateWrite(status memory.Status, memoryText string) error {
	if !status.Valid() {
		return ValidationError{Reason: "unknown status " + strconv.Quote(string(status))}
	}
	if status == memory.StatusCompleted && strings.TrimSpace(memoryText) == "" {
		return ValidationError{Reason: "completed record requires non-empty memory text"}
	}
	return nil
}

// Package service provides the memory service façade that workflow callers
// interact with: reading conversation context and triggering background
// summarization. It composes the store, window planner, and worker pool; it
// never talks to the LLM provider directly.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/store"
	"github.com/mnemolabs/mnemo/pkg/worker"
)

// ErrQueueFull is returned by TriggerSummarizationIfNeeded when the worker
// pool rejected the job. The processing row has already been released.
var ErrQueueFull = errors.New("summarization queue full")

const (
	// DefaultRollingWindowSize is the number of trailing messages a
	// summarization window covers.
	DefaultRollingWindowSize = 14

	// DefaultSummarizeAfterSeq is the sequence number a conversation must
	// reach before summarization starts.
	DefaultSummarizeAfterSeq = 5
)

// Config is the configuration options for the memory service.
type Config struct {
	// Store is the memory record store.
	Store store.Store

	// Pool runs summarization jobs in the background.
	Pool *worker.Pool

	// RollingWindowSize overrides DefaultRollingWindowSize when positive.
	RollingWindowSize int

	// SummarizeAfterSeq overrides DefaultSummarizeAfterSeq when positive.
	SummarizeAfterSeq int

	// Logger is the provided zap logger
	Logger *zap.Logger
}

// MemoryService is the façade over the memory subsystem.
type MemoryService struct {
	store             store.Store
	pool              *worker.Pool
	rollingWindowSize int
	summarizeAfterSeq int
	logger            *zap.Logger
}

// NewMemoryService creates a MemoryService from the config.
func NewMemoryService(c *Config) (*MemoryService, error) {
	if c.Store == nil {
		return nil, errors.New("store is required")
	}
	if c.Pool == nil {
		return nil, errors.New("worker pool is required")
	}

	windowSize := c.RollingWindowSize
	if windowSize <= 0 {
		windowSize = DefaultRollingWindowSize
	}
	after := c.SummarizeAfterSeq
	if after <= 0 {
		after = DefaultSummarizeAfterSeq
	}

	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MemoryService{
		store:             c.Store,
		pool:              c.Pool,
		rollingWindowSize: windowSize,
		summarizeAfterSeq: after,
		logger:            logger,
	}, nil
}

// GetContextForWorkflow assembles the context a workflow needs before
// handling the newest message: the latest completed memory plus the gap
// messages between that memory's coverage and the current message.
//
// messages is the caller's full ordered log including the not-yet-handled
// newest message, which is always excluded from the gap.
func (s *MemoryService) GetContextForWorkflow(ctx context.Context, conversationID string, messages []memory.Message) (*memory.ConversationContext, error) {
	if conversationID == "" {
		return nil, errors.New("conversation id is required")
	}

	record, err := s.store.GetLatestMemory(ctx, conversationID, memory.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("loading latest memory: %w", err)
	}

	if record == nil {
		// No memory yet: everything before the newest message is gap.
		gap := []memory.Message{}
		if len(messages) > 1 {
			gap = messages[:len(messages)-1]
		}
		return &memory.ConversationContext{GapMessages: gap}, nil
	}

	gapStart := record.EndSequence + 1
	gapEnd := len(messages) - 2

	gap := []memory.Message{}
	if gapStart <= gapEnd {
		gap = messages[gapStart : gapEnd+1]
	}

	return &memory.ConversationContext{
		Memory:      memory.Decode(record.MemoryText),
		GapMessages: gap,
	}, nil
}

// TriggerSummarizationIfNeeded starts a background summarization run when
// the conversation has crossed the threshold and none is already in flight.
// Returns true when a job was handed to the pool.
//
// lastSavedSeq is the sequence number of the newest persisted message;
// messages is the caller's full ordered log snapshot. The call returns as
// soon as the processing row is inserted and the job enqueued; the outcome
// lands in the store asynchronously.
func (s *MemoryService) TriggerSummarizationIfNeeded(ctx context.Context, conversationID string, lastSavedSeq int, messages []memory.Message) (bool, error) {
	if conversationID == "" {
		return false, errors.New("conversation id is required")
	}

	window, ok := memory.PlanWindow(lastSavedSeq, s.summarizeAfterSeq, s.rollingWindowSize)
	if !ok {
		return false, nil
	}

	// Check-then-insert gate. The window between these two store calls can
	// admit a duplicate attempt under races; duplicates produce a redundant
	// record, never corruption.
	inFlight, err := s.store.ExistsProcessing(ctx, conversationID)
	if err != nil {
		return false, fmt.Errorf("checking in-flight summarization: %w", err)
	}
	if inFlight {
		s.logger.Debug("summarization already in flight, skipping",
			zap.String("conversation_id", conversationID),
		)
		return false, nil
	}

	base, err := s.store.GetLatestMemory(ctx, conversationID, memory.StatusCompleted)
	if err != nil {
		return false, fmt.Errorf("loading base memory: %w", err)
	}

	var baseID *int
	if base != nil {
		id := base.ID
		baseID = &id
	} else if window.Start > 0 {
		s.logger.Info("messages before window start will never be summarized",
			zap.String("conversation_id", conversationID),
			zap.Int("dropped_before", window.Start),
		)
	}

	memoryID, err := s.store.InsertMemory(ctx, store.InsertParams{
		ConversationID: conversationID,
		StartSequence:  window.Start,
		EndSequence:    window.End,
		BaseMemoryID:   baseID,
		Status:         memory.StatusProcessing,
	})
	if err != nil {
		return false, fmt.Errorf("inserting processing record: %w", err)
	}

	snapshot := make([]memory.Message, len(messages))
	copy(snapshot, messages)

	queued := s.pool.Enqueue(worker.Job{
		MemoryID:       memoryID,
		ConversationID: conversationID,
		StartSequence:  window.Start,
		EndSequence:    window.End,
		BaseMemoryID:   baseID,
		Messages:       snapshot,
	})
	if !queued {
		// Release the lock so the next trigger can retry.
		err := s.store.UpdateMemoryStatus(ctx, memoryID, store.StatusTransition{
			Status: memory.StatusFailed,
		})
		if err != nil {
			s.logger.Error("failed to release dropped job's processing record",
				zap.Int("memory_id", memoryID),
				zap.String("conversation_id", conversationID),
				zap.Error(err),
			)
		}
		return false, ErrQueueFull
	}

	s.logger.Debug("summarization triggered",
		zap.String("conversation_id", conversationID),
		zap.Int("memory_id", memoryID),
		zap.Int("start_sequence", window.Start),
		zap.Int("end_sequence", window.End),
	)

	return true, nil
}

// GetLatestMemory returns the newest completed memory record for the
// conversation, or (nil, nil) when none exists.
func (s *MemoryService) GetLatestMemory(ctx context.Context, conversationID string) (*memory.MemoryRecord, error) {
	if conversationID == "" {
		return nil, errors.New("conversation id is required")
	}
	return s.store.GetLatestMemory(ctx, conversationID, memory.StatusCompleted)
}

// GetMemoryRecord returns a single record by id, any status. Returns
// store.NotFoundError when no such record exists.
func (s *MemoryService) GetMemoryRecord(ctx context.Context, memoryID int) (*memory.MemoryRecord, error) {
	return s.store.GetMemoryByID(ctx, memoryID)
}

// MemoryHistory returns up to limit records for the conversation, newest
// first, across all statuses. Diagnostics only.
func (s *MemoryService) MemoryHistory(ctx context.Context, conversationID string, limit int) ([]*memory.MemoryRecord, error) {
	if conversationID == "" {
		return nil, errors.New("conversation id is required")
	}
	if limit <= 0 {
		limit = 20
	}
	return s.store.GetMemoryHistory(ctx, conversationID, limit)
}

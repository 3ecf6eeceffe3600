package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/service"
	"github.com/mnemolabs/mnemo/pkg/store"
)

// ErrorResponse is the JSON body returned on request failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ContextRequest carries the caller's message log snapshot for a context read.
// The newest (not yet handled) message is the last element.
type ContextRequest struct {
	Messages []memory.Message `json:"messages"`
}

// ContextResponse is the assembled workflow context plus its rendered form.
type ContextResponse struct {
	Memory      *memory.StructuredMemory `json:"memory,omitempty"`
	GapMessages []memory.Message         `json:"gap_messages"`
	Rendered    string                   `json:"rendered,omitempty"`
}

// SummarizeRequest asks the service to start a summarization run if the
// conversation has crossed the threshold.
type SummarizeRequest struct {
	LastSavedSeq int              `json:"last_saved_seq"`
	Messages     []memory.Message `json:"messages"`
}

// SummarizeResponse reports whether a background run was started.
type SummarizeResponse struct {
	Triggered bool `json:"triggered"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleContext assembles the conversation context for a workflow turn.
func (s *Server) handleContext(c *fiber.Ctx) error {
	conversationID := c.Params("id")

	var req ContextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	cc, err := s.service.GetContextForWorkflow(c.Context(), conversationID, req.Messages)
	if err != nil {
		s.logger.Error("failed to assemble context",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to assemble context"})
	}

	return c.JSON(ContextResponse{
		Memory:      cc.Memory,
		GapMessages: cc.GapMessages,
		Rendered:    memory.FormatContextForWorkflow(cc),
	})
}

// handleSummarize triggers a background summarization run. Responds 202
// whether or not a run was actually started; the trigger is advisory.
func (s *Server) handleSummarize(c *fiber.Ctx) error {
	conversationID := c.Params("id")

	var req SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	triggered, err := s.service.TriggerSummarizationIfNeeded(c.Context(), conversationID, req.LastSavedSeq, req.Messages)
	if err != nil {
		s.logger.Error("failed to trigger summarization",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		if errors.Is(err, service.ErrQueueFull) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: "summarization queue full"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to trigger summarization"})
	}

	return c.Status(fiber.StatusAccepted).JSON(SummarizeResponse{Triggered: triggered})
}

// handleLatestMemory returns the newest completed memory record.
func (s *Server) handleLatestMemory(c *fiber.Ctx) error {
	conversationID := c.Params("id")

	record, err := s.service.GetLatestMemory(c.Context(), conversationID)
	if err != nil {
		s.logger.Error("failed to load latest memory",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to load latest memory"})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "no completed memory for conversation"})
	}

	return c.JSON(record)
}

// handleHistory returns up to ?limit= records for a conversation, newest first.
func (s *Server) handleHistory(c *fiber.Ctx) error {
	conversationID := c.Params("id")
	limit := c.QueryInt("limit", 20)

	records, err := s.service.MemoryHistory(c.Context(), conversationID, limit)
	if err != nil {
		s.logger.Error("failed to load memory history",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to load memory history"})
	}

	if records == nil {
		records = []*memory.MemoryRecord{}
	}

	return c.JSON(map[string]any{
		"count":   len(records),
		"records": records,
	})
}

// handleGetRecord returns a single memory record by id.
func (s *Server) handleGetRecord(c *fiber.Ctx) error {
	memoryID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "memory id must be an integer"})
	}

	record, err := s.service.GetMemoryRecord(c.Context(), memoryID)
	if err != nil {
		var notFound store.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "memory record not found"})
		}
		s.logger.Error("failed to load memory record",
			zap.Int("memory_id", memoryID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to load memory record"})
	}

	return c.JSON(record)
}

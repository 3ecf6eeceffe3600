package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mnemolabs/mnemo/pkg/memory"
)

var (
	memorySnapshotToolName    = "memory_snapshot"
	memorySnapshotDescription = "Fetch the latest completed structured memory for a conversation: its facts, decisions, user preferences, open questions, and entities, plus the message range the summary covers. Use this to recall what the conversation established before the current window."

	memoryHistoryToolName    = "memory_history"
	memoryHistoryDescription = "List recent summarization attempts for a conversation, newest first, including failed and in-flight attempts. Use this to diagnose the memory layer's behavior for a conversation."
)

// MemorySnapshotInput represents the input arguments for the MCP memory_snapshot tool.
type MemorySnapshotInput struct {
	ConversationID string `json:"conversation_id" jsonschema:"the conversation identifier to fetch the latest completed memory for"`
}

// MemorySnapshotOutput represents the structured output of a memory snapshot.
type MemorySnapshotOutput struct {
	Memory        *memory.StructuredMemory `json:"memory,omitempty"`
	StartSequence int                      `json:"start_sequence"`
	EndSequence   int                      `json:"end_sequence"`
	Found         bool                     `json:"found"`
}

// handleMemorySnapshot processes a memory snapshot request via MCP.
func (s *Server) handleMemorySnapshot(ctx context.Context, _ *mcp.CallToolRequest, input MemorySnapshotInput) (*mcp.CallToolResult, MemorySnapshotOutput, error) {
	if input.ConversationID == "" {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: "conversation_id is required"},
			},
		}, MemorySnapshotOutput{}, nil
	}

	record, err := s.config.Service.GetLatestMemory(ctx, input.ConversationID)
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Memory snapshot failed: %v", err)},
			},
		}, MemorySnapshotOutput{}, nil
	}

	output := MemorySnapshotOutput{}
	if record != nil {
		output.Memory = memory.Decode(record.MemoryText)
		output.StartSequence = record.StartSequence
		output.EndSequence = record.EndSequence
		output.Found = true
	}

	return textResult(output)
}

// MemoryHistoryInput represents the input arguments for the MCP memory_history tool.
type MemoryHistoryInput struct {
	ConversationID string `json:"conversation_id" jsonschema:"the conversation identifier to list summarization attempts for"`
	Limit          int    `json:"limit,omitempty" jsonschema:"maximum number of records to return, newest first (default 20)"`
}

// MemoryHistoryOutput represents the structured output of a memory history listing.
type MemoryHistoryOutput struct {
	Records []*memory.MemoryRecord `json:"records"`
}

// handleMemoryHistory processes a memory history request via MCP.
func (s *Server) handleMemoryHistory(ctx context.Context, _ *mcp.CallToolRequest, input MemoryHistoryInput) (*mcp.CallToolResult, MemoryHistoryOutput, error) {
	if input.ConversationID == "" {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: "conversation_id is required"},
			},
		}, MemoryHistoryOutput{}, nil
	}

	records, err := s.config.Service.MemoryHistory(ctx, input.ConversationID, input.Limit)
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Memory history failed: %v", err)},
			},
		}, MemoryHistoryOutput{}, nil
	}

	if records == nil {
		records = []*memory.MemoryRecord{}
	}

	return textResult(MemoryHistoryOutput{Records: records})
}

// textResult serializes output as a JSON text content block alongside the
// structured output.
func textResult[T any](output T) (*mcp.CallToolResult, T, error) {
	jsonBytes, err := json.Marshal(output)
	if err != nil {
		var zero T
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to serialize results: %v", err)},
			},
		}, zero, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, output, nil
}

// Package entdriver implements store.Store on top of a generated ent client.
// It is database-agnostic and is embedded by the sqlite and postgres drivers.
package entdriver

import (
	"context"
	"fmt"

	"github.com/mnemolabs/mnemo/pkg/memory"
	"github.com/mnemolabs/mnemo/pkg/store"
	"github.com/mnemolabs/mnemo/pkg/store/ent"
	"github.com/mnemolabs/mnemo/pkg/store/ent/memoryrecord"
)

// EntStore provides memory record persistence using an ent client.
type EntStore struct {
	Client *ent.Client
}

// GetLatestMemory returns the most recent record for a conversation with the
// given status, by end sequence descending. Returns (nil, nil) if none exists.
func (es *EntStore) GetLatestMemory(ctx context.Context, conversationID string, status memory.Status) (*memory.MemoryRecord, error) {
	row, err := es.Client.MemoryRecord.Query().
		Where(
			memoryrecord.ConversationID(conversationID),
			memoryrecord.StatusEQ(memoryrecord.Status(status)),
		).
		Order(ent.Desc(memoryrecord.FieldEndSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying latest memory: %w", err)
	}

	return entRecordToMemoryRecord(row), nil
}

// GetMemoryByID returns a record by its id.
func (es *EntStore) GetMemoryByID(ctx context.Context, memoryID int) (*memory.MemoryRecord, error) {
	row, err := es.Client.MemoryRecord.Get(ctx, memoryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, store.NotFoundError{MemoryID: memoryID}
		}
		return nil, fmt.Errorf("getting memory record: %w", err)
	}

	return entRecordToMemoryRecord(row), nil
}

// ExistsProcessing reports whether a processing row exists for the
// conversation. Its result is advisory: see the race window accepted by the
// insert-as-lock design in pkg/service.
func (es *EntStore) ExistsProcessing(ctx context.Context, conversationID string) (bool, error) {
	exists, err := es.Client.MemoryRecord.Query().
		Where(
			memoryrecord.ConversationID(conversationID),
			memoryrecord.StatusEQ(memoryrecord.StatusProcessing),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("checking processing status: %w", err)
	}
	return exists, nil
}

// InsertMemory appends a new record and returns its id. The insert must be
// durable before the caller spawns any background work that relies on it as
// a lock.
func (es *EntStore) InsertMemory(ctx context.Context, params store.InsertParams) (int, error) {
	if err := store.ValidateWrite(params.Status, params.MemoryText); err != nil {
		return 0, err
	}

	row, err := es.Client.MemoryRecord.Create().
		SetConversationID(params.ConversationID).
		SetMemoryText(params.MemoryText).
		SetStartSequence(params.StartSequence).
		SetEndSequence(params.EndSequence).
		SetNillableBaseMemoryID(params.BaseMemoryID).
		SetStatus(memoryrecord.Status(params.Status)).
		SetNillableGenerationTimeMs(params.GenerationMs).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("inserting memory record: %w", err)
	}

	return row.ID, nil
}

// UpdateMemoryStatus transitions a record to a new status, setting the
// memory text and generation time on completion.
func (es *EntStore) UpdateMemoryStatus(ctx context.Context, memoryID int, transition store.StatusTransition) error {
	if err := store.ValidateWrite(transition.Status, transition.MemoryText); err != nil {
		return err
	}

	update := es.Client.MemoryRecord.UpdateOneID(memoryID).
		SetStatus(memoryrecord.Status(transition.Status)).
		SetNillableGenerationTimeMs(transition.GenerationMs)

	if transition.Status == memory.StatusCompleted {
		update.SetMemoryText(transition.MemoryText)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return store.NotFoundError{MemoryID: memoryID}
		}
		return fmt.Errorf("updating memory status: %w", err)
	}

	return nil
}

// GetMemoryHistory returns up to limit records for a conversation by end
// sequence descending.
func (es *EntStore) GetMemoryHistory(ctx context.Context, conversationID string, limit int) ([]*memory.MemoryRecord, error) {
	rows, err := es.Client.MemoryRecord.Query().
		Where(memoryrecord.ConversationID(conversationID)).
		Order(ent.Desc(memoryrecord.FieldEndSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying memory history: %w", err)
	}

	records := make([]*memory.MemoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entRecordToMemoryRecord(row))
	}
	return records, nil
}

// Close closes the database connection.
func (es *EntStore) Close() error {
	return es.Client.Close()
}

func entRecordToMemoryRecord(row *ent.MemoryRecord) *memory.MemoryRecord {
	return &memory.MemoryRecord{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		MemoryText:     row.MemoryText,
		StartSequence:  row.StartSequence,
		EndSequence:    row.EndSequence,
		BaseMemoryID:   row.BaseMemoryID,
		Status:         memory.Status(row.Status),
		CreatedAt:      row.CreatedAt,
		GenerationMs:   row.GenerationTimeMs,
	}
}

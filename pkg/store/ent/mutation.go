// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mnemolabs/mnemo/pkg/store/ent/memoryrecord"
	"github.com/mnemolabs/mnemo/pkg/store/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeMemoryRecord = "MemoryRecord"
)

// MemoryRecordMutation represents an operation that mutates the MemoryRecord nodes in the graph.
type MemoryRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	conversation_id       *string
	memory_text           *string
	start_sequence        *int
	addstart_sequence     *int
	end_sequence          *int
	addend_sequence       *int
	status                *memoryrecord.Status
	created_at            *time.Time
	generation_time_ms    *int64
	addgeneration_time_ms *int64
	clearedFields         map[string]struct{}
	base                  *int
	clearedbase           bool
	successors            map[int]struct{}
	removedsuccessors     map[int]struct{}
	clearedsuccessors     bool
	done                  bool
	oldValue              func(context.Context) (*MemoryRecord, error)
	predicates            []predicate.MemoryRecord
}

var _ ent.Mutation = (*MemoryRecordMutation)(nil)

// memoryrecordOption allows management of the mutation configuration using functional options.
type memoryrecordOption func(*MemoryRecordMutation)

// newMemoryRecordMutation creates new mutation for the MemoryRecord entity.
func newMemoryRecordMutation(c config, op Op, opts ...memoryrecordOption) *MemoryRecordMutation {
	m := &MemoryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryRecordID sets the ID field of the mutation.
func withMemoryRecordID(id int) memoryrecordOption {
	return func(m *MemoryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryRecord
		)
		m.oldValue = func(ctx context.Context) (*MemoryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryRecord sets the old MemoryRecord of the mutation.
func withMemoryRecord(node *MemoryRecord) memoryrecordOption {
	return func(m *MemoryRecordMutation) {
		m.oldValue = func(context.Context) (*MemoryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MemoryRecordMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MemoryRecordMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MemoryRecordMutation) ResetConversationID() {
	m.conversation_id = nil
}

// SetMemoryText sets the "memory_text" field.
func (m *MemoryRecordMutation) SetMemoryText(s string) {
	m.memory_text = &s
}

// MemoryText returns the value of the "memory_text" field in the mutation.
func (m *MemoryRecordMutation) MemoryText() (r string, exists bool) {
	v := m.memory_text
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryText returns the old "memory_text" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldMemoryText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryText: %w", err)
	}
	return oldValue.MemoryText, nil
}

// ResetMemoryText resets all changes to the "memory_text" field.
func (m *MemoryRecordMutation) ResetMemoryText() {
	m.memory_text = nil
}

// SetStartSequence sets the "start_sequence" field.
func (m *MemoryRecordMutation) SetStartSequence(i int) {
	m.start_sequence = &i
	m.addstart_sequence = nil
}

// StartSequence returns the value of the "start_sequence" field in the mutation.
func (m *MemoryRecordMutation) StartSequence() (r int, exists bool) {
	v := m.start_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldStartSequence returns the old "start_sequence" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldStartSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartSequence: %w", err)
	}
	return oldValue.StartSequence, nil
}

// AddStartSequence adds i to the "start_sequence" field.
func (m *MemoryRecordMutation) AddStartSequence(i int) {
	if m.addstart_sequence != nil {
		*m.addstart_sequence += i
	} else {
		m.addstart_sequence = &i
	}
}

// AddedStartSequence returns the value that was added to the "start_sequence" field in this mutation.
func (m *MemoryRecordMutation) AddedStartSequence() (r int, exists bool) {
	v := m.addstart_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartSequence resets all changes to the "start_sequence" field.
func (m *MemoryRecordMutation) ResetStartSequence() {
	m.start_sequence = nil
	m.addstart_sequence = nil
}

// SetEndSequence sets the "end_sequence" field.
func (m *MemoryRecordMutation) SetEndSequence(i int) {
	m.end_sequence = &i
	m.addend_sequence = nil
}

// EndSequence returns the value of the "end_sequence" field in the mutation.
func (m *MemoryRecordMutation) EndSequence() (r int, exists bool) {
	v := m.end_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldEndSequence returns the old "end_sequence" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldEndSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndSequence: %w", err)
	}
	return oldValue.EndSequence, nil
}

// AddEndSequence adds i to the "end_sequence" field.
func (m *MemoryRecordMutation) AddEndSequence(i int) {
	if m.addend_sequence != nil {
		*m.addend_sequence += i
	} else {
		m.addend_sequence = &i
	}
}

// AddedEndSequence returns the value that was added to the "end_sequence" field in this mutation.
func (m *MemoryRecordMutation) AddedEndSequence() (r int, exists bool) {
	v := m.addend_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndSequence resets all changes to the "end_sequence" field.
func (m *MemoryRecordMutation) ResetEndSequence() {
	m.end_sequence = nil
	m.addend_sequence = nil
}

// SetBaseMemoryID sets the "base_memory_id" field.
func (m *MemoryRecordMutation) SetBaseMemoryID(i int) {
	m.base = &i
}

// BaseMemoryID returns the value of the "base_memory_id" field in the mutation.
func (m *MemoryRecordMutation) BaseMemoryID() (r int, exists bool) {
	v := m.base
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseMemoryID returns the old "base_memory_id" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldBaseMemoryID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseMemoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseMemoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseMemoryID: %w", err)
	}
	return oldValue.BaseMemoryID, nil
}

// ClearBaseMemoryID clears the value of the "base_memory_id" field.
func (m *MemoryRecordMutation) ClearBaseMemoryID() {
	m.base = nil
	m.clearedFields[memoryrecord.FieldBaseMemoryID] = struct{}{}
}

// BaseMemoryIDCleared returns if the "base_memory_id" field was cleared in this mutation.
func (m *MemoryRecordMutation) BaseMemoryIDCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldBaseMemoryID]
	return ok
}

// ResetBaseMemoryID resets all changes to the "base_memory_id" field.
func (m *MemoryRecordMutation) ResetBaseMemoryID() {
	m.base = nil
	delete(m.clearedFields, memoryrecord.FieldBaseMemoryID)
}

// SetStatus sets the "status" field.
func (m *MemoryRecordMutation) SetStatus(value memoryrecord.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MemoryRecordMutation) Status() (r memoryrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldStatus(ctx context.Context) (v memoryrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MemoryRecordMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (m *MemoryRecordMutation) SetGenerationTimeMs(i int64) {
	m.generation_time_ms = &i
	m.addgeneration_time_ms = nil
}

// GenerationTimeMs returns the value of the "generation_time_ms" field in the mutation.
func (m *MemoryRecordMutation) GenerationTimeMs() (r int64, exists bool) {
	v := m.generation_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTimeMs returns the old "generation_time_ms" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldGenerationTimeMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTimeMs: %w", err)
	}
	return oldValue.GenerationTimeMs, nil
}

// AddGenerationTimeMs adds i to the "generation_time_ms" field.
func (m *MemoryRecordMutation) AddGenerationTimeMs(i int64) {
	if m.addgeneration_time_ms != nil {
		*m.addgeneration_time_ms += i
	} else {
		m.addgeneration_time_ms = &i
	}
}

// AddedGenerationTimeMs returns the value that was added to the "generation_time_ms" field in this mutation.
func (m *MemoryRecordMutation) AddedGenerationTimeMs() (r int64, exists bool) {
	v := m.addgeneration_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (m *MemoryRecordMutation) ClearGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	m.clearedFields[memoryrecord.FieldGenerationTimeMs] = struct{}{}
}

// GenerationTimeMsCleared returns if the "generation_time_ms" field was cleared in this mutation.
func (m *MemoryRecordMutation) GenerationTimeMsCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldGenerationTimeMs]
	return ok
}

// ResetGenerationTimeMs resets all changes to the "generation_time_ms" field.
func (m *MemoryRecordMutation) ResetGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	delete(m.clearedFields, memoryrecord.FieldGenerationTimeMs)
}

// SetBaseID sets the "base" edge to the MemoryRecord entity by id.
func (m *MemoryRecordMutation) SetBaseID(id int) {
	m.base = &id
}

// ClearBase clears the "base" edge to the MemoryRecord entity.
func (m *MemoryRecordMutation) ClearBase() {
	m.clearedbase = true
	m.clearedFields[memoryrecord.FieldBaseMemoryID] = struct{}{}
}

// BaseCleared reports if the "base" edge to the MemoryRecord entity was cleared.
func (m *MemoryRecordMutation) BaseCleared() bool {
	return m.BaseMemoryIDCleared() || m.clearedbase
}

// BaseID returns the "base" edge ID in the mutation.
func (m *MemoryRecordMutation) BaseID() (id int, exists bool) {
	if m.base != nil {
		return *m.base, true
	}
	return
}

// BaseIDs returns the "base" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BaseID instead. It exists only for internal usage by the builders.
func (m *MemoryRecordMutation) BaseIDs() (ids []int) {
	if id := m.base; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBase resets all changes to the "base" edge.
func (m *MemoryRecordMutation) ResetBase() {
	m.base = nil
	m.clearedbase = false
}

// AddSuccessorIDs adds the "successors" edge to the MemoryRecord entity by ids.
func (m *MemoryRecordMutation) AddSuccessorIDs(ids ...int) {
	if m.successors == nil {
		m.successors = make(map[int]struct{})
	}
	for i := range ids {
		m.successors[ids[i]] = struct{}{}
	}
}

// ClearSuccessors clears the "successors" edge to the MemoryRecord entity.
func (m *MemoryRecordMutation) ClearSuccessors() {
	m.clearedsuccessors = true
}

// SuccessorsCleared reports if the "successors" edge to the MemoryRecord entity was cleared.
func (m *MemoryRecordMutation) SuccessorsCleared() bool {
	return m.clearedsuccessors
}

// RemoveSuccessorIDs removes the "successors" edge to the MemoryRecord entity by IDs.
func (m *MemoryRecordMutation) RemoveSuccessorIDs(ids ...int) {
	if m.removedsuccessors == nil {
		m.removedsuccessors = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.successors, ids[i])
		m.removedsuccessors[ids[i]] = struct{}{}
	}
}

// RemovedSuccessors returns the removed IDs of the "successors" edge to the MemoryRecord entity.
func (m *MemoryRecordMutation) RemovedSuccessorsIDs() (ids []int) {
	for id := range m.removedsuccessors {
		ids = append(ids, id)
	}
	return
}

// SuccessorsIDs returns the "successors" edge IDs in the mutation.
func (m *MemoryRecordMutation) SuccessorsIDs() (ids []int) {
	for id := range m.successors {
		ids = append(ids, id)
	}
	return
}

// ResetSuccessors resets all changes to the "successors" edge.
func (m *MemoryRecordMutation) ResetSuccessors() {
	m.successors = nil
	m.clearedsuccessors = false
	m.removedsuccessors = nil
}

// Where appends a list predicates to the MemoryRecordMutation builder.
func (m *MemoryRecordMutation) Where(ps ...predicate.MemoryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryRecord).
func (m *MemoryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.conversation_id != nil {
		fields = append(fields, memoryrecord.FieldConversationID)
	}
	if m.memory_text != nil {
		fields = append(fields, memoryrecord.FieldMemoryText)
	}
	if m.start_sequence != nil {
		fields = append(fields, memoryrecord.FieldStartSequence)
	}
	if m.end_sequence != nil {
		fields = append(fields, memoryrecord.FieldEndSequence)
	}
	if m.base != nil {
		fields = append(fields, memoryrecord.FieldBaseMemoryID)
	}
	if m.status != nil {
		fields = append(fields, memoryrecord.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, memoryrecord.FieldCreatedAt)
	}
	if m.generation_time_ms != nil {
		fields = append(fields, memoryrecord.FieldGenerationTimeMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryrecord.FieldConversationID:
		return m.ConversationID()
	case memoryrecord.FieldMemoryText:
		return m.MemoryText()
	case memoryrecord.FieldStartSequence:
		return m.StartSequence()
	case memoryrecord.FieldEndSequence:
		return m.EndSequence()
	case memoryrecord.FieldBaseMemoryID:
		return m.BaseMemoryID()
	case memoryrecord.FieldStatus:
		return m.Status()
	case memoryrecord.FieldCreatedAt:
		return m.CreatedAt()
	case memoryrecord.FieldGenerationTimeMs:
		return m.GenerationTimeMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryrecord.FieldConversationID:
		return m.OldConversationID(ctx)
	case memoryrecord.FieldMemoryText:
		return m.OldMemoryText(ctx)
	case memoryrecord.FieldStartSequence:
		return m.OldStartSequence(ctx)
	case memoryrecord.FieldEndSequence:
		return m.OldEndSequence(ctx)
	case memoryrecord.FieldBaseMemoryID:
		return m.OldBaseMemoryID(ctx)
	case memoryrecord.FieldStatus:
		return m.OldStatus(ctx)
	case memoryrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case memoryrecord.FieldGenerationTimeMs:
		return m.OldGenerationTimeMs(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryrecord.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case memoryrecord.FieldMemoryText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryText(v)
		return nil
	case memoryrecord.FieldStartSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartSequence(v)
		return nil
	case memoryrecord.FieldEndSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndSequence(v)
		return nil
	case memoryrecord.FieldBaseMemoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseMemoryID(v)
		return nil
	case memoryrecord.FieldStatus:
		v, ok := value.(memoryrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case memoryrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case memoryrecord.FieldGenerationTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addstart_sequence != nil {
		fields = append(fields, memoryrecord.FieldStartSequence)
	}
	if m.addend_sequence != nil {
		fields = append(fields, memoryrecord.FieldEndSequence)
	}
	if m.addgeneration_time_ms != nil {
		fields = append(fields, memoryrecord.FieldGenerationTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryrecord.FieldStartSequence:
		return m.AddedStartSequence()
	case memoryrecord.FieldEndSequence:
		return m.AddedEndSequence()
	case memoryrecord.FieldGenerationTimeMs:
		return m.AddedGenerationTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryrecord.FieldStartSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartSequence(v)
		return nil
	case memoryrecord.FieldEndSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndSequence(v)
		return nil
	case memoryrecord.FieldGenerationTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryrecord.FieldBaseMemoryID) {
		fields = append(fields, memoryrecord.FieldBaseMemoryID)
	}
	if m.FieldCleared(memoryrecord.FieldGenerationTimeMs) {
		fields = append(fields, memoryrecord.FieldGenerationTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryRecordMutation) ClearField(name string) error {
	switch name {
	case memoryrecord.FieldBaseMemoryID:
		m.ClearBaseMemoryID()
		return nil
	case memoryrecord.FieldGenerationTimeMs:
		m.ClearGenerationTimeMs()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryRecordMutation) ResetField(name string) error {
	switch name {
	case memoryrecord.FieldConversationID:
		m.ResetConversationID()
		return nil
	case memoryrecord.FieldMemoryText:
		m.ResetMemoryText()
		return nil
	case memoryrecord.FieldStartSequence:
		m.ResetStartSequence()
		return nil
	case memoryrecord.FieldEndSequence:
		m.ResetEndSequence()
		return nil
	case memoryrecord.FieldBaseMemoryID:
		m.ResetBaseMemoryID()
		return nil
	case memoryrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case memoryrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case memoryrecord.FieldGenerationTimeMs:
		m.ResetGenerationTimeMs()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.base != nil {
		edges = append(edges, memoryrecord.EdgeBase)
	}
	if m.successors != nil {
		edges = append(edges, memoryrecord.EdgeSuccessors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case memoryrecord.EdgeBase:
		if id := m.base; id != nil {
			return []ent.Value{*id}
		}
	case memoryrecord.EdgeSuccessors:
		ids := make([]ent.Value, 0, len(m.successors))
		for id := range m.successors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsuccessors != nil {
		edges = append(edges, memoryrecord.EdgeSuccessors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case memoryrecord.EdgeSuccessors:
		ids := make([]ent.Value, 0, len(m.removedsuccessors))
		for id := range m.removedsuccessors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbase {
		edges = append(edges, memoryrecord.EdgeBase)
	}
	if m.clearedsuccessors {
		edges = append(edges, memoryrecord.EdgeSuccessors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case memoryrecord.EdgeBase:
		return m.clearedbase
	case memoryrecord.EdgeSuccessors:
		return m.clearedsuccessors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryRecordMutation) ClearEdge(name string) error {
	switch name {
	case memoryrecord.EdgeBase:
		m.ClearBase()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryRecordMutation) ResetEdge(name string) error {
	switch name {
	case memoryrecord.EdgeBase:
		m.ResetBase()
		return nil
	case memoryrecord.EdgeSuccessors:
		m.ResetSuccessors()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord edge %s", name)
}

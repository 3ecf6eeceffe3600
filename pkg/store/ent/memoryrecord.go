// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mnemolabs/mnemo/pkg/store/ent/memoryrecord"
)

// MemoryRecord is the model entity for the MemoryRecord schema.
type MemoryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// MemoryText holds the value of the "memory_text" field.
	MemoryText string `json:"memory_text,omitempty"`
	// StartSequence holds the value of the "start_sequence" field.
	StartSequence int `json:"start_sequence,omitempty"`
	// EndSequence holds the value of the "end_sequence" field.
	EndSequence int `json:"end_sequence,omitempty"`
	// BaseMemoryID holds the value of the "base_memory_id" field.
	BaseMemoryID *int `json:"base_memory_id,omitempty"`
	// Status holds the value of the "status" field.
	Status memoryrecord.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// GenerationTimeMs holds the value of the "generation_time_ms" field.
	GenerationTimeMs *int64 `json:"generation_time_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MemoryRecordQuery when eager-loading is set.
	Edges        MemoryRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MemoryRecordEdges holds the relations/edges for other nodes in the graph.
type MemoryRecordEdges struct {
	// Base holds the value of the base edge.
	Base *MemoryRecord `json:"base,omitempty"`
	// Successors holds the value of the successors edge.
	Successors []*MemoryRecord `json:"successors,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BaseOrErr returns the Base value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MemoryRecordEdges) BaseOrErr() (*MemoryRecord, error) {
	if e.Base != nil {
		return e.Base, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: memoryrecord.Label}
	}
	return nil, &NotLoadedError{edge: "base"}
}

// SuccessorsOrErr returns the Successors value or an error if the edge
// was not loaded in eager-loading.
func (e MemoryRecordEdges) SuccessorsOrErr() ([]*MemoryRecord, error) {
	if e.loadedTypes[1] {
		return e.Successors, nil
	}
	return nil, &NotLoadedError{edge: "successors"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryrecord.FieldID, memoryrecord.FieldStartSequence, memoryrecord.FieldEndSequence, memoryrecord.FieldBaseMemoryID, memoryrecord.FieldGenerationTimeMs:
			values[i] = new(sql.NullInt64)
		case memoryrecord.FieldConversationID, memoryrecord.FieldMemoryText, memoryrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case memoryrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryRecord fields.
func (_m *MemoryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case memoryrecord.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case memoryrecord.FieldMemoryText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memory_text", values[i])
			} else if value.Valid {
				_m.MemoryText = value.String
			}
		case memoryrecord.FieldStartSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_sequence", values[i])
			} else if value.Valid {
				_m.StartSequence = int(value.Int64)
			}
		case memoryrecord.FieldEndSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_sequence", values[i])
			} else if value.Valid {
				_m.EndSequence = int(value.Int64)
			}
		case memoryrecord.FieldBaseMemoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field base_memory_id", values[i])
			} else if value.Valid {
				_m.BaseMemoryID = new(int)
				*_m.BaseMemoryID = int(value.Int64)
			}
		case memoryrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = memoryrecord.Status(value.String)
			}
		case memoryrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case memoryrecord.FieldGenerationTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_time_ms", values[i])
			} else if value.Valid {
				_m.GenerationTimeMs = new(int64)
				*_m.GenerationTimeMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBase queries the "base" edge of the MemoryRecord entity.
func (_m *MemoryRecord) QueryBase() *MemoryRecordQuery {
	return NewMemoryRecordClient(_m.config).QueryBase(_m)
}

// QuerySuccessors queries the "successors" edge of the MemoryRecord entity.
func (_m *MemoryRecord) QuerySuccessors() *MemoryRecordQuery {
	return NewMemoryRecordClient(_m.config).QuerySuccessors(_m)
}

// Update returns a builder for updating this MemoryRecord.
// Note that you need to call MemoryRecord.Unwrap() before calling this method if this MemoryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryRecord) Update() *MemoryRecordUpdateOne {
	return NewMemoryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryRecord) Unwrap() *MemoryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("memory_text=")
	builder.WriteString(_m.MemoryText)
	builder.WriteString(", ")
	builder.WriteString("start_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartSequence))
	builder.WriteString(", ")
	builder.WriteString("end_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndSequence))
	builder.WriteString(", ")
	if v := _m.BaseMemoryID; v != nil {
		builder.WriteString("base_memory_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.GenerationTimeMs; v != nil {
		builder.WriteString("generation_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MemoryRecords is a parsable slice of MemoryRecord.
type MemoryRecords []*MemoryRecord

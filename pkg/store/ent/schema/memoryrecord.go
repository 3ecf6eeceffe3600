package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryRecord holds the schema definition for the MemoryRecord entity.
// One row per summarization attempt, append-only; rows chain back to the
// completed record they extend via base_memory_id.
type MemoryRecord struct {
	ent.Schema
}

// Fields of the MemoryRecord.
func (MemoryRecord) Fields() []ent.Field {
	return []ent.Field{
		// conversation_id references the external message log
		field.String("conversation_id").
			NotEmpty().
			Immutable(),

		// memory_text is the JSON-encoded StructuredMemory. Empty is
		// allowed only while the row is not completed.
		field.Text("memory_text").
			Default(""),

		// start_sequence and end_sequence are the inclusive message
		// index range this record summarizes
		field.Int("start_sequence").
			NonNegative().
			Immutable(),

		field.Int("end_sequence").
			NonNegative().
			Immutable(),

		// base_memory_id points at the completed record this one
		// supersedes; nil for the first summary of a conversation
		field.Int("base_memory_id").
			Optional().
			Nillable().
			Immutable(),

		field.Enum("status").
			Values("processing", "completed", "failed"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),

		// generation_time_ms is the summarizer wall-clock duration,
		// set only on terminal states
		field.Int64("generation_time_ms").
			Optional().
			Nillable(),
	}
}

// Indexes of the MemoryRecord.
func (MemoryRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Latest-completed lookups filter on conversation and status,
		// ordered by end_sequence
		index.Fields("conversation_id", "status", "end_sequence"),

		index.Fields("conversation_id"),
	}
}

// Edges of the MemoryRecord.
func (MemoryRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// Base edge: each record extends at most one completed record
		edge.To("base", MemoryRecord.Type).
			Field("base_memory_id").
			Unique().
			Immutable(),

		// Successors edge: records that extend this one
		edge.From("successors", MemoryRecord.Type).
			Ref("base"),
	}
}

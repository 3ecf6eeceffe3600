// Code generated by ent, DO NOT EDIT.

package memoryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mnemolabs/mnemo/pkg/store/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldConversationID, v))
}

// MemoryText applies equality check predicate on the "memory_text" field. It's identical to MemoryTextEQ.
func MemoryText(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldMemoryText, v))
}

// StartSequence applies equality check predicate on the "start_sequence" field. It's identical to StartSequenceEQ.
func StartSequence(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldStartSequence, v))
}

// EndSequence applies equality check predicate on the "end_sequence" field. It's identical to EndSequenceEQ.
func EndSequence(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldEndSequence, v))
}

// BaseMemoryID applies equality check predicate on the "base_memory_id" field. It's identical to BaseMemoryIDEQ.
func BaseMemoryID(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldBaseMemoryID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// GenerationTimeMs applies equality check predicate on the "generation_time_ms" field. It's identical to GenerationTimeMsEQ.
func GenerationTimeMs(v int64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldConversationID, v))
}

// MemoryTextEQ applies the EQ predicate on the "memory_text" field.
func MemoryTextEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldMemoryText, v))
}

// MemoryTextNEQ applies the NEQ predicate on the "memory_text" field.
func MemoryTextNEQ(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldMemoryText, v))
}

// MemoryTextIn applies the In predicate on the "memory_text" field.
func MemoryTextIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldMemoryText, vs...))
}

// MemoryTextNotIn applies the NotIn predicate on the "memory_text" field.
func MemoryTextNotIn(vs ...string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldMemoryText, vs...))
}

// MemoryTextGT applies the GT predicate on the "memory_text" field.
func MemoryTextGT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldMemoryText, v))
}

// MemoryTextGTE applies the GTE predicate on the "memory_text" field.
func MemoryTextGTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldMemoryText, v))
}

// MemoryTextLT applies the LT predicate on the "memory_text" field.
func MemoryTextLT(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldMemoryText, v))
}

// MemoryTextLTE applies the LTE predicate on the "memory_text" field.
func MemoryTextLTE(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldMemoryText, v))
}

// MemoryTextContains applies the Contains predicate on the "memory_text" field.
func MemoryTextContains(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContains(FieldMemoryText, v))
}

// MemoryTextHasPrefix applies the HasPrefix predicate on the "memory_text" field.
func MemoryTextHasPrefix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasPrefix(FieldMemoryText, v))
}

// MemoryTextHasSuffix applies the HasSuffix predicate on the "memory_text" field.
func MemoryTextHasSuffix(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldHasSuffix(FieldMemoryText, v))
}

// MemoryTextEqualFold applies the EqualFold predicate on the "memory_text" field.
func MemoryTextEqualFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEqualFold(FieldMemoryText, v))
}

// MemoryTextContainsFold applies the ContainsFold predicate on the "memory_text" field.
func MemoryTextContainsFold(v string) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldContainsFold(FieldMemoryText, v))
}

// StartSequenceEQ applies the EQ predicate on the "start_sequence" field.
func StartSequenceEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldStartSequence, v))
}

// StartSequenceNEQ applies the NEQ predicate on the "start_sequence" field.
func StartSequenceNEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldStartSequence, v))
}

// StartSequenceIn applies the In predicate on the "start_sequence" field.
func StartSequenceIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldStartSequence, vs...))
}

// StartSequenceNotIn applies the NotIn predicate on the "start_sequence" field.
func StartSequenceNotIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldStartSequence, vs...))
}

// StartSequenceGT applies the GT predicate on the "start_sequence" field.
func StartSequenceGT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldStartSequence, v))
}

// StartSequenceGTE applies the GTE predicate on the "start_sequence" field.
func StartSequenceGTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldStartSequence, v))
}

// StartSequenceLT applies the LT predicate on the "start_sequence" field.
func StartSequenceLT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldStartSequence, v))
}

// StartSequenceLTE applies the LTE predicate on the "start_sequence" field.
func StartSequenceLTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldStartSequence, v))
}

// EndSequenceEQ applies the EQ predicate on the "end_sequence" field.
func EndSequenceEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldEndSequence, v))
}

// EndSequenceNEQ applies the NEQ predicate on the "end_sequence" field.
func EndSequenceNEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldEndSequence, v))
}

// EndSequenceIn applies the In predicate on the "end_sequence" field.
func EndSequenceIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldEndSequence, vs...))
}

// EndSequenceNotIn applies the NotIn predicate on the "end_sequence" field.
func EndSequenceNotIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldEndSequence, vs...))
}

// EndSequenceGT applies the GT predicate on the "end_sequence" field.
func EndSequenceGT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldEndSequence, v))
}

// EndSequenceGTE applies the GTE predicate on the "end_sequence" field.
func EndSequenceGTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldEndSequence, v))
}

// EndSequenceLT applies the LT predicate on the "end_sequence" field.
func EndSequenceLT(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldEndSequence, v))
}

// EndSequenceLTE applies the LTE predicate on the "end_sequence" field.
func EndSequenceLTE(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldEndSequence, v))
}

// BaseMemoryIDEQ applies the EQ predicate on the "base_memory_id" field.
func BaseMemoryIDEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldBaseMemoryID, v))
}

// BaseMemoryIDNEQ applies the NEQ predicate on the "base_memory_id" field.
func BaseMemoryIDNEQ(v int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldBaseMemoryID, v))
}

// BaseMemoryIDIn applies the In predicate on the "base_memory_id" field.
func BaseMemoryIDIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldBaseMemoryID, vs...))
}

// BaseMemoryIDNotIn applies the NotIn predicate on the "base_memory_id" field.
func BaseMemoryIDNotIn(vs ...int) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldBaseMemoryID, vs...))
}

// BaseMemoryIDIsNil applies the IsNil predicate on the "base_memory_id" field.
func BaseMemoryIDIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldBaseMemoryID))
}

// BaseMemoryIDNotNil applies the NotNil predicate on the "base_memory_id" field.
func BaseMemoryIDNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldBaseMemoryID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// GenerationTimeMsEQ applies the EQ predicate on the "generation_time_ms" field.
func GenerationTimeMsEQ(v int64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsNEQ applies the NEQ predicate on the "generation_time_ms" field.
func GenerationTimeMsNEQ(v int64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsIn applies the In predicate on the "generation_time_ms" field.
func GenerationTimeMsIn(vs ...int64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsNotIn applies the NotIn predicate on the "generation_time_ms" field.
func GenerationTimeMsNotIn(vs ...int64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsGT applies the GT predicate on the "generation_time_ms" field.
func GenerationTimeMsGT(v int64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsGTE applies the GTE predicate on the "generation_time_ms" field.
func GenerationTimeMsGTE(v int64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldGTE(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLT applies the LT predicate on the "generation_time_ms" field.
func GenerationTimeMsLT(v int64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLTE applies the LTE predicate on the "generation_time_ms" field.
func GenerationTimeMsLTE(v int64) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldLTE(FieldGenerationTimeMs, v))
}

// GenerationTimeMsIsNil applies the IsNil predicate on the "generation_time_ms" field.
func GenerationTimeMsIsNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldIsNull(FieldGenerationTimeMs))
}

// GenerationTimeMsNotNil applies the NotNil predicate on the "generation_time_ms" field.
func GenerationTimeMsNotNil() predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.FieldNotNull(FieldGenerationTimeMs))
}

// HasBase applies the HasEdge predicate on the "base" edge.
func HasBase() predicate.MemoryRecord {
	return predicate.MemoryRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, BaseTable, BaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBaseWith applies the HasEdge predicate on the "base" edge with a given conditions (other predicates).
func HasBaseWith(preds ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(func(s *sql.Selector) {
		step := newBaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuccessors applies the HasEdge predicate on the "successors" edge.
func HasSuccessors() predicate.MemoryRecord {
	return predicate.MemoryRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, SuccessorsTable, SuccessorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuccessorsWith applies the HasEdge predicate on the "successors" edge with a given conditions (other predicates).
func HasSuccessorsWith(preds ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(func(s *sql.Selector) {
		step := newSuccessorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryRecord) predicate.MemoryRecord {
	return predicate.MemoryRecord(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mnemolabs/mnemo/pkg/store/ent/memoryrecord"
	"github.com/mnemolabs/mnemo/pkg/store/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	memoryrecordFields := schema.MemoryRecord{}.Fields()
	_ = memoryrecordFields
	// memoryrecordDescConversationID is the schema descriptor for conversation_id field.
	memoryrecordDescConversationID := memoryrecordFields[0].Descriptor()
	// memoryrecord.ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	memoryrecord.ConversationIDValidator = memoryrecordDescConversationID.Validators[0].(func(string) error)
	// memoryrecordDescMemoryText is the schema descriptor for memory_text field.
	memoryrecordDescMemoryText := memoryrecordFields[1].Descriptor()
	// memoryrecord.DefaultMemoryText holds the default value on creation for the memory_text field.
	memoryrecord.DefaultMemoryText = memoryrecordDescMemoryText.Default.(string)
	// memoryrecordDescStartSequence is the schema descriptor for start_sequence field.
	memoryrecordDescStartSequence := memoryrecordFields[2].Descriptor()
	// memoryrecord.StartSequenceValidator is a validator for the "start_sequence" field. It is called by the builders before save.
	memoryrecord.StartSequenceValidator = memoryrecordDescStartSequence.Validators[0].(func(int) error)
	// memoryrecordDescEndSequence is the schema descriptor for end_sequence field.
	memoryrecordDescEndSequence := memoryrecordFields[3].Descriptor()
	// memoryrecord.EndSequenceValidator is a validator for the "end_sequence" field. It is called by the builders before save.
	memoryrecord.EndSequenceValidator = memoryrecordDescEndSequence.Validators[0].(func(int) error)
	// memoryrecordDescCreatedAt is the schema descriptor for created_at field.
	memoryrecordDescCreatedAt := memoryrecordFields[6].Descriptor()
	// memoryrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryrecord.DefaultCreatedAt = memoryrecordDescCreatedAt.Default.(func() time.Time)
}

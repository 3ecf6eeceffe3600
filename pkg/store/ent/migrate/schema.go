// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MemoryRecordsColumns holds the columns for the "memory_records" table.
	MemoryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "memory_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "start_sequence", Type: field.TypeInt},
		{Name: "end_sequence", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processing", "completed", "failed"}},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "generation_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "base_memory_id", Type: field.TypeInt, Nullable: true},
	}
	// MemoryRecordsTable holds the schema information for the "memory_records" table.
	MemoryRecordsTable = &schema.Table{
		Name:       "memory_records",
		Columns:    MemoryRecordsColumns,
		PrimaryKey: []*schema.Column{MemoryRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memory_records_memory_records_base",
				Columns:    []*schema.Column{MemoryRecordsColumns[8]},
				RefColumns: []*schema.Column{MemoryRecordsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memoryrecord_conversation_id_status_end_sequence",
				Unique:  false,
				Columns: []*schema.Column{MemoryRecordsColumns[1], MemoryRecordsColumns[5], MemoryRecordsColumns[4]},
			},
			{
				Name:    "memoryrecord_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{MemoryRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MemoryRecordsTable,
	}
)

func init() {
	MemoryRecordsTable.ForeignKeys[0].RefTable = MemoryRecordsTable
}

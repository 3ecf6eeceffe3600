// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MemoryRecord is the predicate function for memoryrecord builders.
type MemoryRecord func(*sql.Selector)

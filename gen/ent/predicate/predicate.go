// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// DocumentFile is the predicate function for documentfile builders.
type DocumentFile func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// ParseJob is the predicate function for parsejob builders.
type ParseJob func(*sql.Selector)

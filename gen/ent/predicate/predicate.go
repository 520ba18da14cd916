// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// LedgerEntry is the predicate function for ledgerentry builders.
type LedgerEntry func(*sql.Selector)

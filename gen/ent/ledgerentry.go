// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tidebooks/tidebooks/gen/ent/company"
	"github.com/tidebooks/tidebooks/gen/ent/ledgerentry"
)

// LedgerEntry is the model entity for the LedgerEntry schema.
type LedgerEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// EntryDate holds the value of the "entry_date" field.
	EntryDate string `json:"entry_date,omitempty"`
	// StoreName holds the value of the "store_name" field.
	StoreName string `json:"store_name,omitempty"`
	// Total holds the value of the "total" field.
	Total float64 `json:"total,omitempty"`
	// Items holds the value of the "items" field.
	Items json.RawMessage `json:"items,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LedgerEntryQuery when eager-loading is set.
	Edges        LedgerEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LedgerEntryEdges holds the relations/edges for other nodes in the graph.
type LedgerEntryEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LedgerEntryEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e LedgerEntryEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LedgerEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ledgerentry.FieldItems:
			values[i] = new([]byte)
		case ledgerentry.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case ledgerentry.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case ledgerentry.FieldCompanyName, ledgerentry.FieldEntryDate, ledgerentry.FieldStoreName:
			values[i] = new(sql.NullString)
		case ledgerentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case ledgerentry.FieldID, ledgerentry.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LedgerEntry fields.
func (_m *LedgerEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ledgerentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ledgerentry.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case ledgerentry.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case ledgerentry.FieldEntryDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entry_date", values[i])
			} else if value.Valid {
				_m.EntryDate = value.String
			}
		case ledgerentry.FieldStoreName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store_name", values[i])
			} else if value.Valid {
				_m.StoreName = value.String
			}
		case ledgerentry.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		case ledgerentry.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case ledgerentry.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case ledgerentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LedgerEntry.
// This includes values selected through modifiers, order, etc.
func (_m *LedgerEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the LedgerEntry entity.
func (_m *LedgerEntry) QueryCompany() *CompanyQuery {
	return NewLedgerEntryClient(_m.config).QueryCompany(_m)
}

// QueryJobs queries the "jobs" edge of the LedgerEntry entity.
func (_m *LedgerEntry) QueryJobs() *ExtractJobQuery {
	return NewLedgerEntryClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this LedgerEntry.
// Note that you need to call LedgerEntry.Unwrap() before calling this method if this LedgerEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LedgerEntry) Update() *LedgerEntryUpdateOne {
	return NewLedgerEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LedgerEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LedgerEntry) Unwrap() *LedgerEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LedgerEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LedgerEntry) String() string {
	var builder strings.Builder
	builder.WriteString("LedgerEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("entry_date=")
	builder.WriteString(_m.EntryDate)
	builder.WriteString(", ")
	builder.WriteString("store_name=")
	builder.WriteString(_m.StoreName)
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LedgerEntries is a parsable slice of LedgerEntry.
type LedgerEntries []*LedgerEntry

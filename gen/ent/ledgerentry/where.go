// Code generated by ent, DO NOT EDIT.

package ledgerentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tidebooks/tidebooks/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCompanyName, v))
}

// EntryDate applies equality check predicate on the "entry_date" field. It's identical to EntryDateEQ.
func EntryDate(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldEntryDate, v))
}

// StoreName applies equality check predicate on the "store_name" field. It's identical to StoreNameEQ.
func StoreName(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldStoreName, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldTotal, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContainsFold(FieldCompanyName, v))
}

// EntryDateEQ applies the EQ predicate on the "entry_date" field.
func EntryDateEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldEntryDate, v))
}

// EntryDateNEQ applies the NEQ predicate on the "entry_date" field.
func EntryDateNEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldEntryDate, v))
}

// EntryDateIn applies the In predicate on the "entry_date" field.
func EntryDateIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldEntryDate, vs...))
}

// EntryDateNotIn applies the NotIn predicate on the "entry_date" field.
func EntryDateNotIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldEntryDate, vs...))
}

// EntryDateGT applies the GT predicate on the "entry_date" field.
func EntryDateGT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldEntryDate, v))
}

// EntryDateGTE applies the GTE predicate on the "entry_date" field.
func EntryDateGTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldEntryDate, v))
}

// EntryDateLT applies the LT predicate on the "entry_date" field.
func EntryDateLT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldEntryDate, v))
}

// EntryDateLTE applies the LTE predicate on the "entry_date" field.
func EntryDateLTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldEntryDate, v))
}

// EntryDateContains applies the Contains predicate on the "entry_date" field.
func EntryDateContains(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContains(FieldEntryDate, v))
}

// EntryDateHasPrefix applies the HasPrefix predicate on the "entry_date" field.
func EntryDateHasPrefix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasPrefix(FieldEntryDate, v))
}

// EntryDateHasSuffix applies the HasSuffix predicate on the "entry_date" field.
func EntryDateHasSuffix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasSuffix(FieldEntryDate, v))
}

// EntryDateEqualFold applies the EqualFold predicate on the "entry_date" field.
func EntryDateEqualFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEqualFold(FieldEntryDate, v))
}

// EntryDateContainsFold applies the ContainsFold predicate on the "entry_date" field.
func EntryDateContainsFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContainsFold(FieldEntryDate, v))
}

// StoreNameEQ applies the EQ predicate on the "store_name" field.
func StoreNameEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldStoreName, v))
}

// StoreNameNEQ applies the NEQ predicate on the "store_name" field.
func StoreNameNEQ(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldStoreName, v))
}

// StoreNameIn applies the In predicate on the "store_name" field.
func StoreNameIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldStoreName, vs...))
}

// StoreNameNotIn applies the NotIn predicate on the "store_name" field.
func StoreNameNotIn(vs ...string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldStoreName, vs...))
}

// StoreNameGT applies the GT predicate on the "store_name" field.
func StoreNameGT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldStoreName, v))
}

// StoreNameGTE applies the GTE predicate on the "store_name" field.
func StoreNameGTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldStoreName, v))
}

// StoreNameLT applies the LT predicate on the "store_name" field.
func StoreNameLT(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldStoreName, v))
}

// StoreNameLTE applies the LTE predicate on the "store_name" field.
func StoreNameLTE(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldStoreName, v))
}

// StoreNameContains applies the Contains predicate on the "store_name" field.
func StoreNameContains(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContains(FieldStoreName, v))
}

// StoreNameHasPrefix applies the HasPrefix predicate on the "store_name" field.
func StoreNameHasPrefix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasPrefix(FieldStoreName, v))
}

// StoreNameHasSuffix applies the HasSuffix predicate on the "store_name" field.
func StoreNameHasSuffix(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldHasSuffix(FieldStoreName, v))
}

// StoreNameEqualFold applies the EqualFold predicate on the "store_name" field.
func StoreNameEqualFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEqualFold(FieldStoreName, v))
}

// StoreNameContainsFold applies the ContainsFold predicate on the "store_name" field.
func StoreNameContainsFold(v string) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldContainsFold(FieldStoreName, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldTotal, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.LedgerEntry {
	return predicate.LedgerEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.LedgerEntry {
	return predicate.LedgerEntry(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.LedgerEntry {
	return predicate.LedgerEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.LedgerEntry {
	return predicate.LedgerEntry(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LedgerEntry) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LedgerEntry) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LedgerEntry) predicate.LedgerEntry {
	return predicate.LedgerEntry(sql.NotPredicates(p))
}

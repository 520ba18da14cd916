// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tidebooks/tidebooks/gen/ent/company"
	"github.com/tidebooks/tidebooks/gen/ent/extractjob"
	"github.com/tidebooks/tidebooks/gen/ent/ledgerentry"
	"github.com/tidebooks/tidebooks/gen/ent/predicate"
)

// LedgerEntryUpdate is the builder for updating LedgerEntry entities.
type LedgerEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LedgerEntryMutation
}

// Where appends a list predicates to the LedgerEntryUpdate builder.
func (_u *LedgerEntryUpdate) Where(ps ...predicate.LedgerEntry) *LedgerEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *LedgerEntryUpdate) SetCompanyID(v uuid.UUID) *LedgerEntryUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableCompanyID(v *uuid.UUID) *LedgerEntryUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LedgerEntryUpdate) SetCompanyName(v string) *LedgerEntryUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableCompanyName(v *string) *LedgerEntryUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetEntryDate sets the "entry_date" field.
func (_u *LedgerEntryUpdate) SetEntryDate(v string) *LedgerEntryUpdate {
	_u.mutation.SetEntryDate(v)
	return _u
}

// SetNillableEntryDate sets the "entry_date" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableEntryDate(v *string) *LedgerEntryUpdate {
	if v != nil {
		_u.SetEntryDate(*v)
	}
	return _u
}

// SetStoreName sets the "store_name" field.
func (_u *LedgerEntryUpdate) SetStoreName(v string) *LedgerEntryUpdate {
	_u.mutation.SetStoreName(v)
	return _u
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableStoreName(v *string) *LedgerEntryUpdate {
	if v != nil {
		_u.SetStoreName(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *LedgerEntryUpdate) SetTotal(v float64) *LedgerEntryUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableTotal(v *float64) *LedgerEntryUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *LedgerEntryUpdate) AddTotal(v float64) *LedgerEntryUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetItems sets the "items" field.
func (_u *LedgerEntryUpdate) SetItems(v json.RawMessage) *LedgerEntryUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *LedgerEntryUpdate) AppendItems(v json.RawMessage) *LedgerEntryUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *LedgerEntryUpdate) SetNeedsReview(v bool) *LedgerEntryUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableNeedsReview(v *bool) *LedgerEntryUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *LedgerEntryUpdate) SetCompany(v *Company) *LedgerEntryUpdate {
	return _u.SetCompanyID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *LedgerEntryUpdate) AddJobIDs(ids ...uuid.UUID) *LedgerEntryUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *LedgerEntryUpdate) AddJobs(v ...*ExtractJob) *LedgerEntryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_u *LedgerEntryUpdate) Mutation() *LedgerEntryMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *LedgerEntryUpdate) ClearCompany() *LedgerEntryUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *LedgerEntryUpdate) ClearJobs() *LedgerEntryUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *LedgerEntryUpdate) RemoveJobIDs(ids ...uuid.UUID) *LedgerEntryUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *LedgerEntryUpdate) RemoveJobs(v ...*ExtractJob) *LedgerEntryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LedgerEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LedgerEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEntryUpdate) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := ledgerentry.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntryDate(); ok {
		if err := ledgerentry.EntryDateValidator(v); err != nil {
			return &ValidationError{Name: "entry_date", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.entry_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoreName(); ok {
		if err := ledgerentry.StoreNameValidator(v); err != nil {
			return &ValidationError{Name: "store_name", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.store_name": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.company"`)
	}
	return nil
}

func (_u *LedgerEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerentry.Table, ledgerentry.Columns, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(ledgerentry.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntryDate(); ok {
		_spec.SetField(ledgerentry.FieldEntryDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoreName(); ok {
		_spec.SetField(ledgerentry.FieldStoreName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(ledgerentry.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(ledgerentry.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(ledgerentry.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ledgerentry.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(ledgerentry.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.CompanyTable,
			Columns: []string{ledgerentry.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.CompanyTable,
			Columns: []string{ledgerentry.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ledgerentry.JobsTable,
			Columns: []string{ledgerentry.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ledgerentry.JobsTable,
			Columns: []string{ledgerentry.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ledgerentry.JobsTable,
			Columns: []string{ledgerentry.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LedgerEntryUpdateOne is the builder for updating a single LedgerEntry entity.
type LedgerEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LedgerEntryMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *LedgerEntryUpdateOne) SetCompanyID(v uuid.UUID) *LedgerEntryUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableCompanyID(v *uuid.UUID) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LedgerEntryUpdateOne) SetCompanyName(v string) *LedgerEntryUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableCompanyName(v *string) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetEntryDate sets the "entry_date" field.
func (_u *LedgerEntryUpdateOne) SetEntryDate(v string) *LedgerEntryUpdateOne {
	_u.mutation.SetEntryDate(v)
	return _u
}

// SetNillableEntryDate sets the "entry_date" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableEntryDate(v *string) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetEntryDate(*v)
	}
	return _u
}

// SetStoreName sets the "store_name" field.
func (_u *LedgerEntryUpdateOne) SetStoreName(v string) *LedgerEntryUpdateOne {
	_u.mutation.SetStoreName(v)
	return _u
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableStoreName(v *string) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetStoreName(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *LedgerEntryUpdateOne) SetTotal(v float64) *LedgerEntryUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableTotal(v *float64) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *LedgerEntryUpdateOne) AddTotal(v float64) *LedgerEntryUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetItems sets the "items" field.
func (_u *LedgerEntryUpdateOne) SetItems(v json.RawMessage) *LedgerEntryUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *LedgerEntryUpdateOne) AppendItems(v json.RawMessage) *LedgerEntryUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *LedgerEntryUpdateOne) SetNeedsReview(v bool) *LedgerEntryUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableNeedsReview(v *bool) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *LedgerEntryUpdateOne) SetCompany(v *Company) *LedgerEntryUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *LedgerEntryUpdateOne) AddJobIDs(ids ...uuid.UUID) *LedgerEntryUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *LedgerEntryUpdateOne) AddJobs(v ...*ExtractJob) *LedgerEntryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_u *LedgerEntryUpdateOne) Mutation() *LedgerEntryMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *LedgerEntryUpdateOne) ClearCompany() *LedgerEntryUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *LedgerEntryUpdateOne) ClearJobs() *LedgerEntryUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *LedgerEntryUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *LedgerEntryUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *LedgerEntryUpdateOne) RemoveJobs(v ...*ExtractJob) *LedgerEntryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the LedgerEntryUpdate builder.
func (_u *LedgerEntryUpdateOne) Where(ps ...predicate.LedgerEntry) *LedgerEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LedgerEntryUpdateOne) Select(field string, fields ...string) *LedgerEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LedgerEntry entity.
func (_u *LedgerEntryUpdateOne) Save(ctx context.Context) (*LedgerEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEntryUpdateOne) SaveX(ctx context.Context) *LedgerEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LedgerEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEntryUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := ledgerentry.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntryDate(); ok {
		if err := ledgerentry.EntryDateValidator(v); err != nil {
			return &ValidationError{Name: "entry_date", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.entry_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoreName(); ok {
		if err := ledgerentry.StoreNameValidator(v); err != nil {
			return &ValidationError{Name: "store_name", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.store_name": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.company"`)
	}
	return nil
}

func (_u *LedgerEntryUpdateOne) sqlSave(ctx context.Context) (_node *LedgerEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerentry.Table, ledgerentry.Columns, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LedgerEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ledgerentry.FieldID)
		for _, f := range fields {
			if !ledgerentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ledgerentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(ledgerentry.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntryDate(); ok {
		_spec.SetField(ledgerentry.FieldEntryDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoreName(); ok {
		_spec.SetField(ledgerentry.FieldStoreName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(ledgerentry.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(ledgerentry.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(ledgerentry.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ledgerentry.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(ledgerentry.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.CompanyTable,
			Columns: []string{ledgerentry.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.CompanyTable,
			Columns: []string{ledgerentry.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ledgerentry.JobsTable,
			Columns: []string{ledgerentry.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ledgerentry.JobsTable,
			Columns: []string{ledgerentry.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ledgerentry.JobsTable,
			Columns: []string{ledgerentry.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LedgerEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

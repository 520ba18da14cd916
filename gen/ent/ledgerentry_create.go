// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tidebooks/tidebooks/gen/ent/company"
	"github.com/tidebooks/tidebooks/gen/ent/extractjob"
	"github.com/tidebooks/tidebooks/gen/ent/ledgerentry"
)

// LedgerEntryCreate is the builder for creating a LedgerEntry entity.
type LedgerEntryCreate struct {
	config
	mutation *LedgerEntryMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *LedgerEntryCreate) SetCompanyID(v uuid.UUID) *LedgerEntryCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *LedgerEntryCreate) SetCompanyName(v string) *LedgerEntryCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetEntryDate sets the "entry_date" field.
func (_c *LedgerEntryCreate) SetEntryDate(v string) *LedgerEntryCreate {
	_c.mutation.SetEntryDate(v)
	return _c
}

// SetStoreName sets the "store_name" field.
func (_c *LedgerEntryCreate) SetStoreName(v string) *LedgerEntryCreate {
	_c.mutation.SetStoreName(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *LedgerEntryCreate) SetTotal(v float64) *LedgerEntryCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *LedgerEntryCreate) SetItems(v json.RawMessage) *LedgerEntryCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *LedgerEntryCreate) SetNeedsReview(v bool) *LedgerEntryCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *LedgerEntryCreate) SetNillableNeedsReview(v *bool) *LedgerEntryCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LedgerEntryCreate) SetCreatedAt(v time.Time) *LedgerEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LedgerEntryCreate) SetNillableCreatedAt(v *time.Time) *LedgerEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LedgerEntryCreate) SetID(v uuid.UUID) *LedgerEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LedgerEntryCreate) SetNillableID(v *uuid.UUID) *LedgerEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *LedgerEntryCreate) SetCompany(v *Company) *LedgerEntryCreate {
	return _c.SetCompanyID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *LedgerEntryCreate) AddJobIDs(ids ...uuid.UUID) *LedgerEntryCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *LedgerEntryCreate) AddJobs(v ...*ExtractJob) *LedgerEntryCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_c *LedgerEntryCreate) Mutation() *LedgerEntryMutation {
	return _c.mutation
}

// Save creates the LedgerEntry in the database.
func (_c *LedgerEntryCreate) Save(ctx context.Context) (*LedgerEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LedgerEntryCreate) SaveX(ctx context.Context) *LedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LedgerEntryCreate) defaults() {
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := ledgerentry.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ledgerentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ledgerentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LedgerEntryCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "LedgerEntry.company_id"`)}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "LedgerEntry.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := ledgerentry.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntryDate(); !ok {
		return &ValidationError{Name: "entry_date", err: errors.New(`ent: missing required field "LedgerEntry.entry_date"`)}
	}
	if v, ok := _c.mutation.EntryDate(); ok {
		if err := ledgerentry.EntryDateValidator(v); err != nil {
			return &ValidationError{Name: "entry_date", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.entry_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoreName(); !ok {
		return &ValidationError{Name: "store_name", err: errors.New(`ent: missing required field "LedgerEntry.store_name"`)}
	}
	if v, ok := _c.mutation.StoreName(); ok {
		if err := ledgerentry.StoreNameValidator(v); err != nil {
			return &ValidationError{Name: "store_name", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.store_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "LedgerEntry.total"`)}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "LedgerEntry.items"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "LedgerEntry.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LedgerEntry.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "LedgerEntry.company"`)}
	}
	return nil
}

func (_c *LedgerEntryCreate) sqlSave(ctx context.Context) (*LedgerEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LedgerEntryCreate) createSpec() (*LedgerEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LedgerEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ledgerentry.Table, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(ledgerentry.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.EntryDate(); ok {
		_spec.SetField(ledgerentry.FieldEntryDate, field.TypeString, value)
		_node.EntryDate = value
	}
	if value, ok := _c.mutation.StoreName(); ok {
		_spec.SetField(ledgerentry.FieldStoreName, field.TypeString, value)
		_node.StoreName = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(ledgerentry.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(ledgerentry.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(ledgerentry.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ledgerentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LedgerEntryCreateBulk is the builder for creating many LedgerEntry entities in bulk.
type LedgerEntryCreateBulk struct {
	config
	err      error
	builders []*LedgerEntryCreate
}

// Save creates the LedgerEntry entities in the database.
func (_c *LedgerEntryCreateBulk) Save(ctx context.Context) ([]*LedgerEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LedgerEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LedgerEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LedgerEntryCreateBulk) SaveX(ctx context.Context) []*LedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

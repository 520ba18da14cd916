// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tidebooks/tidebooks/gen/ent/company"
	"github.com/tidebooks/tidebooks/gen/ent/document"
	"github.com/tidebooks/tidebooks/gen/ent/extractjob"
	"github.com/tidebooks/tidebooks/gen/ent/ledgerentry"
	"github.com/tidebooks/tidebooks/gen/ent/predicate"
)

// ExtractJobUpdate is the builder for updating ExtractJob entities.
type ExtractJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractJobMutation
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdate) Where(ps ...predicate.ExtractJob) *ExtractJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractJobUpdate) SetDocumentID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *ExtractJobUpdate) SetCompanyID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableCompanyID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *ExtractJobUpdate) SetEntryID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableEntryID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// ClearEntryID clears the value of the "entry_id" field.
func (_u *ExtractJobUpdate) ClearEntryID() *ExtractJobUpdate {
	_u.mutation.ClearEntryID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractJobUpdate) SetFormat(v string) *ExtractJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFormat(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdate) SetStartedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdate) SetFinishedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdate) ClearFinishedAt() *ExtractJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdate) SetStatus(v string) *ExtractJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStatus(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ExtractJobUpdate) ClearStatus() *ExtractJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdate) SetErrorMessage(v string) *ExtractJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableErrorMessage(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdate) ClearErrorMessage() *ExtractJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ExtractJobUpdate) SetProvider(v string) *ExtractJobUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableProvider(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *ExtractJobUpdate) ClearProvider() *ExtractJobUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetRecognitionConfidence sets the "recognition_confidence" field.
func (_u *ExtractJobUpdate) SetRecognitionConfidence(v float64) *ExtractJobUpdate {
	_u.mutation.ResetRecognitionConfidence()
	_u.mutation.SetRecognitionConfidence(v)
	return _u
}

// SetNillableRecognitionConfidence sets the "recognition_confidence" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableRecognitionConfidence(v *float64) *ExtractJobUpdate {
	if v != nil {
		_u.SetRecognitionConfidence(*v)
	}
	return _u
}

// AddRecognitionConfidence adds value to the "recognition_confidence" field.
func (_u *ExtractJobUpdate) AddRecognitionConfidence(v float64) *ExtractJobUpdate {
	_u.mutation.AddRecognitionConfidence(v)
	return _u
}

// ClearRecognitionConfidence clears the value of the "recognition_confidence" field.
func (_u *ExtractJobUpdate) ClearRecognitionConfidence() *ExtractJobUpdate {
	_u.mutation.ClearRecognitionConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractJobUpdate) SetNeedsReview(v bool) *ExtractJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableNeedsReview(v *bool) *ExtractJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExtractJobUpdate) SetOcrText(v string) *ExtractJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableOcrText(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExtractJobUpdate) ClearOcrText() *ExtractJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractJobUpdate) SetDocument(v *Document) *ExtractJobUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *ExtractJobUpdate) SetCompany(v *Company) *ExtractJobUpdate {
	return _u.SetCompanyID(v.ID)
}

// SetEntry sets the "entry" edge to the LedgerEntry entity.
func (_u *ExtractJobUpdate) SetEntry(v *LedgerEntry) *ExtractJobUpdate {
	return _u.SetEntryID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdate) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractJobUpdate) ClearDocument() *ExtractJobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *ExtractJobUpdate) ClearCompany() *ExtractJobUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearEntry clears the "entry" edge to the LedgerEntry entity.
func (_u *ExtractJobUpdate) ClearEntry() *ExtractJobUpdate {
	_u.mutation.ClearEntry()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.document"`)
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.company"`)
	}
	return nil
}

func (_u *ExtractJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(extractjob.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(extractjob.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.RecognitionConfidence(); ok {
		_spec.SetField(extractjob.FieldRecognitionConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecognitionConfidence(); ok {
		_spec.AddField(extractjob.FieldRecognitionConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.RecognitionConfidenceCleared() {
		_spec.ClearField(extractjob.FieldRecognitionConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extractjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(extractjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(extractjob.FieldOcrText, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.DocumentTable,
			Columns: []string{extractjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.DocumentTable,
			Columns: []string{extractjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.CompanyTable,
			Columns: []string{extractjob.CompanyColumn},
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
			Table:   extractjob.CompanyTable,
			Columns: []string{extractjob.CompanyColumn},
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
	if _u.mutation.EntryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.EntryTable,
			Columns: []string{extractjob.EntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.EntryTable,
			Columns: []string{extractjob.EntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractJobUpdateOne is the builder for updating a single ExtractJob entity.
type ExtractJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractJobMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractJobUpdateOne) SetDocumentID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *ExtractJobUpdateOne) SetCompanyID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableCompanyID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *ExtractJobUpdateOne) SetEntryID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableEntryID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// ClearEntryID clears the value of the "entry_id" field.
func (_u *ExtractJobUpdateOne) ClearEntryID() *ExtractJobUpdateOne {
	_u.mutation.ClearEntryID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractJobUpdateOne) SetFormat(v string) *ExtractJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFormat(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdateOne) SetStartedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdateOne) SetFinishedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdateOne) ClearFinishedAt() *ExtractJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdateOne) SetStatus(v string) *ExtractJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStatus(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ExtractJobUpdateOne) ClearStatus() *ExtractJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdateOne) SetErrorMessage(v string) *ExtractJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdateOne) ClearErrorMessage() *ExtractJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ExtractJobUpdateOne) SetProvider(v string) *ExtractJobUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableProvider(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *ExtractJobUpdateOne) ClearProvider() *ExtractJobUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetRecognitionConfidence sets the "recognition_confidence" field.
func (_u *ExtractJobUpdateOne) SetRecognitionConfidence(v float64) *ExtractJobUpdateOne {
	_u.mutation.ResetRecognitionConfidence()
	_u.mutation.SetRecognitionConfidence(v)
	return _u
}

// SetNillableRecognitionConfidence sets the "recognition_confidence" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableRecognitionConfidence(v *float64) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetRecognitionConfidence(*v)
	}
	return _u
}

// AddRecognitionConfidence adds value to the "recognition_confidence" field.
func (_u *ExtractJobUpdateOne) AddRecognitionConfidence(v float64) *ExtractJobUpdateOne {
	_u.mutation.AddRecognitionConfidence(v)
	return _u
}

// ClearRecognitionConfidence clears the value of the "recognition_confidence" field.
func (_u *ExtractJobUpdateOne) ClearRecognitionConfidence() *ExtractJobUpdateOne {
	_u.mutation.ClearRecognitionConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractJobUpdateOne) SetNeedsReview(v bool) *ExtractJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableNeedsReview(v *bool) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExtractJobUpdateOne) SetOcrText(v string) *ExtractJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableOcrText(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExtractJobUpdateOne) ClearOcrText() *ExtractJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractJobUpdateOne) SetDocument(v *Document) *ExtractJobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *ExtractJobUpdateOne) SetCompany(v *Company) *ExtractJobUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// SetEntry sets the "entry" edge to the LedgerEntry entity.
func (_u *ExtractJobUpdateOne) SetEntry(v *LedgerEntry) *ExtractJobUpdateOne {
	return _u.SetEntryID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdateOne) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractJobUpdateOne) ClearDocument() *ExtractJobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *ExtractJobUpdateOne) ClearCompany() *ExtractJobUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearEntry clears the "entry" edge to the LedgerEntry entity.
func (_u *ExtractJobUpdateOne) ClearEntry() *ExtractJobUpdateOne {
	_u.mutation.ClearEntry()
	return _u
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdateOne) Where(ps ...predicate.ExtractJob) *ExtractJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractJobUpdateOne) Select(field string, fields ...string) *ExtractJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractJob entity.
func (_u *ExtractJobUpdateOne) Save(ctx context.Context) (*ExtractJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) SaveX(ctx context.Context) *ExtractJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.document"`)
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.company"`)
	}
	return nil
}

func (_u *ExtractJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractjob.FieldID)
		for _, f := range fields {
			if !extractjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractjob.FieldID {
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
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(extractjob.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(extractjob.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.RecognitionConfidence(); ok {
		_spec.SetField(extractjob.FieldRecognitionConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecognitionConfidence(); ok {
		_spec.AddField(extractjob.FieldRecognitionConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.RecognitionConfidenceCleared() {
		_spec.ClearField(extractjob.FieldRecognitionConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extractjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(extractjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(extractjob.FieldOcrText, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.DocumentTable,
			Columns: []string{extractjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.DocumentTable,
			Columns: []string{extractjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.CompanyTable,
			Columns: []string{extractjob.CompanyColumn},
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
			Table:   extractjob.CompanyTable,
			Columns: []string{extractjob.CompanyColumn},
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
	if _u.mutation.EntryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.EntryTable,
			Columns: []string{extractjob.EntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.EntryTable,
			Columns: []string{extractjob.EntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

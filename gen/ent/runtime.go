// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tidebooks/tidebooks/db/ent/schema"
	"github.com/tidebooks/tidebooks/gen/ent/company"
	"github.com/tidebooks/tidebooks/gen/ent/document"
	"github.com/tidebooks/tidebooks/gen/ent/extractjob"
	"github.com/tidebooks/tidebooks/gen/ent/ledgerentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescCurrencyCode is the schema descriptor for currency_code field.
	companyDescCurrencyCode := companyFields[2].Descriptor()
	// company.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	company.CurrencyCodeValidator = func() func(string) error {
		validators := companyDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[3].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[4].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[2].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[3].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[4].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[5].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[6].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[7].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[7].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[11].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	ledgerentryFields := schema.LedgerEntry{}.Fields()
	_ = ledgerentryFields
	// ledgerentryDescCompanyName is the schema descriptor for company_name field.
	ledgerentryDescCompanyName := ledgerentryFields[2].Descriptor()
	// ledgerentry.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	ledgerentry.CompanyNameValidator = ledgerentryDescCompanyName.Validators[0].(func(string) error)
	// ledgerentryDescEntryDate is the schema descriptor for entry_date field.
	ledgerentryDescEntryDate := ledgerentryFields[3].Descriptor()
	// ledgerentry.EntryDateValidator is a validator for the "entry_date" field. It is called by the builders before save.
	ledgerentry.EntryDateValidator = ledgerentryDescEntryDate.Validators[0].(func(string) error)
	// ledgerentryDescStoreName is the schema descriptor for store_name field.
	ledgerentryDescStoreName := ledgerentryFields[4].Descriptor()
	// ledgerentry.StoreNameValidator is a validator for the "store_name" field. It is called by the builders before save.
	ledgerentry.StoreNameValidator = ledgerentryDescStoreName.Validators[0].(func(string) error)
	// ledgerentryDescNeedsReview is the schema descriptor for needs_review field.
	ledgerentryDescNeedsReview := ledgerentryFields[7].Descriptor()
	// ledgerentry.DefaultNeedsReview holds the default value on creation for the needs_review field.
	ledgerentry.DefaultNeedsReview = ledgerentryDescNeedsReview.Default.(bool)
	// ledgerentryDescCreatedAt is the schema descriptor for created_at field.
	ledgerentryDescCreatedAt := ledgerentryFields[8].Descriptor()
	// ledgerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	ledgerentry.DefaultCreatedAt = ledgerentryDescCreatedAt.Default.(func() time.Time)
	// ledgerentryDescID is the schema descriptor for id field.
	ledgerentryDescID := ledgerentryFields[0].Descriptor()
	// ledgerentry.DefaultID holds the default value on creation for the id field.
	ledgerentry.DefaultID = ledgerentryDescID.Default.(func() uuid.UUID)
}

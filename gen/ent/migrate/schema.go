// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_companies_documents",
				Columns:    []*schema.Column{DocumentsColumns[7]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_company_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[7], DocumentsColumns[2]},
			},
			{
				Name:    "document_company_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7], DocumentsColumns[6]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "recognition_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "company_id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "entry_id", Type: field.TypeUUID, Nullable: true},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_companies_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[10]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_documents_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_ledger_entries_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{LedgerEntriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_company_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[10], ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11]},
			},
			{
				Name:    "extractjob_entry_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
		},
	}
	// LedgerEntriesColumns holds the columns for the "ledger_entries" table.
	LedgerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_name", Type: field.TypeString},
		{Name: "entry_date", Type: field.TypeString},
		{Name: "store_name", Type: field.TypeString},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "items", Type: field.TypeJSON},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// LedgerEntriesTable holds the schema information for the "ledger_entries" table.
	LedgerEntriesTable = &schema.Table{
		Name:       "ledger_entries",
		Columns:    LedgerEntriesColumns,
		PrimaryKey: []*schema.Column{LedgerEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ledger_entries_companies_entries",
				Columns:    []*schema.Column{LedgerEntriesColumns[8]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ledgerentry_company_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[8], LedgerEntriesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompaniesTable,
		DocumentsTable,
		ExtractJobTable,
		LedgerEntriesTable,
	}
)

func init() {
	CompaniesTable.Annotation = &entsql.Annotation{
		Table: "companies",
	}
	DocumentsTable.ForeignKeys[0].RefTable = CompaniesTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = CompaniesTable
	ExtractJobTable.ForeignKeys[1].RefTable = DocumentsTable
	ExtractJobTable.ForeignKeys[2].RefTable = LedgerEntriesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	LedgerEntriesTable.ForeignKeys[0].RefTable = CompaniesTable
	LedgerEntriesTable.Annotation = &entsql.Annotation{
		Table: "ledger_entries",
	}
}

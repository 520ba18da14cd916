package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tenant whose documents and ledger entries are kept together.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document is one uploaded receipt or bank statement file.
type Document struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	SourcePath  string    `json:"source_path"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	ContentHash []byte    `json:"content_hash"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

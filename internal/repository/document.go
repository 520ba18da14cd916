package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/gen/ent"
	entdoc "github.com/tidebooks/tidebooks/gen/ent/document"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	GetByCompanyAndHash(ctx context.Context, companyID uuid.UUID, hash []byte) (*ent.Document, error)
	Create(ctx context.Context, companyID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, error)
	UpsertByHash(ctx context.Context, companyID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, bool, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) GetByCompanyAndHash(ctx context.Context, companyID uuid.UUID, hash []byte) (*ent.Document, error) {
	row, err := r.ent.Document.Query().
		Where(
			entdoc.CompanyID(companyID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) Create(ctx context.Context, companyID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, error) {
	row, err := r.ent.Document.Create().
		SetCompanyID(companyID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "company_id", companyID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash deduplicates by (company, content hash): re-ingesting the same
// bytes returns the existing row with found=true.
func (r *documentRepo) UpsertByHash(ctx context.Context, companyID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, bool, error) {
	if existing, err := r.GetByCompanyAndHash(ctx, companyID, hash); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		return nil, false, err
	}
	row, err := r.Create(ctx, companyID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert document by hash", "company_id", companyID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

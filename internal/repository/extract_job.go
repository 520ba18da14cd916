package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, documentID, companyID uuid.UUID, format string) (*ent.ExtractJob, error)
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, provider string, confidence float64) error
	FinishLedgered(ctx context.Context, jobID, entryID uuid.UUID, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, documentID, companyID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetDocumentID(documentID).
		SetCompanyID(companyID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return job, nil
}

func (r *extractJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, provider string, confidence float64) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetProvider(provider).
		SetRecognitionConfidence(confidence).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (OCR_OK)", "job_id", jobID, "provider", provider)
	return nil
}

// FinishLedgered marks the terminal success state and links the entry the
// job produced.
func (r *extractJobRepo) FinishLedgered(ctx context.Context, jobID, entryID uuid.UUID, needsReview bool) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetEntryID(entryID).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusLedgered)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(LEDGERED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (LEDGERED)", "job_id", jobID, "entry_id", entryID)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/gen/ent"
	"github.com/tidebooks/tidebooks/internal/ledger"
	"github.com/tidebooks/tidebooks/internal/ocr"
	"github.com/tidebooks/tidebooks/internal/repository"
)

// DocumentReader loads the raw bytes for a document. Split out so tests can
// feed content without touching the filesystem.
type DocumentReader func(doc *ent.Document) ([]byte, error)

func readFromDisk(doc *ent.Document) ([]byte, error) {
	return os.ReadFile(doc.SourcePath)
}

// Recognizer is the part of the OCR orchestrator the processor needs.
type Recognizer interface {
	Process(ctx context.Context, in ocr.Input) (*ocr.Result, error)
}

// Processor runs one document through recognition and into the ledger:
// document -> extract_job -> OCR (with provider fallback) -> projection ->
// ledger entry. Failures are recorded on the job and returned.
type Processor struct {
	logger       *slog.Logger
	recognizer   Recognizer
	documentRepo repository.DocumentRepository
	companyRepo  repository.CompanyRepository
	entriesRepo  repository.LedgerEntryRepository
	jobsRepo     repository.ExtractJobRepository
	readDocument DocumentReader
}

func NewProcessor(
	logger *slog.Logger,
	recognizer Recognizer,
	documentRepo repository.DocumentRepository,
	companyRepo repository.CompanyRepository,
	entriesRepo repository.LedgerEntryRepository,
	jobsRepo repository.ExtractJobRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:       logger,
		recognizer:   recognizer,
		documentRepo: documentRepo,
		companyRepo:  companyRepo,
		entriesRepo:  entriesRepo,
		jobsRepo:     jobsRepo,
		readDocument: readFromDisk,
	}
}

// Outcome reports what one document produced.
type Outcome struct {
	DocumentID uuid.UUID
	JobID      uuid.UUID
	EntryID    uuid.UUID
	Provider   string
	Confidence float64
	Err        error
}

// ProcessFile runs a single document end to end. The returned Outcome always
// carries the job ID once the job was started, even on failure.
func (p *Processor) ProcessFile(ctx context.Context, documentID uuid.UUID) (Outcome, error) {
	out := Outcome{DocumentID: documentID}

	doc, err := p.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return out, fmt.Errorf("get document: %w", err)
	}

	format := constants.MapExtToFormat(doc.FileExt)
	if format == "" {
		return out, fmt.Errorf("unsupported format: %s", doc.FileExt)
	}

	company, err := p.companyRepo.GetByID(ctx, doc.CompanyID)
	if err != nil {
		return out, fmt.Errorf("get company: %w", err)
	}

	job, err := p.jobsRepo.Start(ctx, doc.ID, doc.CompanyID, format)
	if err != nil {
		return out, err
	}
	out.JobID = job.ID

	data, err := p.readDocument(doc)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		p.logger.Error("processor.read.failed", "document_id", documentID, "job_id", job.ID, "err", err)
		return out, err
	}

	res, err := p.recognizer.Process(ctx, ocr.Input{
		FileName: doc.Filename,
		MIMEType: constants.MIMEForExt(doc.FileExt),
		Data:     data,
	})
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		p.logger.Error("processor.ocr.failed", "document_id", documentID, "job_id", job.ID, "err", err)
		return out, err
	}
	out.Provider = res.Provider
	out.Confidence = res.Confidence

	if err := p.jobsRepo.FinishOCRSuccess(ctx, job.ID, res.Text, res.Provider, res.Confidence); err != nil {
		return out, err
	}
	p.logger.Debug("processor.ocr.ok",
		"document_id", documentID,
		"job_id", job.ID,
		"provider", res.Provider,
		"confidence", res.Confidence,
	)

	entry := ledger.FromOCRResult(res, company.ID, company.Name)
	// an entry whose total was only the largest-number guess gets a second
	// look from a human
	entry.NeedsReview = res.TotalConfidence <= 50

	saved, err := p.entriesRepo.Insert(ctx, &entry)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		p.logger.Error("processor.ledger.failed", "document_id", documentID, "job_id", job.ID, "err", err)
		return out, err
	}
	out.EntryID = saved.ID

	if err := p.jobsRepo.FinishLedgered(ctx, job.ID, saved.ID, entry.NeedsReview); err != nil {
		return out, err
	}
	p.logger.Info("processor.ledgered",
		"document_id", documentID,
		"job_id", job.ID,
		"entry_id", saved.ID,
		"store_name", saved.StoreName,
		"total", saved.Total,
	)
	return out, nil
}

// ProcessBatch runs the documents strictly in order, one at a time. A failed
// document is reported in its Outcome and does not stop the rest.
func (p *Processor) ProcessBatch(ctx context.Context, documentIDs []uuid.UUID) []Outcome {
	outcomes := make([]Outcome, 0, len(documentIDs))
	for _, id := range documentIDs {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, Outcome{DocumentID: id, Err: err})
			continue
		}
		out, err := p.ProcessFile(ctx, id)
		out.Err = err
		outcomes = append(outcomes, out)
	}
	return outcomes
}

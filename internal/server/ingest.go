package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	tidebookspb "github.com/tidebooks/tidebooks/gen/proto/tidebooks/v1"
	"github.com/tidebooks/tidebooks/internal/batch"
	"github.com/tidebooks/tidebooks/internal/common"
	"github.com/tidebooks/tidebooks/internal/ingest"
	"github.com/tidebooks/tidebooks/internal/repository"
)

type IngestionService struct {
	tidebookspb.UnimplementedIngestionServiceServer
	ingestor    ingest.Ingestor
	companyRepo repository.CompanyRepository
	queue       *batch.ProcessorQueue
	logger      *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue *batch.ProcessorQueue, companyRepo repository.CompanyRepository, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		ingestor:    ing,
		queue:       queue,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (s *IngestionService) IngestFile(ctx context.Context, req *tidebookspb.IngestFileRequest) (*tidebookspb.IngestResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "company_id", companyID)
		return nil, common.InvalidArgumentError("path is required")
	}

	if exists, _ := s.companyRepo.Exists(ctx, companyID); !exists {
		s.logger.Error("company not found for ingest", "company_id", companyID)
		return nil, common.InvalidArgumentError("company not found")
	}

	s.logger.Info("starting file ingest", "company_id", companyID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, companyID, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "company_id", companyID, "document_id", r.DocumentID, "deduplicated", r.Deduplicated)

	resp := &tidebookspb.IngestResponse{
		DocumentId:     r.DocumentID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
	}

	docUUID, _ := uuid.Parse(r.DocumentID)
	if err := s.queue.Enqueue(ctx, batch.Job{DocumentID: docUUID}); err != nil {
		s.logger.Error("enqueue failed", "document_id", r.DocumentID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *tidebookspb.IngestDirectoryRequest) (*tidebookspb.IngestDirectoryResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "company_id", companyID)
		return nil, common.InvalidArgumentError("root_path is required")
	}

	if exists, _ := s.companyRepo.Exists(ctx, companyID); !exists {
		s.logger.Error("company not found for ingest directory", "company_id", companyID)
		return nil, common.InvalidArgumentError("company not found")
	}

	s.logger.Info("starting directory ingest", "company_id", companyID, "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, companyID, root, req.GetSkipHidden())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "company_id", companyID, "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := make([]*tidebookspb.IngestResponse, 0, len(results))
	for _, r := range results {
		resp := &tidebookspb.IngestResponse{
			DocumentId:     r.DocumentID,
			Deduplicated:   r.Deduplicated,
			ContentHashHex: r.HashHex,
			FileExt:        r.FileExt,
			SourcePath:     r.SourcePath,
			Error:          r.Err,
		}
		if !r.UploadedAt.IsZero() {
			resp.UploadedAt = r.UploadedAt.UTC().Format(time.RFC3339)
		}
		out = append(out, resp)

		if r.Err == "" && r.DocumentID != "" {
			if docUUID, err := uuid.Parse(r.DocumentID); err == nil {
				_ = s.queue.Enqueue(ctx, batch.Job{DocumentID: docUUID})
			}
		}
	}

	return &tidebookspb.IngestDirectoryResponse{
		Results:      out,
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
	}, nil
}

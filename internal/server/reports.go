package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tidebookspb "github.com/tidebooks/tidebooks/gen/proto/tidebooks/v1"
	"github.com/tidebooks/tidebooks/internal/common"
	"github.com/tidebooks/tidebooks/internal/report"
	"github.com/tidebooks/tidebooks/internal/repository"
)

type ReportService struct {
	tidebookspb.UnimplementedReportServiceServer
	companyRepo repository.CompanyRepository
	entriesRepo repository.LedgerEntryRepository
	logger      *slog.Logger
}

func NewReportService(companyRepo repository.CompanyRepository, entriesRepo repository.LedgerEntryRepository, logger *slog.Logger) *ReportService {
	return &ReportService{
		companyRepo: companyRepo,
		entriesRepo: entriesRepo,
		logger:      logger,
	}
}

func (s *ReportService) GenerateQuarterlyReport(ctx context.Context, req *tidebookspb.GenerateQuarterlyReportRequest) (*tidebookspb.ReportResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}
	quarter, err := report.ParseQuarter(req.GetQuarter())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	year := req.GetFinancialYear()
	if year == "" {
		year = fmt.Sprintf("%d", time.Now().Year())
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, common.NotFoundError("company not found")
	}

	entries, err := s.entriesRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("failed to load entries for quarterly report", "company_id", companyID, "error", err)
		return nil, common.InternalErrorf("load entries: %v", err)
	}

	start := time.Now()
	rep, err := report.GenerateQuarterly(entries, company.Name, quarter, year)
	if err != nil {
		return nil, common.InternalErrorf("generate report: %v", err)
	}
	xlsx, err := report.QuarterlyXLSX(rep)
	if err != nil {
		s.logger.Error("quarterly xlsx render failed", "company_id", companyID, "error", err)
		return nil, common.InternalErrorf("render report: %v", err)
	}

	filename := fmt.Sprintf("%s-%s-%s.xlsx", company.Name, quarter, year)
	s.logger.Info("report.quarterly.ok",
		"company_id", companyID.String(),
		"quarter", string(quarter),
		"entries", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &tidebookspb.ReportResponse{Filename: filename, Xlsx: xlsx}, nil
}

func (s *ReportService) GenerateAnnualReport(ctx context.Context, req *tidebookspb.GenerateAnnualReportRequest) (*tidebookspb.ReportResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}
	year := int(req.GetFinancialYear())
	if year == 0 {
		year = time.Now().Year()
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, common.NotFoundError("company not found")
	}

	entries, err := s.entriesRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("failed to load entries for annual report", "company_id", companyID, "error", err)
		return nil, common.InternalErrorf("load entries: %v", err)
	}

	start := time.Now()
	st := report.GenerateAnnual(entries, company.Name, year)
	xlsx, err := report.AnnualXLSX(st)
	if err != nil {
		s.logger.Error("annual xlsx render failed", "company_id", companyID, "error", err)
		return nil, common.InternalErrorf("render report: %v", err)
	}

	filename := fmt.Sprintf("%s-annual-%d.xlsx", company.Name, year)
	s.logger.Info("report.annual.ok",
		"company_id", companyID.String(),
		"year", year,
		"entries", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &tidebookspb.ReportResponse{Filename: filename, Xlsx: xlsx}, nil
}

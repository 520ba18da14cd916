package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/constants"
	tidebookspb "github.com/tidebooks/tidebooks/gen/proto/tidebooks/v1"
	"github.com/tidebooks/tidebooks/internal/common"
	"github.com/tidebooks/tidebooks/internal/entity"
	"github.com/tidebooks/tidebooks/internal/ledger"
	"github.com/tidebooks/tidebooks/internal/repository"
)

type LedgerService struct {
	tidebookspb.UnimplementedLedgerServiceServer
	companyRepo repository.CompanyRepository
	entriesRepo repository.LedgerEntryRepository
	logger      *slog.Logger
}

func NewLedgerService(companyRepo repository.CompanyRepository, entriesRepo repository.LedgerEntryRepository, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		companyRepo: companyRepo,
		entriesRepo: entriesRepo,
		logger:      logger,
	}
}

func (s *LedgerService) CreateCompany(ctx context.Context, req *tidebookspb.CreateCompanyRequest) (*tidebookspb.CreateCompanyResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.GetCurrencyCode()))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return nil, common.InvalidArgumentError("currency_code must be 3 letters")
	}

	row, err := s.companyRepo.CreateCompany(ctx, &repository.Company{Name: name, CurrencyCode: currency})
	if err != nil {
		s.logger.Error("failed to create company", "name", name, "error", err)
		return nil, common.InternalErrorf("create company: %v", err)
	}
	return &tidebookspb.CreateCompanyResponse{
		Company: &tidebookspb.Company{
			Id:           row.ID.String(),
			Name:         row.Name,
			CurrencyCode: row.CurrencyCode,
			CreatedAt:    row.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt:    row.UpdatedAt.Format(time.RFC3339Nano),
		},
	}, nil
}

func (s *LedgerService) ListCompanies(ctx context.Context, _ *tidebookspb.ListCompaniesRequest) (*tidebookspb.ListCompaniesResponse, error) {
	rows, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list companies: %v", err)
	}
	out := make([]*tidebookspb.Company, 0, len(rows))
	for _, row := range rows {
		out = append(out, &tidebookspb.Company{
			Id:           row.ID.String(),
			Name:         row.Name,
			CurrencyCode: row.CurrencyCode,
			CreatedAt:    row.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt:    row.UpdatedAt.Format(time.RFC3339Nano),
		})
	}
	return &tidebookspb.ListCompaniesResponse{Companies: out}, nil
}

func (s *LedgerService) ListEntries(ctx context.Context, req *tidebookspb.ListEntriesRequest) (*tidebookspb.ListEntriesResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}

	entries, err := s.entriesRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("failed to list ledger entries", "company_id", companyID, "error", err)
		return nil, common.InternalErrorf("list entries: %v", err)
	}

	out := make([]*tidebookspb.LedgerEntry, 0, len(entries))
	for i := range entries {
		out = append(out, toPBEntry(&entries[i]))
	}
	return &tidebookspb.ListEntriesResponse{Entries: out}, nil
}

func (s *LedgerService) GetSummary(ctx context.Context, req *tidebookspb.GetSummaryRequest) (*tidebookspb.GetSummaryResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}

	entries, err := s.entriesRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("failed to list ledger entries for summary", "company_id", companyID, "error", err)
		return nil, common.InternalErrorf("summarize: %v", err)
	}

	sum := ledger.Summarize(entries)
	byCategory := make(map[string]float64, len(sum.TotalByCategory))
	for category, total := range sum.TotalByCategory {
		byCategory[string(category)] = total
	}
	return &tidebookspb.GetSummaryResponse{
		TotalByCategory: byCategory,
		GrandTotal:      sum.GrandTotal,
		EntryCount:      uint32(sum.EntryCount),
		LastActivity:    sum.LastActivity,
	}, nil
}

// manualEntry mirrors the JSON schema for hand-keyed entries.
type manualEntry struct {
	CompanyName string  `json:"company_name"`
	Date        string  `json:"date"`
	StoreName   string  `json:"store_name"`
	Total       float64 `json:"total"`
	NeedsReview bool    `json:"needs_review"`
	Items       []struct {
		Name     string `json:"name"`
		Price    string `json:"price"`
		Category string `json:"category"`
	} `json:"items"`
}

func (s *LedgerService) CreateManualEntry(ctx context.Context, req *tidebookspb.CreateManualEntryRequest) (*tidebookspb.CreateManualEntryResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}
	raw := []byte(req.GetEntryJson())
	if err := ledger.ValidateEntryJSON(raw); err != nil {
		s.logger.Warn("manual entry rejected", "company_id", companyID, "error", err)
		return nil, common.InvalidArgumentErrorf("entry: %v", err)
	}

	var m manualEntry
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, common.InvalidArgumentErrorf("entry: %v", err)
	}

	entry := entity.LedgerEntry{
		CompanyID:   companyID,
		CompanyName: m.CompanyName,
		Date:        m.Date,
		StoreName:   m.StoreName,
		Total:       m.Total,
		NeedsReview: m.NeedsReview,
	}
	for _, item := range m.Items {
		category, ok := constants.Canonicalize(item.Category)
		if !ok {
			category = constants.Categorize(item.Name)
		}
		entry.Items = append(entry.Items, entity.LedgerItem{
			Name:     item.Name,
			Price:    item.Price,
			Category: category,
		})
	}

	saved, err := s.entriesRepo.Insert(ctx, &entry)
	if err != nil {
		s.logger.Error("failed to insert manual entry", "company_id", companyID, "error", err)
		return nil, common.InternalErrorf("insert entry: %v", err)
	}
	s.logger.Info("manual entry recorded", "company_id", companyID, "entry_id", saved.ID)
	return &tidebookspb.CreateManualEntryResponse{Entry: toPBEntry(saved)}, nil
}

func parseCompanyID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("company_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("company_id must be a UUID")
	}
	return id, nil
}

func toPBEntry(e *entity.LedgerEntry) *tidebookspb.LedgerEntry {
	items := make([]*tidebookspb.LedgerItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, &tidebookspb.LedgerItem{
			Name:     item.Name,
			Price:    item.Price,
			Category: string(item.Category),
		})
	}
	return &tidebookspb.LedgerEntry{
		Id:          e.ID.String(),
		CompanyId:   e.CompanyID.String(),
		CompanyName: e.CompanyName,
		EntryDate:   e.Date,
		StoreName:   e.StoreName,
		Total:       e.Total,
		Items:       items,
		NeedsReview: e.NeedsReview,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339Nano),
	}
}

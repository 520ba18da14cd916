package server

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/gen/ent"
	tidebookspb "github.com/tidebooks/tidebooks/gen/proto/tidebooks/v1"
	"github.com/tidebooks/tidebooks/internal/entity"
	"github.com/tidebooks/tidebooks/internal/repository"
)

type stubCompanyRepo struct {
	created *repository.Company
	row     *ent.Company
	err     error
}

func (s *stubCompanyRepo) GetByID(context.Context, uuid.UUID) (*ent.Company, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.row, nil
}
func (s *stubCompanyRepo) GetByName(context.Context, string) (*ent.Company, error) {
	return s.row, s.err
}
func (s *stubCompanyRepo) CreateCompany(_ context.Context, c *repository.Company) (*ent.Company, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = c
	return &ent.Company{
		ID:           uuid.New(),
		Name:         c.Name,
		CurrencyCode: c.CurrencyCode,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}
func (s *stubCompanyRepo) GetOrCreateByName(context.Context, string, string) (*ent.Company, error) {
	return s.row, s.err
}
func (s *stubCompanyRepo) ListCompanies(context.Context) ([]*ent.Company, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.row == nil {
		return nil, nil
	}
	return []*ent.Company{s.row}, nil
}
func (s *stubCompanyRepo) Exists(context.Context, uuid.UUID) (bool, error) {
	return s.row != nil, nil
}

type stubEntryRepo struct {
	inserted []*entity.LedgerEntry
	entries  []entity.LedgerEntry
	err      error
}

func (s *stubEntryRepo) Insert(_ context.Context, e *entity.LedgerEntry) (*entity.LedgerEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	saved := *e
	saved.ID = uuid.New()
	s.inserted = append(s.inserted, &saved)
	return &saved, nil
}
func (s *stubEntryRepo) GetByID(context.Context, uuid.UUID) (*entity.LedgerEntry, error) {
	return nil, errors.New("not implemented")
}
func (s *stubEntryRepo) ListByCompany(context.Context, uuid.UUID) ([]entity.LedgerEntry, error) {
	return s.entries, s.err
}

func TestCreateCompanyValidation(t *testing.T) {
	companies := &stubCompanyRepo{}
	svc := NewLedgerService(companies, &stubEntryRepo{}, slog.Default())

	_, err := svc.CreateCompany(context.Background(), &tidebookspb.CreateCompanyRequest{Name: "  "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.CreateCompany(context.Background(), &tidebookspb.CreateCompanyRequest{Name: "Acme", CurrencyCode: "EURO"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := svc.CreateCompany(context.Background(), &tidebookspb.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.GetCompany().GetCurrencyCode(), "currency defaults when omitted")
	require.NotNil(t, companies.created)
	assert.Equal(t, "USD", companies.created.CurrencyCode)
}

func TestCreateCompanyRepoFailure(t *testing.T) {
	svc := NewLedgerService(&stubCompanyRepo{err: errors.New("boom")}, &stubEntryRepo{}, slog.Default())

	_, err := svc.CreateCompany(context.Background(), &tidebookspb.CreateCompanyRequest{Name: "Acme"})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestListEntriesCompanyIDValidation(t *testing.T) {
	svc := NewLedgerService(&stubCompanyRepo{}, &stubEntryRepo{}, slog.Default())

	_, err := svc.ListEntries(context.Background(), &tidebookspb.ListEntriesRequest{CompanyId: ""})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.ListEntries(context.Background(), &tidebookspb.ListEntriesRequest{CompanyId: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCreateManualEntry(t *testing.T) {
	entries := &stubEntryRepo{}
	svc := NewLedgerService(&stubCompanyRepo{}, entries, slog.Default())
	companyID := uuid.New().String()

	t.Run("schema violation rejected", func(t *testing.T) {
		_, err := svc.CreateManualEntry(context.Background(), &tidebookspb.CreateManualEntryRequest{
			CompanyId: companyID,
			EntryJson: `{"company_name":"Acme","date":"12/01/2024","store_name":"Cafe"}`,
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Empty(t, entries.inserted)
	})

	t.Run("valid entry inserted with categories resolved", func(t *testing.T) {
		resp, err := svc.CreateManualEntry(context.Background(), &tidebookspb.CreateManualEntryRequest{
			CompanyId: companyID,
			EntryJson: `{"company_name":"Acme","date":"12/01/2024","store_name":"Corner Cafe","total":10.50,` +
				`"items":[{"name":"Mystery box","price":"$4.50","category":"food"},{"name":"Printer toner","price":"6.00"}]}`,
		})
		require.NoError(t, err)
		require.Len(t, entries.inserted, 1)

		saved := entries.inserted[0]
		require.Len(t, saved.Items, 2)
		assert.Equal(t, constants.Food, saved.Items[0].Category)
		assert.Equal(t, constants.Office, saved.Items[1].Category, "category derived from the item name when omitted")
		assert.Equal(t, saved.ID.String(), resp.GetEntry().GetId())
	})
}

func TestGenerateQuarterlyReportErrors(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("bad quarter", func(t *testing.T) {
		svc := NewReportService(&stubCompanyRepo{}, &stubEntryRepo{}, slog.Default())
		_, err := svc.GenerateQuarterlyReport(context.Background(), &tidebookspb.GenerateQuarterlyReportRequest{
			CompanyId: companyID,
			Quarter:   "Q9",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown company", func(t *testing.T) {
		svc := NewReportService(&stubCompanyRepo{err: errors.New("no rows")}, &stubEntryRepo{}, slog.Default())
		_, err := svc.GenerateQuarterlyReport(context.Background(), &tidebookspb.GenerateQuarterlyReportRequest{
			CompanyId: companyID,
			Quarter:   "Q1",
		})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

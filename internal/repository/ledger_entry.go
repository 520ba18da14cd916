package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/gen/ent"
	entledger "github.com/tidebooks/tidebooks/gen/ent/ledgerentry"
	"github.com/tidebooks/tidebooks/internal/entity"
)

// LedgerEntryRepository is append-only: entries are inserted and listed but
// never updated or deleted. Corrections arrive as new entries.
type LedgerEntryRepository interface {
	Insert(ctx context.Context, entry *entity.LedgerEntry) (*entity.LedgerEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.LedgerEntry, error)
}

type ledgerEntryRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewLedgerEntryRepository(entc *ent.Client, logger *slog.Logger) LedgerEntryRepository {
	return &ledgerEntryRepo{ent: entc, logger: logger}
}

func (r *ledgerEntryRepo) Insert(ctx context.Context, entry *entity.LedgerEntry) (*entity.LedgerEntry, error) {
	items, err := json.Marshal(entry.Items)
	if err != nil {
		return nil, err
	}
	row, err := r.ent.LedgerEntry.Create().
		SetCompanyID(entry.CompanyID).
		SetCompanyName(entry.CompanyName).
		SetEntryDate(entry.Date).
		SetStoreName(entry.StoreName).
		SetTotal(entry.Total).
		SetItems(items).
		SetNeedsReview(entry.NeedsReview).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert ledger entry", "company_id", entry.CompanyID, "store_name", entry.StoreName, "error", err)
		return nil, err
	}
	return toLedgerEntry(row)
}

func (r *ledgerEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	row, err := r.ent.LedgerEntry.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLedgerEntry(row)
}

// ListByCompany returns entries newest first. Capture time stands in for
// entry date: entry_date holds verbatim extractor strings in mixed formats,
// which do not sort.
func (r *ledgerEntryRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.LedgerEntry, error) {
	rows, err := r.ent.LedgerEntry.Query().
		Where(entledger.CompanyID(companyID)).
		Order(entledger.ByCreatedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list ledger entries", "company_id", companyID, "error", err)
		return nil, err
	}

	result := make([]entity.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		e, err := toLedgerEntry(row)
		if err != nil {
			r.logger.Warn("skipping ledger entry with malformed items", "entry_id", row.ID, "error", err)
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func toLedgerEntry(row *ent.LedgerEntry) (*entity.LedgerEntry, error) {
	var items []entity.LedgerItem
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &items); err != nil {
			return nil, err
		}
	}
	return &entity.LedgerEntry{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		CompanyName: row.CompanyName,
		Date:        row.EntryDate,
		StoreName:   row.StoreName,
		Total:       row.Total,
		Items:       items,
		NeedsReview: row.NeedsReview,
		CreatedAt:   row.CreatedAt,
	}, nil
}

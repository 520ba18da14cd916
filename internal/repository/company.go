package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/gen/ent"
	"github.com/tidebooks/tidebooks/gen/ent/company"
)

type Company struct {
	Name         string
	CurrencyCode string
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Company, error)
	GetByName(ctx context.Context, name string) (*ent.Company, error)
	CreateCompany(ctx context.Context, c *Company) (*ent.Company, error)
	GetOrCreateByName(ctx context.Context, name, currencyCode string) (*ent.Company, error)
	ListCompanies(ctx context.Context) ([]*ent.Company, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type companyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCompanyRepository(client *ent.Client, logger *slog.Logger) CompanyRepository {
	return &companyRepository{
		client: client,
		logger: logger,
	}
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Company, error) {
	return r.client.Company.
		Query().
		Where(company.ID(id)).
		Only(ctx)
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*ent.Company, error) {
	return r.client.Company.
		Query().
		Where(company.Name(name)).
		Only(ctx)
}

func (r *companyRepository) CreateCompany(ctx context.Context, c *Company) (*ent.Company, error) {
	row, err := r.client.Company.Create().
		SetName(c.Name).
		SetCurrencyCode(c.CurrencyCode).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create company", "name", c.Name, "currency", c.CurrencyCode, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *companyRepository) GetOrCreateByName(ctx context.Context, name, currencyCode string) (*ent.Company, error) {
	if existing, err := r.GetByName(ctx, name); err == nil {
		return existing, nil
	} else if !ent.IsNotFound(err) {
		return nil, err
	}
	return r.CreateCompany(ctx, &Company{Name: name, CurrencyCode: currencyCode})
}

func (r *companyRepository) ListCompanies(ctx context.Context) ([]*ent.Company, error) {
	list, err := r.client.Company.Query().Order(company.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list companies", "error", err)
		return nil, err
	}
	return list, nil
}

func (r *companyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Company.Query().Where(company.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check company existence", "company_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

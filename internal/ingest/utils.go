package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/internal/repository"
)

// AllowedExt checks if a file extension is in the allowed set.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// ValidateCompany confirms the company row exists before files are attached
// to it.
func ValidateCompany(ctx context.Context, repo repository.CompanyRepository, companyID uuid.UUID) error {
	exists, err := repo.Exists(ctx, companyID)
	if err != nil {
		return fmt.Errorf("check company: %w", err)
	}
	if !exists {
		return fmt.Errorf("company %s not found", companyID)
	}
	return nil
}

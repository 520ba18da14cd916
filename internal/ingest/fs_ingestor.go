package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/internal/repository"
)

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	CompanyRepo  repository.CompanyRepository
	DocumentRepo repository.DocumentRepository
	Logger       *slog.Logger
}

func NewFSIngestor(c repository.CompanyRepository, d repository.DocumentRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		CompanyRepo:  c,
		DocumentRepo: d,
		Logger:       logger,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, companyID uuid.UUID, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("ingest.abs_path.failed", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		i.Logger.Warn("ingest.unsupported_extension", "path", abs, "ext", ext)
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	if err := ValidateCompany(ctx, i.CompanyRepo, companyID); err != nil {
		return out, err
	}

	f, err := os.Open(abs)
	if err != nil {
		i.Logger.Error("ingest.open.failed", "path", abs, "error", err)
		return out, err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			i.Logger.Warn("ingest.close.failed", "path", abs, "error", err)
		}
	}(f)

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		i.Logger.Error("ingest.hash.failed", "path", abs, "error", err)
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.DocumentRepo.UpsertByHash(ctx, companyID, abs, filepath.Base(abs), ext, int(size), sum, now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		DocumentID:   row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	companyID uuid.UUID,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !AllowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, companyID, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

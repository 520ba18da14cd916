package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tidebooks/tidebooks/gen/ent"
	"github.com/tidebooks/tidebooks/internal/batch"
	"github.com/tidebooks/tidebooks/internal/common"
	"github.com/tidebooks/tidebooks/internal/ingest"
	"github.com/tidebooks/tidebooks/internal/ledger"
	"github.com/tidebooks/tidebooks/internal/ocr"
	"github.com/tidebooks/tidebooks/internal/report"
	repo "github.com/tidebooks/tidebooks/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory to process documents from (required)")
		company  = flag.String("company", "Local Batch", "company name for the ledger")
		currency = flag.String("currency", "USD", "company currency code")
		quarter  = flag.String("quarter", "", "quarterly report to emit (Q1..Q4)")
		year     = flag.String("year", "", "financial year (defaults to current)")
		out      = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		watch    = flag.Bool("watch", false, "keep watching the directory for new documents")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "ledger-report.xlsx")
	}
	if *year == "" {
		*year = fmt.Sprintf("%d", time.Now().Year())
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, pool, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	companyRepo := repo.NewCompanyRepository(entc, logger)
	documentRepo := repo.NewDocumentRepository(entc, logger)
	entriesRepo := repo.NewLedgerEntryRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	companyRow, err := companyRepo.GetOrCreateByName(ctx, *company, *currency)
	if err != nil {
		logger.Error("failed to get or create company", "error", err)
		os.Exit(1)
	}
	logger.Info("using company", "id", companyRow.ID, "name", companyRow.Name)

	var providers []ocr.Provider
	if cfg.OCR.VisionAPIKey != "" {
		providers = append(providers, ocr.NewVisionProvider(ocr.VisionConfig{
			APIKey:   cfg.OCR.VisionAPIKey,
			Endpoint: cfg.OCR.VisionEndpoint,
			Timeout:  cfg.OCR.VisionTimeout,
		}, logger))
	}
	providers = append(providers, ocr.NewTesseractProvider(ocr.TesseractConfig{
		Language:    cfg.OCR.TesseractLang,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger))

	orchestrator := ocr.NewOrchestrator(logger, providers,
		ocr.WithThreshold(cfg.OCR.AcceptThreshold),
	)
	processor := batch.NewProcessor(logger, orchestrator, documentRepo, companyRepo, entriesRepo, jobsRepo)

	ingestor := ingest.NewFSIngestor(companyRepo, documentRepo, logger)
	results, stats, err := ingestor.IngestDirectory(ctx, companyRow.ID, *dir, true)
	if err != nil {
		logger.Error("directory ingest failed", "error", err)
		os.Exit(1)
	}
	logger.Info("directory ingested",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	var documentIDs []uuid.UUID
	for _, r := range results {
		if r.Err != "" || r.Deduplicated {
			continue
		}
		id, err := uuid.Parse(r.DocumentID)
		if err != nil {
			continue
		}
		documentIDs = append(documentIDs, id)
	}

	outcomes := processor.ProcessBatch(ctx, documentIDs)
	var processed, failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			continue
		}
		processed++
	}
	logger.Info("batch complete", "processed", processed, "failed", failed)

	if err := writeReport(ctx, entriesRepo, companyRow.ID, companyRow.Name, *quarter, *year, *out, logger); err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	if !*watch {
		return
	}

	queue := batch.NewProcessorQueue(processor, logger)
	defer queue.Shutdown(context.Background())

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{*dir},
		Debounce: 500 * time.Millisecond,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	logger.Info("watching for new documents", "dir", *dir)
	for {
		select {
		case path, ok := <-events:
			if !ok {
				return
			}
			r, err := ingestor.IngestPath(ctx, companyRow.ID, path)
			if err != nil || r.Deduplicated {
				continue
			}
			if id, err := uuid.Parse(r.DocumentID); err == nil {
				_ = queue.Enqueue(ctx, batch.Job{DocumentID: id})
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if inmem {
		client, err := repo.OpenInMemory(ctx, logger)
		return client, nil, err
	}
	return repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
}

func writeReport(ctx context.Context, entriesRepo repo.LedgerEntryRepository, companyID uuid.UUID, companyName, quarter, year, out string, logger *slog.Logger) error {
	entries, err := entriesRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}

	summary := ledger.Summarize(entries)
	logger.Info("ledger summary",
		"entries", summary.EntryCount,
		"grand_total", summary.GrandTotal,
		"last_activity", summary.LastActivity,
	)

	var xlsx []byte
	if quarter != "" {
		q, err := report.ParseQuarter(quarter)
		if err != nil {
			return err
		}
		rep, err := report.GenerateQuarterly(entries, companyName, q, year)
		if err != nil {
			return err
		}
		xlsx, err = report.QuarterlyXLSX(rep)
		if err != nil {
			return err
		}
	} else {
		yearNum, err := strconv.Atoi(year)
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", year, err)
		}
		st := report.GenerateAnnual(entries, companyName, yearNum)
		xlsx, err = report.AnnualXLSX(st)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(out, xlsx, 0o644); err != nil {
		return err
	}
	logger.Info("report written", "path", out)
	return nil
}

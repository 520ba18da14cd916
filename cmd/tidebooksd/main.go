package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	tidebookspb "github.com/tidebooks/tidebooks/gen/proto/tidebooks/v1"
	"github.com/tidebooks/tidebooks/internal/batch"
	"github.com/tidebooks/tidebooks/internal/common"
	"github.com/tidebooks/tidebooks/internal/ingest"
	"github.com/tidebooks/tidebooks/internal/ocr"
	repo "github.com/tidebooks/tidebooks/internal/repository"
	svc "github.com/tidebooks/tidebooks/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	companyRepo := repo.NewCompanyRepository(entc, logger)
	documentRepo := repo.NewDocumentRepository(entc, logger)
	entriesRepo := repo.NewLedgerEntryRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	// Recognition chain: cloud first when a key is configured, local always.
	var providers []ocr.Provider
	if cfg.OCR.VisionAPIKey != "" {
		providers = append(providers, ocr.NewVisionProvider(ocr.VisionConfig{
			APIKey:   cfg.OCR.VisionAPIKey,
			Endpoint: cfg.OCR.VisionEndpoint,
			Timeout:  cfg.OCR.VisionTimeout,
		}, logger))
	} else {
		logger.Warn("VISION_API_KEY not set, cloud recognition disabled")
	}
	providers = append(providers, ocr.NewTesseractProvider(ocr.TesseractConfig{
		Language:    cfg.OCR.TesseractLang,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger))

	orchestrator := ocr.NewOrchestrator(logger, providers,
		ocr.WithThreshold(cfg.OCR.AcceptThreshold),
	)

	processor := batch.NewProcessor(logger, orchestrator, documentRepo, companyRepo, entriesRepo, jobsRepo)
	queue := batch.NewProcessorQueue(processor, logger,
		batch.WithQueueSize(512),
		batch.WithProcessTimeout(3*time.Minute),
	)

	ledgerService := svc.NewLedgerService(companyRepo, entriesRepo, logger)
	tidebookspb.RegisterLedgerServiceServer(grpcServer, ledgerService)

	ingestor := ingest.NewFSIngestor(companyRepo, documentRepo, logger)
	ingestionService := svc.NewIngestionService(ingestor, queue, companyRepo, logger)
	tidebookspb.RegisterIngestionServiceServer(grpcServer, ingestionService)

	reportService := svc.NewReportService(companyRepo, entriesRepo, logger)
	tidebookspb.RegisterReportServiceServer(grpcServer, reportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("tidebooks listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

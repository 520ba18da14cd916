package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/internal/common"
	"github.com/tidebooks/tidebooks/internal/ocr"
)

// runocr pushes one file through the recognition chain and prints what the
// extractors made of it. No database involved; useful for tuning providers.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <file-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	mimeType := constants.MIMEForExt(filepath.Ext(path))
	if mimeType == "" {
		logger.Error("unsupported file extension", "path", path)
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	res, err := orchestrator.Process(ctx, ocr.Input{
		FileName: filepath.Base(path),
		MIMEType: mimeType,
		Data:     data,
	})
	dur := time.Since(start)

	if err != nil {
		logger.Error("recognition failed", "path", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("recognition OK",
		"provider", res.Provider,
		"confidence", res.Confidence,
		"vendor", res.Vendor,
		"date", res.Date,
		"total", res.Total,
		"total_confidence", res.TotalConfidence,
		"numbers", len(res.ExtractedNumbers),
		"line_items", len(res.LineItems),
		"bytes", len(res.Text),
		"duration_ms", dur.Milliseconds(),
	)
}

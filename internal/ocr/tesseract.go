package ocr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/otiai10/gosseract/v2"

	"github.com/tidebooks/tidebooks/constants"
)

// TesseractPriority keeps the offline engine as the fallback: it is the only
// option for batches the cloud provider cannot serve.
const TesseractPriority = 5

// TesseractConfig configures the local recognition engine.
type TesseractConfig struct {
	Language    string // default "eng"
	TessdataDir string // optional tessdata prefix
}

// TesseractProvider recognizes text with the local tesseract engine. Images
// only; PDFs never route here.
type TesseractProvider struct {
	cfg    TesseractConfig
	logger *slog.Logger
}

func NewTesseractProvider(cfg TesseractConfig, logger *slog.Logger) *TesseractProvider {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &TesseractProvider{cfg: cfg, logger: logger}
}

func (p *TesseractProvider) Name() string { return "tesseract" }

func (p *TesseractProvider) Priority() int { return TesseractPriority }

func (p *TesseractProvider) SupportedTypes() []string {
	return append([]string{}, constants.ImageMIMETypes...)
}

// Recognize runs one scoped engine instance per file. The client must be torn
// down after use to avoid leaking background recognition workers.
func (p *TesseractProvider) Recognize(ctx context.Context, in Input) (RecognitionResult, error) {
	if err := ctx.Err(); err != nil {
		return RecognitionResult{}, err
	}

	client := gosseract.NewClient()
	defer func() {
		if cerr := client.Close(); cerr != nil {
			p.logger.Warn("tesseract client close failed", "file", in.FileName, "error", cerr)
		}
	}()

	if err := client.SetLanguage(p.cfg.Language); err != nil {
		return RecognitionResult{}, fmt.Errorf("set language: %w", err)
	}
	if p.cfg.TessdataDir != "" {
		if err := client.SetTessdataPrefix(p.cfg.TessdataDir); err != nil {
			return RecognitionResult{}, fmt.Errorf("set tessdata dir: %w", err)
		}
	}
	if err := client.SetImageFromBytes(in.Data); err != nil {
		return RecognitionResult{}, fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return RecognitionResult{}, fmt.Errorf("tesseract recognize: %w", err)
	}

	// Engine-reported word confidences, averaged. No structural adjustment.
	confidence := 0.0
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(boxes) > 0 {
		var sum float64
		for _, box := range boxes {
			sum += box.Confidence
		}
		confidence = sum / float64(len(boxes))
	}

	p.logger.Debug("tesseract recognition ok", "file", in.FileName, "bytes", len(text), "confidence", confidence)
	return RecognitionResult{Text: text, Confidence: confidence}, nil
}

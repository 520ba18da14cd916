package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidebooks/tidebooks/constants"
)

const (
	defaultVisionEndpoint = "https://vision.googleapis.com/v1/images:annotate"

	// Structural confidence bounds. With no page structure in the response we
	// fall back to the middle of the band.
	visionMinConfidence     = 60
	visionMaxConfidence     = 95
	visionDefaultConfidence = 85

	// Cloud recognition is materially more accurate than the offline engine,
	// so it always goes first when the file type allows it.
	VisionPriority = 15
)

// VisionConfig configures the cloud document-text provider.
type VisionConfig struct {
	APIKey   string
	Endpoint string // full annotate URL; defaults to the public endpoint
	Timeout  time.Duration
}

// VisionProvider recognizes text through a cloud document-text-detection
// endpoint. It accepts images and PDFs.
type VisionProvider struct {
	cfg    VisionConfig
	client *http.Client
	logger *slog.Logger
}

func NewVisionProvider(cfg VisionConfig, logger *slog.Logger) *VisionProvider {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultVisionEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &VisionProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (p *VisionProvider) Name() string { return "google-vision" }

func (p *VisionProvider) Priority() int { return VisionPriority }

func (p *VisionProvider) SupportedTypes() []string {
	return append(append([]string{}, constants.ImageMIMETypes...), constants.MIMEPDF)
}

// Wire shapes for the annotate call. Receipts are dense documents, so we ask
// for full-document OCR rather than sparse text detection.
type visionRequest struct {
	Requests []visionAnnotateRequest `json:"requests"`
}

type visionAnnotateRequest struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionImage struct {
	Content string `json:"content"`
}

type visionFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type visionResponse struct {
	Responses []struct {
		FullTextAnnotation *struct {
			Text  string       `json:"text"`
			Pages []visionPage `json:"pages"`
		} `json:"fullTextAnnotation"`
		TextAnnotations []struct {
			Description string `json:"description"`
		} `json:"textAnnotations"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

type visionPage struct {
	Blocks []struct {
		Paragraphs []struct {
			Words []struct {
				Symbols []struct {
					Text string `json:"text"`
				} `json:"symbols"`
			} `json:"words"`
		} `json:"paragraphs"`
	} `json:"blocks"`
}

func (p *VisionProvider) Recognize(ctx context.Context, in Input) (RecognitionResult, error) {
	body := visionRequest{
		Requests: []visionAnnotateRequest{{
			Image: visionImage{Content: base64.StdEncoding.EncodeToString(in.Data)},
			Features: []visionFeature{{
				Type:       "DOCUMENT_TEXT_DETECTION",
				MaxResults: 1,
			}},
		}},
	}

	url := fmt.Sprintf("%s?key=%s", p.cfg.Endpoint, p.cfg.APIKey)
	raw, status, err := sendJSON(ctx, p.client, url, body, p.logger)
	if err != nil {
		if status != 0 {
			return RecognitionResult{}, newProviderError(p.Name(), status, err)
		}
		return RecognitionResult{}, &ProviderError{Provider: p.Name(), Kind: KindGeneric, Err: err}
	}

	var resp visionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return RecognitionResult{}, &ProviderError{Provider: p.Name(), StatusCode: status, Kind: KindGeneric, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(resp.Responses) == 0 {
		return RecognitionResult{}, &ProviderError{Provider: p.Name(), StatusCode: status, Kind: KindGeneric, Err: fmt.Errorf("empty response")}
	}

	result := resp.Responses[0]
	if result.Error != nil {
		return RecognitionResult{}, newProviderError(p.Name(), result.Error.Code, fmt.Errorf("%s", result.Error.Message))
	}

	var text string
	confidence := float64(visionDefaultConfidence)

	// Prefer the full-page annotation; it is better for PDFs and structured
	// documents. Fall back to the flat text annotation.
	switch {
	case result.FullTextAnnotation != nil && result.FullTextAnnotation.Text != "":
		text = result.FullTextAnnotation.Text
		if len(result.FullTextAnnotation.Pages) > 0 {
			confidence = documentConfidence(result.FullTextAnnotation.Pages)
		}
	case len(result.TextAnnotations) > 0 && result.TextAnnotations[0].Description != "":
		text = result.TextAnnotations[0].Description
	default:
		return RecognitionResult{}, &ProviderError{Provider: p.Name(), StatusCode: status, Kind: KindGeneric, Err: fmt.Errorf("no text detected in document")}
	}

	p.logger.Debug("vision recognition ok", "file", in.FileName, "bytes", len(text), "confidence", confidence)
	return RecognitionResult{Text: text, Confidence: confidence}, nil
}

// documentConfidence scores the recognition by the fraction of words carrying
// recognized symbol data, bounded to [60, 95].
func documentConfidence(pages []visionPage) float64 {
	var totalWords, detectedWords int

	for _, page := range pages {
		for _, block := range page.Blocks {
			for _, paragraph := range block.Paragraphs {
				for _, word := range paragraph.Words {
					totalWords++
					if len(word.Symbols) > 0 {
						detectedWords++
					}
				}
			}
		}
	}

	if totalWords == 0 {
		return visionDefaultConfidence
	}

	score := float64(detectedWords) / float64(totalWords) * 100
	if score > visionMaxConfidence {
		return visionMaxConfidence
	}
	if score < visionMinConfidence {
		return visionMinConfidence
	}
	return score
}

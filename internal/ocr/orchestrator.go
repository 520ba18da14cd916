package ocr

import (
	"context"
	"errors"
	"log/slog"
	"sort"
)

// AcceptThreshold is the confidence above which a provider result is trusted.
// A call that succeeds at the API level but scores at or below the threshold
// is not accepted; remaining candidates are still tried.
const AcceptThreshold = 50

// Orchestrator routes one file through the registered providers in priority
// order, falling back on failure or low confidence, and assembles the final
// structured result from the first accepted recognition.
type Orchestrator struct {
	providers []Provider
	threshold float64
	logger    *slog.Logger
}

type OrchestratorOption func(*Orchestrator)

// WithThreshold overrides the acceptance threshold (tests mostly).
func WithThreshold(v float64) OrchestratorOption {
	return func(o *Orchestrator) { o.threshold = v }
}

func NewOrchestrator(logger *slog.Logger, providers []Provider, opts ...OrchestratorOption) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{
		providers: append([]Provider{}, providers...),
		threshold: AcceptThreshold,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Register adds a provider to the candidate set.
func (o *Orchestrator) Register(p Provider) {
	o.providers = append(o.providers, p)
}

// Process runs the full provider-fallback chain for one file. Candidates are
// tried strictly in sequence: each attempt is awaited in full before the next
// one starts, and providers are never raced against each other.
func (o *Orchestrator) Process(ctx context.Context, in Input) (*Result, error) {
	candidates := o.candidatesFor(in.MIMEType)
	if len(candidates) == 0 {
		o.logger.Error("no provider for file type", "file", in.FileName, "mime_type", in.MIMEType)
		return nil, &UnsupportedTypeError{MIMEType: in.MIMEType}
	}

	var (
		lastErr        error
		quotaSeen      bool
		bestConfidence float64
	)

	for _, provider := range candidates {
		o.logger.Info("attempting ocr provider", "file", in.FileName, "provider", provider.Name(), "mime_type", in.MIMEType)

		rec, err := provider.Recognize(ctx, in)
		if err != nil {
			var perr *ProviderError
			if errors.As(err, &perr) && perr.quotaRelated() {
				o.logger.Warn("provider quota or rate limit hit, falling back",
					"file", in.FileName, "provider", provider.Name(), "status", perr.StatusCode)
				quotaSeen = true
			} else {
				o.logger.Error("provider failed", "file", in.FileName, "provider", provider.Name(), "error", err)
				quotaSeen = false
			}
			lastErr = err
			continue
		}

		if rec.Confidence > o.threshold {
			o.logger.Info("provider accepted", "file", in.FileName, "provider", provider.Name(), "confidence", rec.Confidence)
			return buildResult(provider.Name(), in, rec), nil
		}

		// Succeeded at the API level but not trusted: keep trying remaining
		// candidates rather than settling for a weak read.
		o.logger.Warn("provider confidence too low", "file", in.FileName, "provider", provider.Name(), "confidence", rec.Confidence)
		if rec.Confidence > bestConfidence {
			bestConfidence = rec.Confidence
		}
	}

	return nil, &ExhaustedError{
		MIMEType:       in.MIMEType,
		Quota:          quotaSeen,
		BestConfidence: bestConfidence,
		LastErr:        lastErr,
	}
}

// candidatesFor filters registered providers by MIME type and orders them by
// descending priority.
func (o *Orchestrator) candidatesFor(mimeType string) []Provider {
	var candidates []Provider
	for _, p := range o.providers {
		if supportsType(p, mimeType) {
			candidates = append(candidates, p)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority() > candidates[j].Priority()
	})
	return candidates
}

// Package ocr orchestrates interchangeable text-recognition providers and
// folds their raw output into structured extraction results.
package ocr

import "context"

// Input is one file handed to a provider: bytes plus enough metadata to pick
// candidates and report results.
type Input struct {
	FileName string
	MIMEType string
	Data     []byte
}

// RecognitionResult is the raw output of exactly one provider invocation.
// Confidence is in the closed range [0, 100].
type RecognitionResult struct {
	Text       string
	Confidence float64
}

// Provider is an interchangeable OCR backend. SupportedTypes declares the
// MIME types it accepts; Priority orders candidates (higher first).
type Provider interface {
	Name() string
	SupportedTypes() []string
	Priority() int
	Recognize(ctx context.Context, in Input) (RecognitionResult, error)
}

func supportsType(p Provider, mimeType string) bool {
	for _, t := range p.SupportedTypes() {
		if t == mimeType {
			return true
		}
	}
	return false
}

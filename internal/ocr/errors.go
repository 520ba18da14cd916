package ocr

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies provider failures. The orchestrator keys its fallback
// and remediation behavior off the kind, never off message text.
type ErrorKind int

const (
	KindGeneric    ErrorKind = iota
	KindQuota                // HTTP 403: quota exhausted or billing disabled
	KindRateLimit            // HTTP 429
	KindBadRequest           // HTTP 400: file-specific, not retried on this provider
)

func (k ErrorKind) String() string {
	switch k {
	case KindQuota:
		return "quota"
	case KindRateLimit:
		return "rate_limit"
	case KindBadRequest:
		return "bad_request"
	default:
		return "generic"
	}
}

// ProviderError is a failure from one provider attempt, carrying the numeric
// status code so callers can branch without substring matching.
type ProviderError struct {
	Provider   string
	StatusCode int
	Kind       ErrorKind
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Kind, e.StatusCode)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// newProviderError classifies an HTTP status into an ErrorKind.
func newProviderError(provider string, status int, err error) *ProviderError {
	kind := KindGeneric
	switch status {
	case http.StatusForbidden:
		kind = KindQuota
	case http.StatusTooManyRequests:
		kind = KindRateLimit
	case http.StatusBadRequest:
		kind = KindBadRequest
	}
	return &ProviderError{Provider: provider, StatusCode: status, Kind: kind, Err: err}
}

// quotaRelated reports whether the failure should surface billing remediation
// once every provider is exhausted.
func (e *ProviderError) quotaRelated() bool {
	return e.Kind == KindQuota || e.Kind == KindRateLimit
}

// UnsupportedTypeError means no registered provider accepts the file's MIME
// type. Fatal for that file; never retried.
type UnsupportedTypeError struct {
	MIMEType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MIMEType)
}

// ExhaustedError means every candidate provider was tried without an accepted
// result. BestConfidence keeps the strongest low-confidence attempt for
// diagnostics; Quota marks that the last relevant failure was 403/429 so the
// caller can suggest checking quota and billing.
type ExhaustedError struct {
	MIMEType       string
	Quota          bool
	BestConfidence float64
	LastErr        error
}

func (e *ExhaustedError) Error() string {
	if e.Quota {
		return "all OCR providers exhausted after quota or rate-limit failures; check the cloud provider's quota and billing status"
	}
	if e.LastErr != nil {
		return fmt.Sprintf("all OCR providers failed or returned low-confidence results: %v", e.LastErr)
	}
	return "all OCR providers failed or returned low-confidence results"
}

func (e *ExhaustedError) Unwrap() error { return e.LastErr }

package ocr

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidebooks/tidebooks/constants"
)

type fakeProvider struct {
	name     string
	types    []string
	priority int
	rec      RecognitionResult
	err      error
	calls    int
}

func (f *fakeProvider) Name() string             { return f.name }
func (f *fakeProvider) SupportedTypes() []string { return f.types }
func (f *fakeProvider) Priority() int            { return f.priority }

func (f *fakeProvider) Recognize(_ context.Context, _ Input) (RecognitionResult, error) {
	f.calls++
	if f.err != nil {
		return RecognitionResult{}, f.err
	}
	return f.rec, nil
}

func imageInput() Input {
	return Input{FileName: "receipt.png", MIMEType: constants.MIMEPNG, Data: []byte("png-bytes")}
}

func TestProcessAcceptsHighConfidenceFromFirstProvider(t *testing.T) {
	cloud := &fakeProvider{
		name:     "cloud",
		types:    append(constants.ImageMIMETypes, constants.MIMEPDF),
		priority: VisionPriority,
		rec:      RecognitionResult{Text: "STORE NAME INC\nCoffee 4.50\nTotal: $4.50", Confidence: 92},
	}
	local := &fakeProvider{
		name:     "local",
		types:    constants.ImageMIMETypes,
		priority: TesseractPriority,
		rec:      RecognitionResult{Text: "irrelevant", Confidence: 80},
	}

	orch := NewOrchestrator(nil, []Provider{local, cloud})
	res, err := orch.Process(context.Background(), imageInput())

	require.NoError(t, err)
	assert.Equal(t, 1, cloud.calls, "cloud tried first despite registration order")
	assert.Equal(t, 0, local.calls, "accepted result stops the chain")
	assert.Equal(t, 92.0, res.Confidence)
	assert.Equal(t, "STORE NAME INC", res.Vendor)
	assert.Equal(t, 4.50, res.Total)
}

func TestProcessFallsBackOnQuotaError(t *testing.T) {
	cloud := &fakeProvider{
		name:     "cloud",
		types:    append(constants.ImageMIMETypes, constants.MIMEPDF),
		priority: VisionPriority,
		err:      newProviderError("cloud", http.StatusForbidden, nil),
	}
	local := &fakeProvider{
		name:     "local",
		types:    constants.ImageMIMETypes,
		priority: TesseractPriority,
		rec:      RecognitionResult{Text: "CORNER SHOP\nTotal: $12.00", Confidence: 77},
	}

	orch := NewOrchestrator(nil, []Provider{cloud, local})
	res, err := orch.Process(context.Background(), imageInput())

	require.NoError(t, err, "403 on cloud must fall through to local")
	assert.Equal(t, 1, cloud.calls)
	assert.Equal(t, 1, local.calls)
	assert.Equal(t, 77.0, res.Confidence)
}

func TestProcessContinuesPastLowConfidence(t *testing.T) {
	cloud := &fakeProvider{
		name:     "cloud",
		types:    append(constants.ImageMIMETypes, constants.MIMEPDF),
		priority: VisionPriority,
		rec:      RecognitionResult{Text: "garbled", Confidence: 30},
	}
	local := &fakeProvider{
		name:     "local",
		types:    constants.ImageMIMETypes,
		priority: TesseractPriority,
		rec:      RecognitionResult{Text: "CORNER SHOP\nTotal: $12.00", Confidence: 65},
	}

	orch := NewOrchestrator(nil, []Provider{cloud, local})
	res, err := orch.Process(context.Background(), imageInput())

	require.NoError(t, err)
	assert.Equal(t, 1, cloud.calls)
	assert.Equal(t, 1, local.calls)
	assert.Equal(t, 65.0, res.Confidence)
}

func TestProcessAllLowConfidenceExhausts(t *testing.T) {
	cloud := &fakeProvider{
		name:     "cloud",
		types:    append(constants.ImageMIMETypes, constants.MIMEPDF),
		priority: VisionPriority,
		rec:      RecognitionResult{Text: "noise", Confidence: 41},
	}
	local := &fakeProvider{
		name:     "local",
		types:    constants.ImageMIMETypes,
		priority: TesseractPriority,
		rec:      RecognitionResult{Text: "noise", Confidence: 28},
	}

	orch := NewOrchestrator(nil, []Provider{cloud, local})
	res, err := orch.Process(context.Background(), imageInput())

	require.Error(t, err)
	assert.Nil(t, res)

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.False(t, exhausted.Quota)
	assert.Equal(t, 41.0, exhausted.BestConfidence)
}

func TestProcessQuotaExhaustionIsFlagged(t *testing.T) {
	cloud := &fakeProvider{
		name:     "cloud",
		types:    []string{constants.MIMEPDF},
		priority: VisionPriority,
		err:      newProviderError("cloud", http.StatusTooManyRequests, nil),
	}

	orch := NewOrchestrator(nil, []Provider{cloud})
	_, err := orch.Process(context.Background(), Input{FileName: "doc.pdf", MIMEType: constants.MIMEPDF, Data: []byte("%PDF")})

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.True(t, exhausted.Quota)
}

func TestProcessPDFNeverSelectsImageOnlyProvider(t *testing.T) {
	cloud := &fakeProvider{
		name:     "cloud",
		types:    append(constants.ImageMIMETypes, constants.MIMEPDF),
		priority: VisionPriority,
		rec:      RecognitionResult{Text: "PDF TEXT\nTotal: $5.00", Confidence: 90},
	}
	local := &fakeProvider{
		name:     "local",
		types:    constants.ImageMIMETypes,
		priority: TesseractPriority,
	}

	orch := NewOrchestrator(nil, []Provider{cloud, local})
	_, err := orch.Process(context.Background(), Input{FileName: "doc.pdf", MIMEType: constants.MIMEPDF, Data: []byte("%PDF")})

	require.NoError(t, err)
	assert.Equal(t, 0, local.calls, "image-only provider must never see a PDF")
}

func TestProcessUnsupportedType(t *testing.T) {
	local := &fakeProvider{name: "local", types: constants.ImageMIMETypes, priority: TesseractPriority}
	orch := NewOrchestrator(nil, []Provider{local})

	_, err := orch.Process(context.Background(), Input{FileName: "notes.txt", MIMEType: "text/plain"})

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "text/plain", unsupported.MIMEType)
	assert.Equal(t, 0, local.calls)
}

func TestProcessBoundaryConfidenceNotAccepted(t *testing.T) {
	// Exactly 50 is not "greater than 50".
	only := &fakeProvider{
		name:     "only",
		types:    constants.ImageMIMETypes,
		priority: TesseractPriority,
		rec:      RecognitionResult{Text: "text", Confidence: AcceptThreshold},
	}

	orch := NewOrchestrator(nil, []Provider{only})
	_, err := orch.Process(context.Background(), imageInput())

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
}

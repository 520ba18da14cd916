package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidebooks/tidebooks/constants"
)

func newVisionTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *VisionProvider) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	p := NewVisionProvider(VisionConfig{APIKey: "test-key", Endpoint: srv.URL}, nil)
	return srv, p
}

func TestVisionRecognizePrefersFullTextAnnotation(t *testing.T) {
	var captured visionRequest
	_, p := newVisionTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]any{{
				"fullTextAnnotation": map[string]any{"text": "FULL PAGE TEXT"},
				"textAnnotations":    []map[string]any{{"description": "flat text"}},
			}},
		})
	})

	data := []byte("image-bytes")
	rec, err := p.Recognize(context.Background(), Input{FileName: "r.png", MIMEType: constants.MIMEPNG, Data: data})

	require.NoError(t, err)
	assert.Equal(t, "FULL PAGE TEXT", rec.Text)
	assert.Equal(t, float64(visionDefaultConfidence), rec.Confidence)

	require.Len(t, captured.Requests, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), captured.Requests[0].Image.Content)
	require.Len(t, captured.Requests[0].Features, 1)
	assert.Equal(t, "DOCUMENT_TEXT_DETECTION", captured.Requests[0].Features[0].Type)
}

func TestVisionRecognizeFallsBackToTextAnnotations(t *testing.T) {
	_, p := newVisionTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]any{{
				"textAnnotations": []map[string]any{{"description": "flat text"}},
			}},
		})
	})

	rec, err := p.Recognize(context.Background(), Input{MIMEType: constants.MIMEPNG, Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, "flat text", rec.Text)
	assert.Equal(t, float64(visionDefaultConfidence), rec.Confidence)
}

func TestVisionRecognizeStructuralConfidence(t *testing.T) {
	// 3 of 4 words carry symbols: raw score 75, inside the [60, 95] band.
	word := func(withSymbols bool) map[string]any {
		if withSymbols {
			return map[string]any{"symbols": []map[string]any{{"text": "a"}}}
		}
		return map[string]any{}
	}
	_, p := newVisionTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]any{{
				"fullTextAnnotation": map[string]any{
					"text": "structured",
					"pages": []map[string]any{{
						"blocks": []map[string]any{{
							"paragraphs": []map[string]any{{
								"words": []any{word(true), word(true), word(true), word(false)},
							}},
						}},
					}},
				},
			}},
		})
	})

	rec, err := p.Recognize(context.Background(), Input{MIMEType: constants.MIMEPNG, Data: []byte("x")})
	require.NoError(t, err)
	assert.InDelta(t, 75.0, rec.Confidence, 0.001)
}

func TestVisionRecognizeConfidenceBounds(t *testing.T) {
	assert.Equal(t, float64(visionMinConfidence), documentConfidence([]visionPage{pageWithWordRatio(1, 10)}))
	assert.Equal(t, float64(visionMaxConfidence), documentConfidence([]visionPage{pageWithWordRatio(10, 10)}))
	assert.Equal(t, float64(visionDefaultConfidence), documentConfidence([]visionPage{{}}))
}

func pageWithWordRatio(detected, total int) visionPage {
	var page visionPage
	raw := map[string]any{
		"blocks": []map[string]any{{
			"paragraphs": []map[string]any{{
				"words": func() []any {
					words := make([]any, 0, total)
					for i := 0; i < total; i++ {
						if i < detected {
							words = append(words, map[string]any{"symbols": []map[string]any{{"text": "a"}}})
						} else {
							words = append(words, map[string]any{})
						}
					}
					return words
				}(),
			}},
		}},
	}
	bs, _ := json.Marshal(raw)
	_ = json.Unmarshal(bs, &page)
	return page
}

func TestVisionRecognizeStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusForbidden, KindQuota},
		{http.StatusTooManyRequests, KindRateLimit},
		{http.StatusBadRequest, KindBadRequest},
		{http.StatusInternalServerError, KindGeneric},
	}

	for _, tt := range tests {
		_, p := newVisionTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		})

		_, err := p.Recognize(context.Background(), Input{MIMEType: constants.MIMEPNG, Data: []byte("x")})
		require.Error(t, err)

		var perr *ProviderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, tt.status, perr.StatusCode)
		assert.Equal(t, tt.kind, perr.Kind)
	}
}

func TestVisionRecognizeInlineError(t *testing.T) {
	_, p := newVisionTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]any{{
				"error": map[string]any{"code": 429, "message": "rate limited"},
			}},
		})
	})

	_, err := p.Recognize(context.Background(), Input{MIMEType: constants.MIMEPNG, Data: []byte("x")})

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindRateLimit, perr.Kind)
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTotalExplicitKeyword(t *testing.T) {
	guess := ExtractTotal("STORE\nItems 2\nTotal: $123.45", []float64{123.45, 2})
	assert.Equal(t, 123.45, guess.Amount)
	assert.Equal(t, float64(ConfidenceExplicit), guess.Confidence)
}

func TestExtractTotalKeywordVariants(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"grand total 45.00", 45.00},
		{"AMOUNT DUE: 12.50", 12.50},
		{"balance due $7.25", 7.25},
		{"final amount 300", 300},
	}
	for _, tt := range tests {
		guess := ExtractTotal(tt.text, nil)
		assert.Equal(t, tt.want, guess.Amount, tt.text)
		assert.Equal(t, float64(ConfidenceExplicit), guess.Confidence, tt.text)
	}
}

func TestExtractTotalPositionalFallback(t *testing.T) {
	// No keyword anywhere; the largest number reappears in the last line.
	text := "SHOP\nthing one 10.00\nthing two 37.50\n250.00"
	guess := ExtractTotal(text, []float64{250.00, 37.50, 10.00})
	assert.Equal(t, 250.00, guess.Amount)
	assert.Equal(t, float64(ConfidencePositional), guess.Confidence)
}

func TestExtractTotalLargestWithoutCorroboration(t *testing.T) {
	// Largest number appears nowhere near the end of the text.
	text := "SHOP\n250.00 opening line\nthing 10.00\nthing 37.50\nthanks\ncome again\nbye"
	guess := ExtractTotal(text, []float64{250.00, 37.50, 10.00})
	assert.Equal(t, 250.00, guess.Amount)
	assert.Equal(t, float64(ConfidenceLargest), guess.Confidence)
}

func TestExtractTotalNoNumbers(t *testing.T) {
	guess := ExtractTotal("no digits at all", nil)
	assert.Equal(t, 0.0, guess.Amount)
	assert.Equal(t, 0.0, guess.Confidence)
}

func TestExtractTotalConfidenceIsClosedSet(t *testing.T) {
	// Confidence must always be one of {0, 50, 70, 95}.
	valid := map[float64]bool{0: true, 50: true, 70: true, 95: true}
	inputs := []struct {
		text    string
		numbers []float64
	}{
		{"Total: 12.00", []float64{12}},
		{"just text", nil},
		{"a 5.00\nb 6.00\n6.00", []float64{6, 5}},
		{"6.00 up top\nfiller\nfiller\nfiller\nend", []float64{6, 5}},
	}
	for _, in := range inputs {
		guess := ExtractTotal(in.text, in.numbers)
		assert.True(t, valid[guess.Confidence], "unexpected confidence %v for %q", guess.Confidence, in.text)
	}
}

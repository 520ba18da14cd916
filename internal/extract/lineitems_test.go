package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLineItems(t *testing.T) {
	text := `CORNER CAFE
Flat White 4.50
Banana Bread $6.00
Total 10.50`

	items := ExtractLineItems(text)
	require.Len(t, items, 2)

	assert.Equal(t, "Flat White", items[0].Description)
	assert.Equal(t, 4.50, items[0].Amount)
	assert.Equal(t, "Banana Bread", items[1].Description)
	assert.Equal(t, 6.00, items[1].Amount)

	for _, item := range items {
		assert.Equal(t, float64(LineItemConfidence), item.Confidence)
	}
}

func TestExtractLineItemsRejections(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"total row", "Total 10.50"},
		{"subtotal row", "Subtotal 9.00"},
		{"tax row", "Tax 1.50"},
		{"short description", "ab 4.00"},
		{"numeric description", "12345 4.00"},
		{"amount without two decimals", "Coffee 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ExtractLineItems(tt.text))
		})
	}
}

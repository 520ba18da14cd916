package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/internal/extract"
	"github.com/tidebooks/tidebooks/internal/ocr"
)

func TestFromOCRResultPreservesLineItems(t *testing.T) {
	companyID := uuid.New()
	res := &ocr.Result{
		Vendor: "CORNER CAFE",
		Date:   "12/01/2024",
		Total:  10.50,
		LineItems: []extract.LineItem{
			{Description: "Flat White coffee", Amount: 4.50, Confidence: 80},
			{Description: "Printer toner", Amount: 6.00, Confidence: 80},
		},
	}

	entry := FromOCRResult(res, companyID, "Johnson Enterprises Ltd")

	assert.Equal(t, companyID, entry.CompanyID)
	assert.Equal(t, "Johnson Enterprises Ltd", entry.CompanyName)
	assert.Equal(t, "12/01/2024", entry.Date)
	assert.Equal(t, "CORNER CAFE", entry.StoreName)
	assert.Equal(t, 10.50, entry.Total)

	require.Len(t, entry.Items, 2)
	assert.Equal(t, "Flat White coffee", entry.Items[0].Name)
	assert.Equal(t, "$4.50", entry.Items[0].Price)
	assert.Equal(t, constants.Food, entry.Items[0].Category)
	assert.Equal(t, "Printer toner", entry.Items[1].Name)
	assert.Equal(t, "$6.00", entry.Items[1].Price)
	assert.Equal(t, constants.Office, entry.Items[1].Category)
}

func TestFromOCRResultDerivesItemsFromNumbers(t *testing.T) {
	res := &ocr.Result{
		Vendor:           "SHOP",
		Total:            99.10,
		ExtractedNumbers: []float64{99.10, 50.00, 25.25, 10.00, 5.00, 1.00, 0.50},
	}

	entry := FromOCRResult(res, uuid.New(), "Acme")

	require.Len(t, entry.Items, 5, "derived items sliced to the top 5")
	assert.Equal(t, "Item 1", entry.Items[0].Name)
	assert.Equal(t, "$99.10", entry.Items[0].Price)
	for _, item := range entry.Items {
		assert.Equal(t, constants.Other, item.Category)
	}
}

func TestFromOCRResultSyntheticItemWhenNothingExtractable(t *testing.T) {
	res := &ocr.Result{
		Vendor:        "SHOP",
		Total:         12.00,
		ProcessedText: "google-vision: SHOP - Total: $12.00",
	}

	entry := FromOCRResult(res, uuid.New(), "Acme")

	require.Len(t, entry.Items, 1)
	assert.Equal(t, "google-vision: SHOP - Total: $12.00", entry.Items[0].Name)
	assert.Equal(t, "$12.00", entry.Items[0].Price)
	assert.Equal(t, constants.Other, entry.Items[0].Category)
}

func TestFromOCRResultDefaults(t *testing.T) {
	entry := FromOCRResult(&ocr.Result{}, uuid.New(), "Acme")
	assert.Equal(t, "Unknown Vendor", entry.StoreName)
	assert.NotEmpty(t, entry.Date, "missing date falls back to today")
}

func TestFromOCRResultTotalIndependentOfItemSum(t *testing.T) {
	// The entry total is the extractor's best guess; it is deliberately not
	// reconciled with the sum of item prices.
	res := &ocr.Result{
		Vendor: "SHOP",
		Total:  100.00,
		LineItems: []extract.LineItem{
			{Description: "lone item", Amount: 1.00, Confidence: 80},
		},
	}
	entry := FromOCRResult(res, uuid.New(), "Acme")
	assert.Equal(t, 100.00, entry.Total)
	assert.Equal(t, "$1.00", entry.Items[0].Price)
}

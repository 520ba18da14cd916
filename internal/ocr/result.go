package ocr

import (
	"fmt"

	"github.com/tidebooks/tidebooks/internal/extract"
)

// Result is the pipeline output for one file: the accepted recognition plus
// every structured field the extractors derived from it. Results are never
// mutated after creation; the manual-correction flow produces a new record.
type Result struct {
	Provider         string
	Text             string
	Confidence       float64
	Vendor           string
	Date             string
	Total            float64
	TotalConfidence  float64
	ExtractedNumbers []float64
	LineItems        []extract.LineItem
	ProcessedText    string
	FileName         string
	FileSize         int
}

// buildResult folds one provider's raw recognition into a Result by running
// every extractor over the recognized text.
func buildResult(providerName string, in Input, rec RecognitionResult) *Result {
	numbers := extract.ExtractNumbers(rec.Text)
	vendor := extract.ExtractVendor(rec.Text)
	date, _ := extract.ExtractDate(rec.Text)
	total := extract.ExtractTotal(rec.Text, numbers)
	lineItems := extract.ExtractLineItems(rec.Text)

	return &Result{
		Provider:         providerName,
		Text:             rec.Text,
		Confidence:       rec.Confidence,
		Vendor:           vendor,
		Date:             date,
		Total:            total.Amount,
		TotalConfidence:  total.Confidence,
		ExtractedNumbers: numbers,
		LineItems:        lineItems,
		ProcessedText:    fmt.Sprintf("%s: %s - Total: $%.2f", providerName, vendor, total.Amount),
		FileName:         in.FileName,
		FileSize:         len(in.Data),
	}
}

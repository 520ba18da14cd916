// Package ledger converts accepted OCR results into append-only ledger
// entries and aggregates them for accountant views.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/internal/entity"
	"github.com/tidebooks/tidebooks/internal/ocr"
)

// maxDerivedItems caps how many extracted numbers become placeholder items
// when the receipt body yielded no parseable line items.
const maxDerivedItems = 5

// FromOCRResult projects one accepted OCR result onto a ledger entry.
// Categories are assigned exactly once here; the entry total stays the
// extractor's best guess and is not reconciled against the item sum.
func FromOCRResult(res *ocr.Result, companyID uuid.UUID, companyName string) entity.LedgerEntry {
	date := res.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	vendor := res.Vendor
	if vendor == "" {
		vendor = "Unknown Vendor"
	}

	return entity.LedgerEntry{
		CompanyID:   companyID,
		CompanyName: companyName,
		Date:        date,
		StoreName:   vendor,
		Total:       res.Total,
		Items:       itemsFromResult(res),
	}
}

func itemsFromResult(res *ocr.Result) []entity.LedgerItem {
	if len(res.LineItems) > 0 {
		items := make([]entity.LedgerItem, len(res.LineItems))
		for i, li := range res.LineItems {
			items[i] = entity.LedgerItem{
				Name:     li.Description,
				Price:    FormatPrice(li.Amount),
				Category: constants.Categorize(li.Description),
			}
		}
		return items
	}

	if len(res.ExtractedNumbers) > 0 {
		numbers := res.ExtractedNumbers
		if len(numbers) > maxDerivedItems {
			numbers = numbers[:maxDerivedItems]
		}
		items := make([]entity.LedgerItem, len(numbers))
		for i, amount := range numbers {
			items[i] = entity.LedgerItem{
				Name:     fmt.Sprintf("Item %d", i+1),
				Price:    FormatPrice(amount),
				Category: constants.Other,
			}
		}
		return items
	}

	// Nothing extractable: keep a single synthetic item so the entry still
	// renders in review screens.
	name := res.ProcessedText
	if name == "" {
		name = "OCR Extracted Item"
	}
	return []entity.LedgerItem{{
		Name:     name,
		Price:    FormatPrice(res.Total),
		Category: constants.Other,
	}}
}

// FormatPrice renders an amount the way ledger items store it.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

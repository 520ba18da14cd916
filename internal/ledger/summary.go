package ledger

import (
	"strconv"
	"strings"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/internal/entity"
)

// Summary is the accountant-dashboard rollup for one company's ledger.
type Summary struct {
	TotalByCategory map[constants.Category]float64
	GrandTotal      float64
	EntryCount      int
	LastActivity    string
}

// Summarize aggregates entries by item category. The grand total sums entry
// totals, not item prices; the two are independently sourced.
func Summarize(entries []entity.LedgerEntry) Summary {
	s := Summary{TotalByCategory: make(map[constants.Category]float64)}

	for _, entry := range entries {
		s.GrandTotal += entry.Total
		s.EntryCount++
		if s.LastActivity == "" {
			// entries arrive ordered by date descending
			s.LastActivity = entry.Date
		}

		for _, item := range entry.Items {
			category := item.Category
			if category == "" {
				category = constants.Other
			}
			price, err := ParsePrice(item.Price)
			if err != nil {
				continue
			}
			s.TotalByCategory[category] += price
		}
	}

	return s
}

// ParsePrice reads a currency-formatted item price ("$12.34") back into a
// number.
func ParsePrice(price string) (float64, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(price), "$")
	cleaned = strings.ReplaceAll(strings.TrimSpace(cleaned), ",", "")
	return strconv.ParseFloat(cleaned, 64)
}

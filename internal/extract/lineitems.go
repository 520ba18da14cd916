package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// LineItemConfidence is a policy constant, not a measurement: every accepted
// description/amount pair gets the same score.
const LineItemConfidence = 80

// LineItem is one parsed item/price pair from a receipt body.
type LineItem struct {
	Description string
	Amount      float64
	Confidence  float64
}

var (
	lineItemPattern = regexp.MustCompile(`^(.+?)\s+\$?(\d+\.\d{2})$`)
	summaryPrefix   = regexp.MustCompile(`(?i)^(total|subtotal|tax|date|time)`)
)

// ExtractLineItems matches "description followed by a two-decimal amount at
// line end" per line. Summary rows (total/subtotal/tax) and degenerate
// descriptions are rejected.
func ExtractLineItems(text string) []LineItem {
	var items []LineItem

	for _, line := range strings.Split(text, "\n") {
		match := lineItemPattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}

		description := strings.TrimSpace(match[1])
		if len(description) < 3 || summaryPrefix.MatchString(description) || pureNumberLine.MatchString(description) {
			continue
		}

		amount, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			continue
		}

		items = append(items, LineItem{
			Description: description,
			Amount:      amount,
			Confidence:  LineItemConfidence,
		})
	}

	return items
}

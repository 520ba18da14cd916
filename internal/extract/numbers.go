// Package extract turns raw recognized text into structured candidate
// financial fields. Everything here is deterministic and rule-based: pure
// functions over strings, no external calls.
package extract

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// numberPatterns catch the amount formats receipts actually print. Each
// pattern captures the amount in group 1.
var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),                            // $1,234.56 or $1234
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2}))`),                                  // 1,234.56
	regexp.MustCompile(`(?:^|\s)(\d+\.\d{2})(?:\s|$)`),                                     // standalone 123.45
	regexp.MustCompile(`(?i)(?:total|amount|sum|balance|due|paid)[\s:]*\$?\s*(\d+\.?\d*)`), // total: $123.45
}

var amountCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// ExtractNumbers collects every plausible currency amount in text,
// deduplicated and sorted descending. The ordering is load-bearing: the total
// heuristic treats the largest value as the default candidate.
func ExtractNumbers(text string) []float64 {
	seen := make(map[float64]struct{})
	var numbers []float64

	for _, pattern := range numberPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			raw := match[1]
			if raw == "" {
				raw = match[0]
			}
			value, err := strconv.ParseFloat(amountCleaner.Replace(raw), 64)
			if err != nil || math.IsInf(value, 0) || math.IsNaN(value) || value <= 0 {
				continue
			}
			if _, dup := seen[value]; dup {
				continue
			}
			seen[value] = struct{}{}
			numbers = append(numbers, value)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(numbers)))
	return numbers
}

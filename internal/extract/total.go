package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Total confidence tiers. Explicit keyword matches are trusted most: receipts
// reliably print a "Total" label. The positional fallback exists because
// low-quality scans often fail keyword detection but still carry the total as
// the last or largest number on the page.
const (
	ConfidenceExplicit   = 95
	ConfidencePositional = 70
	ConfidenceLargest    = 50
)

// TotalGuess is the extractor's best total candidate with its confidence.
type TotalGuess struct {
	Amount     float64
	Confidence float64
}

var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:total|grand\s*total|amount\s*due|balance\s*due|final\s*amount)[\s:]*\$?\s*(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)(?:total|sum|amount)[\s:]*\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)\$\s*(\d+\.\d{2})\s*(?:total|amount|due)`),
}

// ExtractTotal resolves the document total. Explicit "total"-keyword amounts
// win with confidence 95; otherwise the largest extracted number is used, at
// confidence 70 when it reappears verbatim in the last three lines of text
// and 50 when it does not. No numbers at all yields {0, 0}.
func ExtractTotal(text string, extractedNumbers []float64) TotalGuess {
	for _, pattern := range totalPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		raw := match[1]
		if raw == "" {
			raw = match[0]
		}
		amount, err := strconv.ParseFloat(amountCleaner.Replace(raw), 64)
		if err != nil {
			continue
		}
		return TotalGuess{Amount: amount, Confidence: ConfidenceExplicit}
	}

	if len(extractedNumbers) == 0 {
		return TotalGuess{}
	}

	// extractedNumbers is sorted descending, so the head is the largest.
	largest := extractedNumbers[0]
	for _, v := range extractedNumbers {
		if v > largest {
			largest = v
		}
	}

	needle := strconv.FormatFloat(largest, 'f', -1, 64)
	lines := strings.Split(text, "\n")
	checked := 0
	for i := len(lines) - 1; i >= 0 && checked < 3; i-- {
		checked++
		if strings.Contains(lines[i], needle) {
			return TotalGuess{Amount: largest, Confidence: ConfidencePositional}
		}
	}

	return TotalGuess{Amount: largest, Confidence: ConfidenceLargest}
}

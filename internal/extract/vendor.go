package extract

import (
	"regexp"
	"strings"
)

const unknownVendor = "Unknown Vendor"

var (
	pureNumberLine = regexp.MustCompile(`^\d+$`)
	metaLine       = regexp.MustCompile(`(?i)date|time|receipt|invoice`)
	startsWithDate = regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`)
)

// ExtractVendor guesses the vendor from the top of the receipt. Printed store
// headers are usually an all-caps line within the first few lines; failing
// that, the first line that is neither a number nor a date is taken.
func ExtractVendor(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); len(trimmed) > 2 {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return unknownVendor
	}

	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		line := lines[i]

		if pureNumberLine.MatchString(line) || metaLine.MatchString(line) || len(line) < 3 {
			continue
		}

		if line == strings.ToUpper(line) && len(line) > 3 {
			return line
		}

		if !startsWithDigit(line) && !startsWithDate.MatchString(line) {
			return line
		}
	}

	return lines[0]
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

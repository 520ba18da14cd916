package extract

import "regexp"

// datePatterns are tried in order; the first full match is returned verbatim,
// with no normalization to a canonical format.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b`),                                                   // MM/DD/YYYY and friends
	regexp.MustCompile(`\b\d{2,4}[/\-.]\d{1,2}[/\-.]\d{1,2}\b`),                                                   // YYYY/MM/DD
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{2,4}\b`), // Month DD, YYYY
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4}\b`),   // DD Month YYYY
}

// ExtractDate returns the first date-looking substring in text.
func ExtractDate(text string) (string, bool) {
	for _, pattern := range datePatterns {
		if match := pattern.FindString(text); match != "" {
			return match, true
		}
	}
	return "", false
}

package constants

import (
	"regexp"
	"strings"
)

// Category is the accounting bucket assigned to a single ledger item.
type Category string

const (
	Food          Category = "food"
	Transport     Category = "transport"
	Asset         Category = "asset"
	Communication Category = "communication"
	Office        Category = "office"
	Education     Category = "education"
	Other         Category = "other"
)

var allCategories = []Category{
	Food,
	Transport,
	Asset,
	Communication,
	Office,
	Education,
	Other,
}

// categoryRules are evaluated in order; the first match wins.
var categoryRules = []struct {
	re  *regexp.Regexp
	cat Category
}{
	{regexp.MustCompile(`(?i)food|meal|lunch|dinner|breakfast|coffee|burger|pizza|sandwich|grocery|fruit|vegetable|meat|fish`), Food},
	{regexp.MustCompile(`(?i)fuel|gas|petrol|taxi|uber|lyft|transport|fare|travel|flight|train|bus`), Transport},
	{regexp.MustCompile(`(?i)equipment|tool|hardware|device|computer|laptop|keyboard|mouse|software|license`), Asset},
	{regexp.MustCompile(`(?i)phone|data|internet|airtime|call|mobile|wifi|cloud|hosting|domain`), Communication},
	{regexp.MustCompile(`(?i)office|paper|pen|ink|toner|staple|clip|folder|binder`), Office},
	{regexp.MustCompile(`(?i)training|course|seminar|conference|workshop|certification|book|subscription`), Education},
}

// Categorize maps a free-text item description to a Category.
// Unmatched text always lands in Other.
func Categorize(itemName string) Category {
	for _, rule := range categoryRules {
		if rule.re.MatchString(itemName) {
			return rule.cat
		}
	}
	return Other
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize resolves user-supplied category text (e.g. from the manual
// entry form) to a known Category. Unknown input falls back to Other.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}

	return Other, false
}

// Valid reports whether c is one of the fixed category values.
func Valid(c Category) bool {
	for _, cat := range allCategories {
		if c == cat {
			return true
		}
	}
	return false
}

package extract

import (
	"regexp"
	"strings"
)

var (
	// "Senior Engineer at Acme Corp"
	titleAtCompanyPattern = regexp.MustCompile(`(?i)^(.+?)\s+at\s+(.+)$`)
	// "Senior Engineer, Acme Corp"
	titleCommaCompanyPattern = regexp.MustCompile(`^(.+?),\s+(.+)$`)
	// "San Francisco, California" or "Austin, Texas, USA"
	locationPattern = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*(?:,\s+[A-Z][a-z]+)*)`)
)

// SplitFullName splits a full name into (first, last). The first
// whitespace token is the first name; everything after it, rejoined with
// single spaces, is the last name.
func SplitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// ParseTitleCompany parses free text into (title, company). The
// "<title> at <company>" pattern is tried first (case-insensitive), then
// "<title>, <company>". Text matching neither is the whole title with an
// empty company.
func ParseTitleCompany(text string) (string, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}

	if m := titleAtCompanyPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if m := titleCommaCompanyPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return text, ""
}

// ExtractLocation finds the first "City, State[, Country]"-shaped
// substring of capitalized words in free text. Returns "" if none found.
func ExtractLocation(text string) string {
	if text == "" {
		return ""
	}
	if m := locationPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

package dedupe

import (
	"regexp"
	"strings"
)

// Identity URL patterns, tried in order. They tolerate scheme and host
// variants and bare path forms.
var identityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)linkedin\.com/in/([^/?#]+)`),
	regexp.MustCompile(`(?i)/in/([^/?#]+)`),
	regexp.MustCompile(`(?i)\bin/([^/?#]+)`),
}

// IdentityKey derives the normalized lower-case username from an identity
// URL. Scheme and host variants are stripped; the path segment after an
// "in/" marker is preferred; query and fragment suffixes are dropped. A
// value with no URL shape is treated as a bare username. Empty input
// yields no key.
func IdentityKey(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}

	for _, pattern := range identityPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return strings.ToLower(strings.Trim(m[1], "/"))
		}
	}

	key := strings.ToLower(url)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	return strings.Trim(key, "/ ")
}

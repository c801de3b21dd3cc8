package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractHref pulls the first anchor href out of a cell that carries raw
// markup. Obfuscated exports are scraped from vendor pages, so URL cells
// sometimes arrive as full <a> fragments rather than bare URLs. Plain
// values pass through unchanged.
func extractHref(value string) string {
	if !strings.Contains(value, "<a") {
		return value
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(value))
	if err != nil {
		return value
	}
	if href, ok := doc.Find("a[href]").First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	return value
}

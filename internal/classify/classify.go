// Package classify identifies the source format of a candidate CSV export
// from its column headers. Classification is a pure function of the headers:
// identical headers always produce identical results, and classification
// never fails; it degrades to FormatUnknown with zero confidence.
package classify

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-ingest/internal/types"
	"github.com/jonathan/candidate-ingest/internal/vocab"
)

// Scoring constants. Structural overrides dominate substring noise.
const (
	indicatorScore    = 1.0
	synonymScore      = 0.5
	nestedForcedScore = 10.0
	flatForcedScore   = 4.0
	// confidenceDivisor normalizes a raw score to a 0..1 confidence.
	confidenceDivisor = 5.0
	// subsetConfidence applies when headers fall inside the canonical
	// vocabulary without any format scoring above zero.
	subsetConfidence = 0.7
)

// Classifier detects source formats using an injected vocabulary.
type Classifier struct {
	vocab *vocab.Vocabulary
}

// NewClassifier creates a Classifier. A nil vocabulary uses the built-in default.
func NewClassifier(v *vocab.Vocabulary) *Classifier {
	if v == nil {
		v = vocab.Default()
	}
	return &Classifier{vocab: v}
}

// Classify determines the source format of a file from its headers.
// Sample rows are accepted for future heuristics but unused today.
func (c *Classifier) Classify(headers []string, _ []map[string]string) types.ClassificationResult {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	// Fast path: the headers already contain the full required canonical
	// schema. Treat as standardized so no source-specific parsing rules
	// get misapplied to clean data.
	if containsAll(lower, types.RequiredColumns) {
		return types.ClassificationResult{
			Format:     types.FormatCanonical,
			Confidence: 1.0,
			Evidence:   []string{"detected required canonical schema columns; treating as already standardized"},
		}
	}

	scores := make(map[types.SourceFormat]float64)
	evidence := make(map[types.SourceFormat][]string)

	for _, format := range types.KnownFormats {
		for _, indicator := range c.vocab.Indicators(format) {
			if anyContains(lower, strings.ToLower(indicator)) {
				scores[format] += indicatorScore
				evidence[format] = append(evidence[format], fmt.Sprintf("found %q in column names", indicator))
			}
		}

		matches := c.countSynonymMatches(lower, format)
		if matches > 0 {
			scores[format] += float64(matches) * synonymScore
			evidence[format] = append(evidence[format], fmt.Sprintf("matched %d known column synonyms", matches))
		}
	}

	// Structural override: dotted nested-path headers are decisive
	// regardless of what the substring search found.
	for _, marker := range c.vocab.NestedMarkers {
		if anyContains(lower, strings.ToLower(marker)) {
			scores[types.FormatNested] = nestedForcedScore
			evidence[types.FormatNested] = []string{"detected nested export with dotted candidate.* columns"}
			break
		}
	}

	// Structural override: the plain flat-export column quad, unless a
	// stronger signal already scored higher.
	if c.hasFlatSimpleShape(lower) && scores[types.FormatFlatSimple] < flatForcedScore {
		scores[types.FormatFlatSimple] = flatForcedScore
		evidence[types.FormatFlatSimple] = []string{"detected flat export with simple column names"}
	}

	best, bestScore := pickBest(scores)
	if bestScore > 0 {
		confidence := bestScore / confidenceDivisor
		if confidence > 1.0 {
			confidence = 1.0
		}
		return types.ClassificationResult{
			Format:     best,
			Confidence: confidence,
			Evidence:   evidence[best],
		}
	}

	// Nothing scored. If every header is at least canonical vocabulary,
	// assume standardized data with reduced confidence.
	if len(lower) > 0 && c.allInCanonicalVocabulary(lower) {
		return types.ClassificationResult{
			Format:     types.FormatCanonical,
			Confidence: subsetConfidence,
			Evidence:   []string{"headers match canonical column vocabulary"},
		}
	}

	return types.ClassificationResult{
		Format:     types.FormatUnknown,
		Confidence: 0,
		Evidence:   []string{"no known patterns detected"},
	}
}

// countSynonymMatches counts headers that exactly match a known synonym
// for the format (case-insensitive).
func (c *Classifier) countSynonymMatches(lower []string, format types.SourceFormat) int {
	variants := make(map[string]bool)
	for _, list := range c.vocab.Synonyms(format) {
		for _, v := range list {
			variants[strings.ToLower(v)] = true
		}
	}
	matches := 0
	for _, h := range lower {
		if variants[h] {
			matches++
		}
	}
	return matches
}

// hasFlatSimpleShape reports whether each flat-export marker column name
// appears as a substring of some header.
func (c *Classifier) hasFlatSimpleShape(lower []string) bool {
	if len(c.vocab.FlatSimpleMarkers) == 0 {
		return false
	}
	for _, marker := range c.vocab.FlatSimpleMarkers {
		if !anyContains(lower, strings.ToLower(marker)) {
			return false
		}
	}
	return true
}

func (c *Classifier) allInCanonicalVocabulary(lower []string) bool {
	for _, h := range lower {
		if h == "" {
			continue
		}
		if !c.vocab.InCanonicalVocabulary(h) {
			return false
		}
	}
	return true
}

// pickBest returns the highest-scoring format. Ties resolve to the
// earliest format in types.KnownFormats so classification stays
// deterministic.
func pickBest(scores map[types.SourceFormat]float64) (types.SourceFormat, float64) {
	best := types.FormatUnknown
	bestScore := 0.0
	for _, format := range types.KnownFormats {
		if scores[format] > bestScore {
			best = format
			bestScore = scores[format]
		}
	}
	return best, bestScore
}

func anyContains(lower []string, needle string) bool {
	for _, h := range lower {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}

func containsAll(lower []string, needed []string) bool {
	set := make(map[string]bool, len(lower))
	for _, h := range lower {
		set[h] = true
	}
	for _, n := range needed {
		if !set[n] {
			return false
		}
	}
	return true
}

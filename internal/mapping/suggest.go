package mapping

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/jonathan/candidate-ingest/internal/types"
	"github.com/jonathan/candidate-ingest/internal/vocab"
)

// maxSuggestionDistance is the largest edit distance still worth surfacing.
const maxSuggestionDistance = 3

// Suggestion is a diagnostic near-miss for an unmapped column. Suggestions
// are operator-facing only; they never feed back into the mapping.
type Suggestion struct {
	Column    string // the unmapped source column
	Canonical string // canonical column the closest synonym belongs to
	Synonym   string // the closest known synonym
	Distance  int    // edit distance between column and synonym
}

// Suggest computes nearest-synonym suggestions for every unmapped column.
// For each column the closest synonym across all formats is reported when
// its edit distance is within maxSuggestionDistance.
func Suggest(headers []string, mapping *ColumnMapping, v *vocab.Vocabulary) []Suggestion {
	if v == nil {
		v = vocab.Default()
	}

	var out []Suggestion
	for _, column := range Unmapped(headers, mapping) {
		if s, ok := closestSynonym(column, v); ok {
			out = append(out, s)
		}
	}
	return out
}

func closestSynonym(column string, v *vocab.Vocabulary) (Suggestion, bool) {
	lower := strings.ToLower(column)
	best := Suggestion{Column: column, Distance: maxSuggestionDistance + 1}

	for _, format := range types.KnownFormats {
		synonyms := v.Synonyms(format)
		for _, canonical := range types.AllColumns {
			for _, variant := range synonyms[canonical] {
				dist := levenshtein.Distance(lower, strings.ToLower(variant), nil)
				if dist < best.Distance {
					best.Canonical = canonical
					best.Synonym = variant
					best.Distance = dist
				}
			}
		}
	}

	return best, best.Distance <= maxSuggestionDistance
}

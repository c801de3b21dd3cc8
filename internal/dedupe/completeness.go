package dedupe

import (
	"strings"

	"github.com/jonathan/candidate-ingest/internal/types"
)

// Completeness weights. Required fields count double.
const (
	requiredFieldPoints = 2
	optionalFieldPoints = 1
	// MaxCompletenessScore is 6 required fields * 2 + 4 optional fields * 1.
	MaxCompletenessScore = 16
)

// CompletenessScore measures how filled-in a record is: 2 points per
// non-blank required field, 1 per non-blank optional field. The score is
// derived on demand, never stored.
func CompletenessScore(rec *types.CanonicalRecord) int {
	score := 0
	for _, col := range types.RequiredColumns {
		if value, _ := rec.Field(col); strings.TrimSpace(value) != "" {
			score += requiredFieldPoints
		}
	}
	for _, col := range types.OptionalColumns {
		if value, _ := rec.Field(col); strings.TrimSpace(value) != "" {
			score += optionalFieldPoints
		}
	}
	return score
}

// MissingRequired lists the required columns a record leaves blank.
func MissingRequired(rec *types.CanonicalRecord) []string {
	var missing []string
	for _, col := range types.RequiredColumns {
		if value, _ := rec.Field(col); strings.TrimSpace(value) == "" {
			missing = append(missing, col)
		}
	}
	return missing
}

package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-ingest/internal/types"
)

func fullRecord() types.CanonicalRecord {
	return types.CanonicalRecord{
		LinkedInURL:    "https://linkedin.com/in/janedoe",
		FirstName:      "Jane",
		LastName:       "Doe",
		Location:       "Austin, Texas",
		CompanyName:    "Acme",
		Title:          "Engineer",
		ExperienceText: "Engineer at Acme",
		EducationText:  "BS - CS - State",
		Summary:        "Builder.",
		Skills:         "Go, SQL",
	}
}

func TestCompletenessScore(t *testing.T) {
	t.Run("empty record scores zero", func(t *testing.T) {
		rec := types.CanonicalRecord{}
		assert.Equal(t, 0, CompletenessScore(&rec))
	})

	t.Run("all required only", func(t *testing.T) {
		rec := fullRecord()
		rec.ExperienceText = ""
		rec.EducationText = ""
		rec.Summary = ""
		rec.Skills = ""
		assert.Equal(t, 12, CompletenessScore(&rec))
	})

	t.Run("required plus two optional", func(t *testing.T) {
		rec := fullRecord()
		rec.Summary = ""
		rec.Skills = ""
		assert.Equal(t, 14, CompletenessScore(&rec))
	})

	t.Run("fully populated hits the max", func(t *testing.T) {
		rec := fullRecord()
		assert.Equal(t, MaxCompletenessScore, CompletenessScore(&rec))
	})

	t.Run("whitespace does not count", func(t *testing.T) {
		rec := types.CanonicalRecord{FirstName: "   ", Title: "\t"}
		assert.Equal(t, 0, CompletenessScore(&rec))
	})
}

func TestMissingRequired(t *testing.T) {
	rec := fullRecord()
	assert.Empty(t, MissingRequired(&rec))

	rec.Location = ""
	rec.Title = "  "
	assert.Equal(t, []string{types.ColumnLocation, types.ColumnTitle}, MissingRequired(&rec))
}

package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-ingest/internal/types"
)

func TestDeduplicate_MoreCompleteRecordWins(t *testing.T) {
	sparse := types.CanonicalRecord{
		LinkedInURL: "https://linkedin.com/in/janedoe",
		FirstName:   "Jane",
		LastName:    "Doe",
		Location:    "Austin, Texas",
		CompanyName: "Acme",
		Title:       "Engineer",
	}
	rich := sparse
	rich.LinkedInURL = "linkedin.com/in/JaneDoe"
	rich.ExperienceText = "Engineer at Acme"
	rich.EducationText = "BS - CS - State"

	kept, report := Deduplicate([]types.CanonicalRecord{sparse, rich})

	require.Len(t, kept, 1)
	assert.Equal(t, "Engineer at Acme", kept[0].ExperienceText)

	require.Len(t, report, 1)
	entry := report[0]
	assert.Equal(t, sparse.LinkedInURL, entry.LinkedInURL)
	assert.Equal(t, 12, entry.CompletenessScore)
	assert.Equal(t, 14, entry.BestRecordScore)
	assert.Equal(t, 2, entry.DuplicateRank)
	assert.Equal(t, 2, entry.TotalDuplicates)
}

func TestDeduplicate_TieKeepsFirstInserted(t *testing.T) {
	first := types.CanonicalRecord{
		LinkedInURL: "https://linkedin.com/in/janedoe",
		FirstName:   "Jane",
		CompanyName: "Acme",
	}
	second := first
	second.CompanyName = "Globex"

	kept, report := Deduplicate([]types.CanonicalRecord{first, second})

	require.Len(t, kept, 1)
	assert.Equal(t, "Acme", kept[0].CompanyName)
	require.Len(t, report, 1)
	assert.Equal(t, "Globex", report[0].CompanyName)
}

func TestDeduplicate_KeylessRecordsNeverMerge(t *testing.T) {
	a := types.CanonicalRecord{FirstName: "Jane", LastName: "Doe"}
	b := types.CanonicalRecord{FirstName: "Jane", LastName: "Doe"}

	kept, report := Deduplicate([]types.CanonicalRecord{a, b})

	assert.Len(t, kept, 2)
	assert.Empty(t, report)
}

func TestDeduplicate_SingletonPassThrough(t *testing.T) {
	rec := types.CanonicalRecord{LinkedInURL: "linkedin.com/in/janedoe", FirstName: "Jane"}

	kept, report := Deduplicate([]types.CanonicalRecord{rec})

	require.Len(t, kept, 1)
	assert.Equal(t, rec, kept[0])
	assert.Empty(t, report)
}

func TestDeduplicate_OutputOrderIsFirstSeen(t *testing.T) {
	records := []types.CanonicalRecord{
		{FirstName: "Keyless One"},
		{LinkedInURL: "linkedin.com/in/alpha", FirstName: "Alpha Sparse"},
		{LinkedInURL: "linkedin.com/in/beta", FirstName: "Beta"},
		{LinkedInURL: "https://www.linkedin.com/in/alpha", FirstName: "Alpha Rich", LastName: "Smith"},
		{FirstName: "Keyless Two"},
	}

	kept, report := Deduplicate(records)

	require.Len(t, kept, 4)
	assert.Equal(t, "Keyless One", kept[0].FirstName)
	// The alpha group resolves at its first-seen position even though the
	// winner arrived later.
	assert.Equal(t, "Alpha Rich", kept[1].FirstName)
	assert.Equal(t, "Beta", kept[2].FirstName)
	assert.Equal(t, "Keyless Two", kept[3].FirstName)
	require.Len(t, report, 1)
	assert.Equal(t, "Alpha Sparse", report[0].FirstName)
}

func TestDeduplicate_LargeGroupRanks(t *testing.T) {
	base := types.CanonicalRecord{LinkedInURL: "linkedin.com/in/janedoe"}

	low := base
	mid := base
	mid.FirstName = "Jane"
	high := base
	high.FirstName = "Jane"
	high.LastName = "Doe"

	kept, report := Deduplicate([]types.CanonicalRecord{low, mid, high})

	require.Len(t, kept, 1)
	assert.Equal(t, "Doe", kept[0].LastName)

	require.Len(t, report, 2)
	assert.Equal(t, 2, report[0].DuplicateRank)
	assert.Equal(t, "Jane", report[0].FirstName)
	assert.Equal(t, 3, report[1].DuplicateRank)
	assert.Equal(t, "", report[1].FirstName)
	for _, entry := range report {
		assert.Equal(t, 3, entry.TotalDuplicates)
		assert.Equal(t, 6, entry.BestRecordScore)
	}
}

func TestDeduplicate_Empty(t *testing.T) {
	kept, report := Deduplicate(nil)
	assert.Empty(t, kept)
	assert.Empty(t, report)
}

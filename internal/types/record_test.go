package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourceFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SourceFormat
	}{
		{"canonical", "canonical", FormatCanonical},
		{"nested", "nested", FormatNested},
		{"flat simple", "flat_simple", FormatFlatSimple},
		{"obfuscated", "obfuscated", FormatObfuscated},
		{"generic crm", "generic_crm", FormatGenericCRM},
		{"unknown tag", "unknown", FormatUnknown},
		{"garbage", "spreadsheet", FormatUnknown},
		{"empty", "", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSourceFormat(tt.input))
		})
	}
}

func TestCanonicalRecord_FieldAccess(t *testing.T) {
	rec := CanonicalRecord{}

	for _, col := range AllColumns {
		ok := rec.SetField(col, "value of "+col)
		require.True(t, ok, "should set canonical column %s", col)

		value, ok := rec.Field(col)
		require.True(t, ok, "should read canonical column %s", col)
		assert.Equal(t, "value of "+col, value)
	}

	assert.False(t, rec.SetField("nickname", "x"), "unknown column must not be settable")
	_, ok := rec.Field("nickname")
	assert.False(t, ok, "unknown column must not be readable")
}

func TestCanonicalRecord_RowOrder(t *testing.T) {
	rec := CanonicalRecord{
		LinkedInURL:    "https://linkedin.com/in/janedoe",
		FirstName:      "Jane",
		LastName:       "Doe",
		Location:       "Austin, Texas",
		CompanyName:    "Acme",
		Title:          "Engineer",
		ExperienceText: "Engineer at Acme",
		EducationText:  "BS - CS - State",
		Summary:        "builder",
		Skills:         "Go, SQL",
	}

	row := rec.Row()
	require.Len(t, row, len(AllColumns))
	assert.Equal(t, "https://linkedin.com/in/janedoe", row[0])
	assert.Equal(t, "Jane", row[1])
	assert.Equal(t, "Doe", row[2])
	assert.Equal(t, "Austin, Texas", row[3])
	assert.Equal(t, "Acme", row[4])
	assert.Equal(t, "Engineer", row[5])
	assert.Equal(t, "Go, SQL", row[9])
}

func TestSchemaShape(t *testing.T) {
	assert.Len(t, RequiredColumns, 6)
	assert.Len(t, OptionalColumns, 4)
	assert.Len(t, AllColumns, 10)

	// Canonical output order: required then optional.
	assert.Equal(t, ColumnLinkedInURL, AllColumns[0])
	assert.Equal(t, ColumnSkills, AllColumns[9])

	for _, col := range RequiredColumns {
		assert.True(t, IsRequiredColumn(col))
		assert.True(t, IsCanonicalColumn(col))
	}
	for _, col := range OptionalColumns {
		assert.False(t, IsRequiredColumn(col))
		assert.True(t, IsCanonicalColumn(col))
	}
	assert.False(t, IsCanonicalColumn("salary"))
}

func TestDuplicateEntry_Row(t *testing.T) {
	entry := DuplicateEntry{
		LinkedInURL:       "https://linkedin.com/in/janedoe",
		FirstName:         "Jane",
		LastName:          "Doe",
		Title:             "Engineer",
		CompanyName:       "Acme",
		CompletenessScore: 12,
		BestRecordScore:   14,
		DuplicateRank:     2,
		TotalDuplicates:   2,
	}

	row := entry.Row()
	require.Len(t, row, len(DuplicateReportColumns))
	assert.Equal(t, []string{
		"https://linkedin.com/in/janedoe", "Jane", "Doe", "Engineer", "Acme",
		"12", "14", "2", "2",
	}, row)
}

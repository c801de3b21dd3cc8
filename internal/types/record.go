// Package types provides type definitions for structured data used throughout the candidate-ingest system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SourceFormat identifies the export layout a CSV file was produced in.
// The set of formats is closed; extraction strategies are selected by format.
type SourceFormat string

const (
	// FormatCanonical is data already in the canonical schema.
	FormatCanonical SourceFormat = "canonical"
	// FormatNested is an export with dotted nested-path columns
	// (candidate.experiences.0.title and similar).
	FormatNested SourceFormat = "nested"
	// FormatFlatSimple is an export with plain single-word columns
	// (Name, Title, Company, Linkedin).
	FormatFlatSimple SourceFormat = "flat_simple"
	// FormatObfuscated is a scraped export whose columns carry hashed
	// vendor class-name fragments.
	FormatObfuscated SourceFormat = "obfuscated"
	// FormatGenericCRM is a CRM export with candidate_-prefixed columns.
	FormatGenericCRM SourceFormat = "generic_crm"
	// FormatUnknown is any layout no heuristic recognized.
	FormatUnknown SourceFormat = "unknown"
)

// KnownFormats lists every recognizable format in a fixed scoring order.
// The order is load-bearing: classification ties resolve to the earliest entry.
var KnownFormats = []SourceFormat{
	FormatCanonical,
	FormatNested,
	FormatFlatSimple,
	FormatObfuscated,
	FormatGenericCRM,
}

// String returns the format tag.
func (f SourceFormat) String() string {
	return string(f)
}

// ParseSourceFormat converts a tag string to a SourceFormat.
// Unrecognized tags parse as FormatUnknown.
func ParseSourceFormat(s string) SourceFormat {
	switch SourceFormat(s) {
	case FormatCanonical, FormatNested, FormatFlatSimple, FormatObfuscated, FormatGenericCRM:
		return SourceFormat(s)
	default:
		return FormatUnknown
	}
}

// ClassificationResult holds the outcome of source format detection for one file.
// It is produced once per file and never mutated.
type ClassificationResult struct {
	Format     SourceFormat `json:"format"`
	Confidence float64      `json:"confidence"` // 0.0..1.0
	Evidence   []string     `json:"evidence"`   // human-readable detection evidence, in discovery order
}

// CanonicalRecord is the fixed-shape candidate record all sources converge to.
// The ten schema fields are closed; forward-compatible values that have no
// canonical home go into Extras instead of new top-level fields.
type CanonicalRecord struct {
	LinkedInURL    string `json:"linkedin_url"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Location       string `json:"location"`
	CompanyName    string `json:"company_name"`
	Title          string `json:"title"`
	ExperienceText string `json:"experience_text"`
	EducationText  string `json:"education_text"`
	Summary        string `json:"summary"`
	Skills         string `json:"skills"`

	// Extras carries additional named values for forward compatibility.
	// They are never written to the canonical output schema.
	Extras map[string]string `json:"extras,omitempty"`

	// Transient provenance metadata, not part of the persisted schema.
	SourceFile   string       `json:"-"`
	SourceFormat SourceFormat `json:"-"`
}

// Field returns the value of a canonical field by column name.
// The second return is false for names outside the canonical schema.
func (r *CanonicalRecord) Field(name string) (string, bool) {
	switch name {
	case ColumnLinkedInURL:
		return r.LinkedInURL, true
	case ColumnFirstName:
		return r.FirstName, true
	case ColumnLastName:
		return r.LastName, true
	case ColumnLocation:
		return r.Location, true
	case ColumnCompanyName:
		return r.CompanyName, true
	case ColumnTitle:
		return r.Title, true
	case ColumnExperienceText:
		return r.ExperienceText, true
	case ColumnEducationText:
		return r.EducationText, true
	case ColumnSummary:
		return r.Summary, true
	case ColumnSkills:
		return r.Skills, true
	default:
		return "", false
	}
}

// SetField assigns a canonical field by column name.
// Returns false (and assigns nothing) for names outside the canonical schema.
func (r *CanonicalRecord) SetField(name, value string) bool {
	switch name {
	case ColumnLinkedInURL:
		r.LinkedInURL = value
	case ColumnFirstName:
		r.FirstName = value
	case ColumnLastName:
		r.LastName = value
	case ColumnLocation:
		r.Location = value
	case ColumnCompanyName:
		r.CompanyName = value
	case ColumnTitle:
		r.Title = value
	case ColumnExperienceText:
		r.ExperienceText = value
	case ColumnEducationText:
		r.EducationText = value
	case ColumnSummary:
		r.Summary = value
	case ColumnSkills:
		r.Skills = value
	default:
		return false
	}
	return true
}

// Row renders the record as CSV cells in canonical column order.
func (r *CanonicalRecord) Row() []string {
	row := make([]string, 0, len(AllColumns))
	for _, col := range AllColumns {
		value, _ := r.Field(col)
		row = append(row, value)
	}
	return row
}

// DuplicateEntry is one audit-trail row for a record that lost its
// duplicate group to a more complete record.
type DuplicateEntry struct {
	LinkedInURL       string `json:"linkedin_url"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Title             string `json:"title"`
	CompanyName       string `json:"company_name"`
	CompletenessScore int    `json:"completeness_score"`
	BestRecordScore   int    `json:"best_record_score"`
	DuplicateRank     int    `json:"duplicate_rank"`  // 1-based rank within the group, best record is rank 1
	TotalDuplicates   int    `json:"total_duplicates"` // group size including the winner
}

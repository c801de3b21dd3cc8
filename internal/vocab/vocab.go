// Package vocab defines the classification and mapping vocabulary: per-format
// indicator substrings, column-name synonym tables, and the structural rules
// for nested and obfuscated exports. A Vocabulary is built once and injected
// into the classifier and mapper; it is never mutated after construction.
package vocab

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/candidate-ingest/internal/types"
)

// FormatVocab holds the recognition vocabulary for one source format.
type FormatVocab struct {
	// Format is the source format tag this vocabulary belongs to.
	Format string `yaml:"format" validate:"required"`
	// Indicators are literal substrings whose presence in any header
	// scores toward this format.
	Indicators []string `yaml:"indicators,omitempty"`
	// Synonyms maps canonical column names to known source column
	// variants, compared case-insensitively as exact matches.
	Synonyms map[string][]string `yaml:"synonyms,omitempty"`
}

// ObfuscatedRule detects one hashed vendor class-name column by stable
// textual fragments and claims it for a canonical target column.
type ObfuscatedRule struct {
	// Target is the canonical column this rule maps a matching header to.
	Target string `yaml:"target" validate:"required"`
	// Contains are fragments that must all appear in the lower-cased header.
	Contains []string `yaml:"contains" validate:"required,min=1"`
	// Excludes are fragments that must not appear in the header.
	Excludes []string `yaml:"excludes,omitempty"`
}

// Matches reports whether a lower-cased header satisfies the rule's
// fragment constraints.
func (r ObfuscatedRule) Matches(lowerHeader string) bool {
	for _, frag := range r.Contains {
		if !strings.Contains(lowerHeader, strings.ToLower(frag)) {
			return false
		}
	}
	for _, frag := range r.Excludes {
		if strings.Contains(lowerHeader, strings.ToLower(frag)) {
			return false
		}
	}
	return true
}

// Vocabulary is the full recognition configuration for the pipeline.
type Vocabulary struct {
	Formats []FormatVocab `yaml:"formats" validate:"required,min=1,dive"`

	// NestedMarkers are header substrings that force-assign the nested
	// export format a dominant classification score.
	NestedMarkers []string `yaml:"nested_markers,omitempty"`
	// NestedOverrides maps exact dotted source paths (lower-cased) to
	// canonical columns, bypassing the synonym tables.
	NestedOverrides map[string]string `yaml:"nested_overrides,omitempty"`
	// FlatSimpleMarkers are the plain column names whose simultaneous
	// presence suggests the flat simple export format.
	FlatSimpleMarkers []string `yaml:"flat_simple_markers,omitempty"`
	// FlatSimpleFullName names the flat-export columns that hold a full
	// name and must be split into first/last at extraction time.
	FlatSimpleFullName []string `yaml:"flat_simple_full_name,omitempty"`
	// ObfuscatedRules are ordered fragment rules for hashed class-name
	// columns. Order matters: the first unclaimed match per target wins.
	ObfuscatedRules []ObfuscatedRule `yaml:"obfuscated_rules,omitempty" validate:"dive"`
}

// Default returns the built-in vocabulary covering every known format.
func Default() *Vocabulary {
	return &Vocabulary{
		Formats: []FormatVocab{
			{
				Format: types.FormatCanonical.String(),
				Synonyms: map[string][]string{
					types.ColumnLinkedInURL:    {"linkedin_url", "LinkedIn URL", "linkedin", "profile_url"},
					types.ColumnFirstName:      {"first_name", "First Name", "First", "fname"},
					types.ColumnLastName:       {"last_name", "Last Name", "Last", "lname", "surname"},
					types.ColumnLocation:       {"location", "Location", "City", "city"},
					types.ColumnCompanyName:    {"company_name", "Company", "Current Company", "Employer"},
					types.ColumnTitle:          {"title", "Title", "Job Title", "Position", "role"},
					types.ColumnExperienceText: {"experience_text", "Experience", "Work History"},
					types.ColumnEducationText:  {"education_text", "Education", "Education History"},
					types.ColumnSummary:        {"summary", "Summary", "Bio", "About"},
					types.ColumnSkills:         {"skills", "Skills", "Technologies"},
				},
			},
			{
				Format:     types.FormatNested.String(),
				Indicators: []string{"candidate.linkedin", "candidate.firstname", "candidate.experiences.0"},
				Synonyms: map[string][]string{
					types.ColumnLinkedInURL:    {"LinkedIn URL", "linkedin_url", "LinkedIn", "linkedin", "profile_url"},
					types.ColumnFirstName:      {"First Name", "first_name", "First", "fname"},
					types.ColumnLastName:       {"Last Name", "last_name", "Last", "lname", "surname"},
					types.ColumnLocation:       {"Location", "location", "City", "city", "Location (City)"},
					types.ColumnCompanyName:    {"Company", "company_name", "Current Company", "Employer", "company"},
					types.ColumnTitle:          {"Title", "title", "Job Title", "Position", "role"},
					types.ColumnExperienceText: {"Experience", "experience_text", "Work History", "Employment History"},
					types.ColumnEducationText:  {"Education", "education_text", "Education History", "School"},
					types.ColumnSummary:        {"Summary", "summary", "Bio", "About", "description"},
					types.ColumnSkills:         {"Skills", "skills", "Technologies", "tech_skills"},
				},
			},
			{
				Format:     types.FormatFlatSimple.String(),
				Indicators: []string{},
				Synonyms: map[string][]string{
					types.ColumnLinkedInURL: {"Linkedin", "LinkedIn"},
					// Full name column; split into first/last during extraction.
					types.ColumnFirstName:   {"Name"},
					types.ColumnLastName:    {"Name"},
					types.ColumnLocation:    {"Location"},
					types.ColumnCompanyName: {"Company"},
					types.ColumnTitle:       {"Title"},
					types.ColumnSummary:     {"Notes"},
				},
			},
			{
				Format:     types.FormatObfuscated.String(),
				Indicators: []string{"_candidatename_dc5u3", "_candidatedisplayname", "_profilelinktext", "_candidatedetails"},
				Synonyms: map[string][]string{
					types.ColumnLinkedInURL:    {"LinkedIn URL", "linkedin_url", "LinkedIn", "linkedin", "profile_url"},
					types.ColumnFirstName:      {"First Name", "first_name", "First", "fname", "given_name"},
					types.ColumnLastName:       {"Last Name", "last_name", "Last", "lname", "surname", "family_name"},
					types.ColumnLocation:       {"Location", "location", "City", "city", "Location (City)", "address"},
					types.ColumnCompanyName:    {"Company", "company_name", "Current Company", "Employer", "company"},
					types.ColumnTitle:          {"Title", "title", "Job Title", "Position", "role", "current_title"},
					types.ColumnExperienceText: {"Experience", "experience_text", "Work History", "Employment History", "background"},
					types.ColumnEducationText:  {"Education", "education_text", "Education History", "School", "degrees"},
					types.ColumnSummary:        {"Summary", "summary", "Bio", "About", "description", "overview"},
					types.ColumnSkills:         {"Skills", "skills", "Technologies", "tech_skills", "competencies"},
				},
			},
			{
				Format:     types.FormatGenericCRM.String(),
				Indicators: []string{"candidate_"},
				Synonyms: map[string][]string{
					types.ColumnLinkedInURL:    {"linkedin_url"},
					types.ColumnFirstName:      {"first_name"},
					types.ColumnLastName:       {"last_name"},
					types.ColumnLocation:       {"location"},
					types.ColumnCompanyName:    {"company_name"},
					types.ColumnTitle:          {"title"},
					types.ColumnExperienceText: {"experience_text"},
					types.ColumnEducationText:  {"candidate_educations_degree", "candidate_education_major", "candidate_education_school", "candidate_education_schoolEndDat"},
					types.ColumnSummary:        {"summary"},
					types.ColumnSkills:         {"skills"},
				},
			},
		},
		NestedMarkers: []string{"candidate.linkedin", "candidate.firstname", "candidate.experiences.0"},
		NestedOverrides: map[string]string{
			"candidate.linkedin":              types.ColumnLinkedInURL,
			"candidate.firstname":             types.ColumnFirstName,
			"candidate.lastname":              types.ColumnLastName,
			"candidate.location":              types.ColumnLocation,
			"candidate.experiences.0.title":   types.ColumnTitle,
			"candidate.experiences.0.company": types.ColumnCompanyName,
		},
		FlatSimpleMarkers:  []string{"name", "title", "company", "linkedin"},
		FlatSimpleFullName: []string{"name"},
		ObfuscatedRules: []ObfuscatedRule{
			{Target: types.ColumnLinkedInURL, Contains: []string{"candidatename", "href"}},
			{Target: types.ColumnLinkedInURL, Contains: []string{"profilelinktext", "href"}},
			{Target: types.ColumnFirstName, Contains: []string{"candidatedisplayname"}, Excludes: []string{"href"}},
			{Target: types.ColumnTitle, Contains: []string{"candidatedetails"}, Excludes: []string{"href"}},
			{Target: types.ColumnExperienceText, Contains: []string{"content", "_rn39w_34"}},
			{Target: types.ColumnEducationText, Contains: []string{"education"}},
		},
	}
}

// formatVocab returns the vocabulary block for a format, or nil.
func (v *Vocabulary) formatVocab(f types.SourceFormat) *FormatVocab {
	for i := range v.Formats {
		if v.Formats[i].Format == f.String() {
			return &v.Formats[i]
		}
	}
	return nil
}

// Indicators returns the indicator substrings for a format.
func (v *Vocabulary) Indicators(f types.SourceFormat) []string {
	if fv := v.formatVocab(f); fv != nil {
		return fv.Indicators
	}
	return nil
}

// Synonyms returns the synonym table for a format.
func (v *Vocabulary) Synonyms(f types.SourceFormat) map[string][]string {
	if fv := v.formatVocab(f); fv != nil {
		return fv.Synonyms
	}
	return nil
}

// FindCanonical resolves a source column name to a canonical column.
// The classified format's table is consulted first, then every known
// format's table in fixed order, then the canonical column names
// themselves. Returns false when no table knows the column.
func (v *Vocabulary) FindCanonical(column string, format types.SourceFormat) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(column))
	if lower == "" {
		return "", false
	}

	if fv := v.formatVocab(format); fv != nil {
		if canonical, ok := lookupSynonym(fv.Synonyms, lower); ok {
			return canonical, true
		}
	}

	for _, f := range types.KnownFormats {
		if f == format {
			continue
		}
		if fv := v.formatVocab(f); fv != nil {
			if canonical, ok := lookupSynonym(fv.Synonyms, lower); ok {
				return canonical, true
			}
		}
	}

	if types.IsCanonicalColumn(lower) {
		return lower, true
	}

	return "", false
}

// lookupSynonym searches one synonym table for an exact case-insensitive
// match, visiting canonical columns in schema order for determinism.
func lookupSynonym(synonyms map[string][]string, lower string) (string, bool) {
	for _, canonical := range types.AllColumns {
		for _, variant := range synonyms[canonical] {
			if strings.ToLower(variant) == lower {
				return canonical, true
			}
		}
	}
	return "", false
}

// InCanonicalVocabulary reports whether a header matches any synonym of
// the canonical format. Used by the classifier's subset fallback.
func (v *Vocabulary) InCanonicalVocabulary(header string) bool {
	fv := v.formatVocab(types.FormatCanonical)
	if fv == nil {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(header))
	if _, ok := lookupSynonym(fv.Synonyms, lower); ok {
		return true
	}
	return types.IsCanonicalColumn(lower)
}

// IsFlatSimpleFullName reports whether a flat-export column holds a full
// name that extraction must split into first and last.
func (v *Vocabulary) IsFlatSimpleFullName(column string) bool {
	lower := strings.ToLower(strings.TrimSpace(column))
	for _, name := range v.FlatSimpleFullName {
		if strings.ToLower(name) == lower {
			return true
		}
	}
	return false
}

// Validate checks structural integrity: known format tags and canonical
// synonym/override/rule targets.
func (v *Vocabulary) Validate() error {
	if err := validator.New().Struct(v); err != nil {
		return fmt.Errorf("vocabulary validation failed: %w", err)
	}

	seen := make(map[string]bool)
	for _, fv := range v.Formats {
		if types.ParseSourceFormat(fv.Format) == types.FormatUnknown {
			return fmt.Errorf("vocabulary error: unknown format tag %q", fv.Format)
		}
		if seen[fv.Format] {
			return fmt.Errorf("vocabulary error: duplicate format tag %q", fv.Format)
		}
		seen[fv.Format] = true
		for canonical := range fv.Synonyms {
			if !types.IsCanonicalColumn(canonical) {
				return fmt.Errorf("vocabulary error: format %q maps synonyms to non-canonical column %q", fv.Format, canonical)
			}
		}
	}
	for path, canonical := range v.NestedOverrides {
		if !types.IsCanonicalColumn(canonical) {
			return fmt.Errorf("vocabulary error: nested override %q targets non-canonical column %q", path, canonical)
		}
	}
	for _, rule := range v.ObfuscatedRules {
		if !types.IsCanonicalColumn(rule.Target) {
			return fmt.Errorf("vocabulary error: obfuscated rule targets non-canonical column %q", rule.Target)
		}
	}
	return nil
}

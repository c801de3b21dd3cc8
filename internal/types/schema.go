// Package types provides type definitions for structured data used throughout the candidate-ingest system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strconv"

// Canonical column names. The schema is fixed and closed.
const (
	ColumnLinkedInURL    = "linkedin_url"
	ColumnFirstName      = "first_name"
	ColumnLastName       = "last_name"
	ColumnLocation       = "location"
	ColumnCompanyName    = "company_name"
	ColumnTitle          = "title"
	ColumnExperienceText = "experience_text"
	ColumnEducationText  = "education_text"
	ColumnSummary        = "summary"
	ColumnSkills         = "skills"
)

// RequiredColumns are the canonical fields every complete record should carry.
// They weigh double in completeness scoring.
var RequiredColumns = []string{
	ColumnLinkedInURL,
	ColumnFirstName,
	ColumnLastName,
	ColumnLocation,
	ColumnCompanyName,
	ColumnTitle,
}

// OptionalColumns are the canonical fields that may be empty.
var OptionalColumns = []string{
	ColumnExperienceText,
	ColumnEducationText,
	ColumnSummary,
	ColumnSkills,
}

// AllColumns is the canonical output column order: required then optional.
var AllColumns = append(append([]string{}, RequiredColumns...), OptionalColumns...)

// DuplicateReportColumns is the fixed column order of the duplicate audit output.
var DuplicateReportColumns = []string{
	ColumnLinkedInURL,
	ColumnFirstName,
	ColumnLastName,
	ColumnTitle,
	ColumnCompanyName,
	"completeness_score",
	"best_record_score",
	"duplicate_rank",
	"total_duplicates",
}

// IsCanonicalColumn reports whether name is one of the ten schema columns.
func IsCanonicalColumn(name string) bool {
	for _, col := range AllColumns {
		if col == name {
			return true
		}
	}
	return false
}

// IsRequiredColumn reports whether name is one of the six required columns.
func IsRequiredColumn(name string) bool {
	for _, col := range RequiredColumns {
		if col == name {
			return true
		}
	}
	return false
}

// Row renders the audit entry as CSV cells in DuplicateReportColumns order.
func (d *DuplicateEntry) Row() []string {
	return []string{
		d.LinkedInURL,
		d.FirstName,
		d.LastName,
		d.Title,
		d.CompanyName,
		strconv.Itoa(d.CompletenessScore),
		strconv.Itoa(d.BestRecordScore),
		strconv.Itoa(d.DuplicateRank),
		strconv.Itoa(d.TotalDuplicates),
	}
}

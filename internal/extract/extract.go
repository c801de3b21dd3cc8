// Package extract converts raw source rows into canonical records using a
// column mapping and a per-format extraction strategy. The strategy is
// chosen once from the classified format; all vendor-specific handling
// lives inside the matching strategy so the rest of the pipeline never
// branches on format. Extraction is deterministic: identical inputs
// always yield identical records.
package extract

import (
	"strings"

	"github.com/jonathan/candidate-ingest/internal/mapping"
	"github.com/jonathan/candidate-ingest/internal/types"
	"github.com/jonathan/candidate-ingest/internal/vocab"
)

// assignFunc applies one mapped (column, canonical, value) triple to a
// record under construction.
type assignFunc func(rec *types.CanonicalRecord, column, canonical, value string)

// Extractor turns raw rows into canonical records for one classified file.
type Extractor struct {
	format  types.SourceFormat
	mapping *mapping.ColumnMapping
	vocab   *vocab.Vocabulary
	assign  assignFunc
}

// NewExtractor creates an Extractor for a classified format and its column
// mapping. A nil vocabulary uses the built-in default.
func NewExtractor(format types.SourceFormat, m *mapping.ColumnMapping, v *vocab.Vocabulary) *Extractor {
	if v == nil {
		v = vocab.Default()
	}
	e := &Extractor{format: format, mapping: m, vocab: v}

	switch format {
	case types.FormatObfuscated:
		e.assign = e.assignObfuscated
	case types.FormatFlatSimple:
		e.assign = e.assignFlatSimple
	default:
		e.assign = assignDefault
	}
	return e
}

// Extract produces one canonical record from one raw row. Mapped columns
// are applied in source column order; blank values are skipped.
func (e *Extractor) Extract(row map[string]string) types.CanonicalRecord {
	rec := types.CanonicalRecord{SourceFormat: e.format}

	if e.format == types.FormatNested {
		rec.ExperienceText = combineExperiences(row)
		rec.EducationText = combineEducations(row)
	}

	for _, column := range e.mapping.Columns() {
		canonical, _ := e.mapping.Target(column)
		if !types.IsCanonicalColumn(canonical) {
			continue
		}
		value := strings.TrimSpace(rowValue(row, column))
		if value == "" {
			continue
		}
		e.assign(&rec, column, canonical, value)
	}

	return rec
}

// rowValue fetches a cell by mapped column name, falling back to a
// case-insensitive scan when the row headers differ in casing.
func rowValue(row map[string]string, column string) string {
	if v, ok := row[column]; ok {
		return v
	}
	lower := strings.ToLower(column)
	for k, v := range row {
		if strings.ToLower(strings.TrimSpace(k)) == lower {
			return v
		}
	}
	return ""
}

// assignDefault handles canonical, nested, generic CRM, and unknown
// formats: multiple source columns feeding one canonical column append
// with a single separating space, in column order.
func assignDefault(rec *types.CanonicalRecord, _, canonical, value string) {
	current, _ := rec.Field(canonical)
	if current != "" {
		rec.SetField(canonical, current+" "+value)
		return
	}
	rec.SetField(canonical, value)
}

// assignFlatSimple handles flat exports: the full-name column feeds both
// name targets through the split rule; everything else assigns directly.
func (e *Extractor) assignFlatSimple(rec *types.CanonicalRecord, column, canonical, value string) {
	if canonical == types.ColumnFirstName && e.vocab.IsFlatSimpleFullName(column) {
		first, last := SplitFullName(value)
		rec.FirstName = first
		rec.LastName = last
		return
	}
	rec.SetField(canonical, value)
}

// assignObfuscated handles scraped vendor exports. URL cells must carry a
// recognizable host (markup fragments are unwrapped first); display names
// are split only while the name fields are empty; details cells are parsed
// into title/company; location-like free text goes through the location
// extractor. Anything else falls back to the default append.
func (e *Extractor) assignObfuscated(rec *types.CanonicalRecord, column, canonical, value string) {
	switch canonical {
	case types.ColumnLinkedInURL:
		url := extractHref(value)
		if strings.Contains(strings.ToLower(url), "linkedin.com") {
			rec.LinkedInURL = url
		}

	case types.ColumnFirstName, types.ColumnLastName:
		if !e.matchesObfuscatedTarget(column, types.ColumnFirstName) {
			assignDefault(rec, column, canonical, value)
			return
		}
		first, last := SplitFullName(value)
		if rec.FirstName == "" {
			rec.FirstName = first
		}
		if rec.LastName == "" {
			rec.LastName = last
		}

	case types.ColumnTitle, types.ColumnCompanyName:
		if !e.matchesObfuscatedTarget(column, types.ColumnTitle) {
			assignDefault(rec, column, canonical, value)
			return
		}
		title, company := ParseTitleCompany(value)
		if rec.Title == "" {
			rec.Title = title
		}
		if rec.CompanyName == "" {
			rec.CompanyName = company
		}

	case types.ColumnLocation:
		if loc := ExtractLocation(value); loc != "" && rec.Location == "" {
			rec.Location = loc
		}

	default:
		assignDefault(rec, column, canonical, value)
	}
}

// matchesObfuscatedTarget reports whether a column matches one of the
// vocabulary's fragment rules for the given canonical target.
func (e *Extractor) matchesObfuscatedTarget(column, target string) bool {
	lower := strings.ToLower(column)
	for _, rule := range e.vocab.ObfuscatedRules {
		if rule.Target != target {
			continue
		}
		if rule.Matches(lower) {
			return true
		}
	}
	return false
}

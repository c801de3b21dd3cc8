package extract

import (
	"fmt"
	"strings"
)

// Caps on how many indexed sub-objects the nested export synthesis scans.
const (
	maxExperienceEntries = 10
	maxEducationEntries  = 5
)

// entrySeparator joins the synthesized experience/education entries.
const entrySeparator = ". "

// nestedRow wraps a raw row with case-insensitive key lookup, since nested
// dotted paths arrive with mixed casing (candidate.experiences.0.startDate).
type nestedRow map[string]string

func newNestedRow(row map[string]string) nestedRow {
	n := make(nestedRow, len(row))
	for k, v := range row {
		n[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return n
}

func (n nestedRow) get(key string) string {
	return strings.TrimSpace(n[strings.ToLower(key)])
}

// combineExperiences synthesizes experience_text from indexed
// candidate.experiences.N sub-objects. Entries without a company are
// skipped. Each kept entry reads "<title> at <company> (<start> - <end>)"
// with blank parts omitted and a missing end date rendered as "Present".
func combineExperiences(row map[string]string) string {
	n := newNestedRow(row)
	var entries []string

	for i := 0; i < maxExperienceEntries; i++ {
		prefix := fmt.Sprintf("candidate.experiences.%d.", i)
		title := n.get(prefix + "title")
		company := n.get(prefix + "company")
		if company == "" {
			continue
		}

		entry := company
		if title != "" {
			entry = title + " at " + company
		}

		if start := n.get(prefix + "startdate"); start != "" {
			end := n.get(prefix + "enddate")
			if end == "" {
				end = "Present"
			}
			entry += fmt.Sprintf(" (%s - %s)", start, end)
		}

		entries = append(entries, entry)
	}

	return strings.Join(entries, entrySeparator)
}

// combineEducations synthesizes education_text from indexed
// candidate.educations.N sub-objects. Entries without a school are
// skipped. Each kept entry reads "<degree> - <major> - <school> - <end>"
// with blank parts omitted.
func combineEducations(row map[string]string) string {
	n := newNestedRow(row)
	var entries []string

	for i := 0; i < maxEducationEntries; i++ {
		prefix := fmt.Sprintf("candidate.educations.%d.", i)
		school := n.get(prefix + "school")
		if school == "" {
			continue
		}

		var parts []string
		if degree := n.get(prefix + "degree"); degree != "" {
			parts = append(parts, degree)
		}
		if major := n.get(prefix + "major"); major != "" {
			parts = append(parts, major)
		}
		parts = append(parts, school)
		if end := n.get(prefix + "schoolenddate"); end != "" {
			parts = append(parts, end)
		}

		entries = append(entries, strings.Join(parts, " - "))
	}

	return strings.Join(entries, entrySeparator)
}

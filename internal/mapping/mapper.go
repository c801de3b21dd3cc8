// Package mapping resolves source CSV columns to canonical schema columns.
// A column that matches no rule stays unmapped and is surfaced as
// unmapped rather than guessed.
package mapping

import (
	"strings"

	"github.com/jonathan/candidate-ingest/internal/types"
	"github.com/jonathan/candidate-ingest/internal/vocab"
)

// ColumnMapping maps source columns to canonical columns while preserving
// source column order. Order is load-bearing: when several source columns
// feed one canonical column, extraction concatenates values in column order.
type ColumnMapping struct {
	columns []string
	targets map[string]string
}

// NewColumnMapping creates an empty mapping.
func NewColumnMapping() *ColumnMapping {
	return &ColumnMapping{targets: make(map[string]string)}
}

// Set assigns a canonical target for a source column, appending the column
// to the order on first assignment.
func (m *ColumnMapping) Set(column, canonical string) {
	if _, ok := m.targets[column]; !ok {
		m.columns = append(m.columns, column)
	}
	m.targets[column] = canonical
}

// Target returns the canonical column for a source column.
func (m *ColumnMapping) Target(column string) (string, bool) {
	canonical, ok := m.targets[column]
	return canonical, ok
}

// Columns returns the mapped source columns in source order.
func (m *ColumnMapping) Columns() []string {
	return m.columns
}

// Len returns the number of mapped source columns.
func (m *ColumnMapping) Len() int {
	return len(m.columns)
}

// HasTarget reports whether any source column already maps to the
// canonical column. Used by claim-once override rules.
func (m *ColumnMapping) HasTarget(canonical string) bool {
	for _, t := range m.targets {
		if t == canonical {
			return true
		}
	}
	return false
}

// Mapper builds column mappings using an injected vocabulary.
type Mapper struct {
	vocab *vocab.Vocabulary
}

// NewMapper creates a Mapper. A nil vocabulary uses the built-in default.
func NewMapper(v *vocab.Vocabulary) *Mapper {
	if v == nil {
		v = vocab.Default()
	}
	return &Mapper{vocab: v}
}

// Map resolves each header to a canonical column. The synonym pass runs
// for every header in order; format-specific structural overrides run
// afterward and may bypass the synonym tables entirely.
func (m *Mapper) Map(headers []string, format types.SourceFormat) *ColumnMapping {
	mapping := NewColumnMapping()

	for _, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		if canonical, ok := m.vocab.FindCanonical(header, format); ok {
			mapping.Set(header, canonical)
		}
	}

	switch format {
	case types.FormatNested:
		m.applyNestedOverrides(headers, mapping)
	case types.FormatObfuscated:
		m.applyObfuscatedRules(headers, mapping)
	}

	return mapping
}

// applyNestedOverrides maps fixed dotted paths directly to canonical
// columns, bypassing the synonym tables.
func (m *Mapper) applyNestedOverrides(headers []string, mapping *ColumnMapping) {
	for _, header := range headers {
		header = strings.TrimSpace(header)
		if canonical, ok := m.vocab.NestedOverrides[strings.ToLower(header)]; ok {
			mapping.Set(header, canonical)
		}
	}
}

// applyObfuscatedRules detects hashed vendor class-name columns by stable
// textual fragments. Each canonical target is claimed at most once per
// pass: the first matching header wins, later matches are ignored.
func (m *Mapper) applyObfuscatedRules(headers []string, mapping *ColumnMapping) {
	for _, header := range headers {
		trimmed := strings.TrimSpace(header)
		lower := strings.ToLower(trimmed)
		if lower == "" {
			continue
		}
		for _, rule := range m.vocab.ObfuscatedRules {
			if !rule.Matches(lower) {
				continue
			}
			if mapping.HasTarget(rule.Target) {
				continue
			}
			mapping.Set(trimmed, rule.Target)
			break
		}
	}
}

// Unmapped returns the headers that no rule claimed, in source order.
func Unmapped(headers []string, mapping *ColumnMapping) []string {
	var out []string
	for _, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		if _, ok := mapping.Target(header); !ok {
			out = append(out, header)
		}
	}
	return out
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-ingest/internal/mapping"
	"github.com/jonathan/candidate-ingest/internal/pipeline"
	"github.com/jonathan/candidate-ingest/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassification outputs the detected format, confidence, and the
// evidence an operator needs to audit why a file was mapped a certain way.
func (p *Printer) PrintClassification(path string, result types.ClassificationResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Format:     %s\n", result.Format))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	if len(result.Evidence) > 0 {
		sb.WriteString("\nEvidence:\n")
		for _, ev := range result.Evidence {
			sb.WriteString("  • " + ev + "\n")
		}
	}

	p.printBox("Classification: "+path, strings.TrimRight(sb.String(), "\n"))
}

// PrintMapping outputs the column mapping, the unmapped columns, and any
// nearest-synonym suggestions for them.
func (p *Printer) PrintMapping(headers []string, m *mapping.ColumnMapping, suggestions []mapping.Suggestion) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Mapped %d of %d columns\n", m.Len(), len(headers)))
	count := 0
	for _, column := range m.Columns() {
		if count >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", m.Len()-maxItemsToShow))
			break
		}
		target, _ := m.Target(column)
		sb.WriteString(fmt.Sprintf("  %s → %s\n", column, target))
		count++
	}

	unmapped := mapping.Unmapped(headers, m)
	if len(unmapped) > 0 {
		sb.WriteString("\nUnmapped columns:\n")
		for i, column := range unmapped {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(unmapped)-maxItemsToShow))
				break
			}
			sb.WriteString("  • " + column + "\n")
		}
	}

	if len(suggestions) > 0 {
		sb.WriteString("\nSuggestions (diagnostic only):\n")
		for i, s := range suggestions {
			if i >= maxItemsToShow {
				break
			}
			sb.WriteString(fmt.Sprintf("  %s ≈ %s (%s, distance %d)\n", s.Column, s.Synonym, s.Canonical, s.Distance))
		}
	}

	p.printBox("Column Mapping", strings.TrimRight(sb.String(), "\n"))
}

// PrintRunSummary outputs totals for a completed run.
func (p *Printer) PrintRunSummary(result *pipeline.RunResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run ID:            %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Files processed:   %d\n", len(result.Files)))

	failed := 0
	for _, fr := range result.Files {
		if fr.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		sb.WriteString(fmt.Sprintf("Files failed:      %d\n", failed))
	}
	sb.WriteString(fmt.Sprintf("Records extracted: %d\n", result.Extracted))
	sb.WriteString(fmt.Sprintf("Unique kept:       %d\n", len(result.Kept)))
	sb.WriteString(fmt.Sprintf("Duplicates:        %d", len(result.Duplicates)))

	p.printBox("Ingestion Summary", sb.String())
}

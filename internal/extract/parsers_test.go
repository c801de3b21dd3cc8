package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedFirst string
		expectedLast  string
	}{
		{"two tokens", "Jane Doe", "Jane", "Doe"},
		{"three tokens keep remainder", "Alice Barbara Smith", "Alice", "Barbara Smith"},
		{"single token", "Prince", "Prince", ""},
		{"empty", "", "", ""},
		{"whitespace only", "   ", "", ""},
		{"extra internal whitespace", "  Jane   van  Doe  ", "Jane", "van Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitFullName(tt.input)
			assert.Equal(t, tt.expectedFirst, first)
			assert.Equal(t, tt.expectedLast, last)
		})
	}
}

func TestParseTitleCompany(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedTitle   string
		expectedCompany string
	}{
		{"at pattern", "Senior Engineer at Acme Corp", "Senior Engineer", "Acme Corp"},
		{"at pattern case insensitive", "Senior Engineer AT Acme Corp", "Senior Engineer", "Acme Corp"},
		{"comma fallback", "Senior Engineer, Acme Corp", "Senior Engineer", "Acme Corp"},
		{"at beats comma", "VP, Engineering at Acme", "VP, Engineering", "Acme"},
		{"no pattern is all title", "Freelance Consultant", "Freelance Consultant", ""},
		{"empty", "", "", ""},
		{"whitespace only", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, company := ParseTitleCompany(tt.input)
			assert.Equal(t, tt.expectedTitle, title)
			assert.Equal(t, tt.expectedCompany, company)
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"city state", "Based in Austin, Texas since 2019", "Austin, Texas"},
		{"multi-word city", "San Francisco, California", "San Francisco, California"},
		{"city state country", "Lives in Toronto, Ontario, Canada", "Toronto, Ontario, Canada"},
		{"first match wins", "Austin, Texas and also Denver, Colorado", "Austin, Texas"},
		{"no location shape", "ten years of backend experience", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractLocation(tt.input))
		})
	}
}

package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-ingest/internal/types"
)

func writeVocabFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_OverridesFormats(t *testing.T) {
	path := writeVocabFile(t, `
formats:
  - format: canonical
    synonyms:
      linkedin_url: ["profil_url"]
      first_name: ["prenom"]
      last_name: ["nom"]
      location: ["ville"]
      company_name: ["entreprise"]
      title: ["poste"]
`)

	v, err := LoadFile(path)
	require.NoError(t, err)

	canonical, ok := v.FindCanonical("prenom", types.FormatCanonical)
	require.True(t, ok)
	assert.Equal(t, types.ColumnFirstName, canonical)

	// The built-in synonyms are replaced, not merged.
	_, ok = v.FindCanonical("First Name", types.FormatCanonical)
	assert.False(t, ok)

	// Structural sections left empty fall back to defaults.
	assert.NotEmpty(t, v.NestedMarkers)
	assert.NotEmpty(t, v.ObfuscatedRules)
}

func TestLoadFile_EmptyFileUsesDefaults(t *testing.T) {
	path := writeVocabFile(t, "")

	v, err := LoadFile(path)
	require.NoError(t, err)

	canonical, ok := v.FindCanonical("First Name", types.FormatCanonical)
	require.True(t, ok)
	assert.Equal(t, types.ColumnFirstName, canonical)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeVocabFile(t, "formats: [unclosed")
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid format tag", func(t *testing.T) {
		path := writeVocabFile(t, `
formats:
  - format: mystery
    synonyms:
      title: ["Poste"]
`)
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

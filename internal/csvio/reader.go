// Package csvio reads and writes candidate CSV files. Reading tolerates
// the encodings third-party export tools actually produce; writing is
// atomic with a timestamped fallback when the target file is locked.
package csvio

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// utf8BOM is the byte order mark some Windows tools prepend to UTF-8 output.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is one parsed CSV file: trimmed headers plus one string map per row.
type Table struct {
	Path    string
	Headers []string
	Rows    []map[string]string
}

// Sample returns up to n rows for classifier heuristics.
func (t *Table) Sample(n int) []map[string]string {
	if len(t.Rows) <= n {
		return t.Rows
	}
	return t.Rows[:n]
}

// ReadFile parses a CSV file, attempting UTF-8 with BOM, plain UTF-8,
// Latin-1, and CP1252 in order and accepting the first successful parse.
// It fails with an EncodingError only when every candidate fails.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, decode := range decoders {
		text, ok := decode(data)
		if !ok {
			continue
		}
		table, err := parseCSV(text)
		if err != nil {
			lastErr = err
			continue
		}
		table.Path = path
		return table, nil
	}

	return nil, &EncodingError{Path: path, Cause: lastErr}
}

// decoders are the candidate decodings in preference order. Latin-1 and
// CP1252 accept any byte sequence, so the chain only fails on CSV parse
// errors once it reaches them.
var decoders = []func([]byte) (string, bool){
	decodeUTF8BOM,
	decodeUTF8,
	decodeCharmapFunc(charmap.ISO8859_1),
	decodeCharmapFunc(charmap.Windows1252),
}

func decodeUTF8BOM(data []byte) (string, bool) {
	if !bytes.HasPrefix(data, utf8BOM) {
		return "", false
	}
	stripped := data[len(utf8BOM):]
	if !utf8.Valid(stripped) {
		return "", false
	}
	return string(stripped), true
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

func decodeCharmapFunc(cm *charmap.Charmap) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		return string(decoded), true
	}
}

func parseCSV(text string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	rawHeaders, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return &Table{}, nil
		}
		return nil, err
	}

	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

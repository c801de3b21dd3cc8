package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	writeMaxRetries   = 3
	writeRetryBackoff = 100 * time.Millisecond
)

// Write writes header and rows to path atomically: the data goes to a
// temp file in the target directory which is then renamed into place.
// Rename failures (a locked target, typically another program holding the
// file open) are retried with exponential backoff; if every retry fails
// the data lands in a timestamped sibling file so the run's output is
// never lost. Short rows are padded with empty cells.
func Write(path string, header []string, rows [][]string) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &WriteError{Path: path, Message: "failed to create output directory", Cause: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", &WriteError{Path: path, Message: "failed to create temp file", Cause: err}
	}
	tmpPath := tmp.Name()

	if err := writeAll(tmp, header, rows); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &WriteError{Path: path, Message: "failed to write rows", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: path, Message: "failed to flush temp file", Cause: err}
	}

	var lastErr error
	for attempt := 0; attempt < writeMaxRetries; attempt++ {
		lastErr = os.Rename(tmpPath, path)
		if lastErr == nil {
			return path, nil
		}
		if attempt < writeMaxRetries-1 {
			time.Sleep(writeRetryBackoff << attempt)
		}
	}

	// Target stayed locked; fall back to a timestamped sibling.
	stamp := time.Now().Format("20060102_150405")
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	fallback := fmt.Sprintf("%s_%s%s", base, stamp, ext)
	if err := os.Rename(tmpPath, fallback); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{
			Path:    path,
			Message: fmt.Sprintf("rename failed (%v) and fallback %s failed", lastErr, fallback),
			Cause:   err,
		}
	}
	return fallback, nil
}

func writeAll(f *os.File, header []string, rows [][]string) error {
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

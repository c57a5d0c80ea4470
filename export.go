package logsink

import (
	"bufio"
	"os"
	"path/filepath"
)

// ExportDelimitedText writes the current buffer contents to path as
// delimited text: a header row followed by one comma-joined row per entry in
// buffer order. The snapshot is taken before any disk I/O, so a slow disk
// never blocks concurrent Log calls. The file is staged in a temporary file
// and renamed into place: the caller either gets the whole file or an error,
// never a partial file at the target path.
//
// Field values are written verbatim with no quoting or escaping; a comma
// embedded in a message, source, or call stack corrupts that row's boundary.
// This is inherited behavior kept for format compatibility, not an oversight.
func (s *Sink) ExportDelimitedText(path string) error {
	cfg := s.getConfig()
	entries := s.All()

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, exportTempPattern)
	if err != nil {
		return fmtErrorf("failed to create export staging file in '%s': %w", dir, err)
	}
	tmpPath := tmp.Name()

	w := bufio.NewWriter(tmp)
	writeErr := writeDelimited(w, entries, cfg.TimestampFormat)
	if writeErr == nil {
		writeErr = w.Flush()
	}
	if writeErr == nil {
		writeErr = tmp.Sync()
	}
	writeErr = combineErrors(writeErr, tmp.Close())

	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return fmtErrorf("failed to write export file '%s': %w", path, writeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmtErrorf("failed to finalize export file '%s': %w", path, err)
	}

	return nil
}

// writeDelimited serializes the header and entry rows.
func writeDelimited(w *bufio.Writer, entries []Entry, timestampFormat string) error {
	if _, err := w.WriteString(exportHeader); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := w.WriteString(formatRow(e, timestampFormat)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return nil
}

// formatRow joins the six fields of one entry. Untimed entries leave the
// elapsed-time column empty rather than writing a zero duration.
func formatRow(e Entry, timestampFormat string) string {
	elapsed := ""
	if e.Timed {
		elapsed = e.Elapsed.String()
	}

	return e.Time.Format(timestampFormat) + "," +
		e.Message + "," +
		e.Severity.String() + "," +
		e.Source + "," +
		e.CallStack + "," +
		elapsed
}

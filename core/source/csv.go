package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"trimble-export/core/export"
)

// ReadFile reads the ordered field records from the file at path.
// The file's base name is stamped on each record as its source file, the
// way the original export stamped DATAFILE/SOURCE per row.
func ReadFile(path string, cfg Config) ([]export.FieldRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()

	return ReadRecords(f, cfg, filepath.Base(path))
}

// ReadRecords reads the ordered field records from r.
//
// The first row is the header; the configured column names are matched
// against it exactly after trimming. The site and date columns must be
// present. Coordinate cells must be empty or parse as decimal degrees; a
// malformed coordinate makes the whole input unusable and is fatal, unlike
// the per-record date problems the engine tolerates downstream.
func ReadRecords(r io.Reader, cfg Config, sourceName string) ([]export.FieldRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiterRune(cfg.Delimiter)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		// No rows at all; the engine raises the fatal empty-source error.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := indexColumns(header)

	siteIdx, ok := cols[cfg.SiteColumn]
	if !ok {
		return nil, fmt.Errorf("source file has no %q column", cfg.SiteColumn)
	}
	dateIdx, ok := cols[cfg.DateColumn]
	if !ok {
		return nil, fmt.Errorf("source file has no %q column", cfg.DateColumn)
	}

	var records []export.FieldRecord
	row := 0
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row+1, err)
		}
		row++

		rec := export.FieldRecord{
			Row:           row,
			SiteName:      cell(cells, siteIdx),
			DateRetrieved: cell(cells, dateIdx),
			SourceFile:    sourceName,
		}

		if idx, ok := cols[cfg.TimeColumn]; ok {
			rec.TimeRetrieved = cell(cells, idx)
		}
		if idx, ok := cols[cfg.NotesColumn]; ok {
			rec.Notes = cell(cells, idx)
		}

		if idx, ok := cols[cfg.LatitudeColumn]; ok {
			rec.Latitude, err = coordinate(cell(cells, idx))
			if err != nil {
				return nil, fmt.Errorf("row %d: bad latitude: %w", row, err)
			}
		}
		if idx, ok := cols[cfg.LongitudeColumn]; ok {
			rec.Longitude, err = coordinate(cell(cells, idx))
			if err != nil {
				return nil, fmt.Errorf("row %d: bad longitude: %w", row, err)
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

// delimiterRune maps the configured delimiter name to its rune.
func delimiterRune(name string) rune {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tab", "\t":
		return '\t'
	default:
		return ','
	}
}

// indexColumns maps trimmed header names to their positions. The first
// occurrence wins when a header repeats.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	return cols
}

// cell returns the trimmed value at idx, or empty when the row is short.
func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// coordinate parses an optional decimal-degrees cell.
func coordinate(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

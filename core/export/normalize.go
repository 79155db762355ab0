package export

import (
	"fmt"
	"strings"
	"time"
)

// Layouts holds the configuration-supplied input formats for date and time
// strings, as Go reference layouts. The master database's accepted formats
// are not fixed by this tool, so callers supply them per run.
type Layouts struct {
	Date string
	Time string
}

// DefaultLayouts returns the ISO-8601 layouts the Trimble export produces.
func DefaultLayouts() Layouts {
	return Layouts{Date: "2006-01-02", Time: "15:04:05"}
}

// NormalizeKey derives the canonical lookup key for a record.
//
// The site name is trimmed and upper-cased for matching purposes only; the
// original casing stays on the record for rendering. The date string must
// parse with the configured layout: a record whose date cannot be parsed is
// reported with ErrMalformedDate rather than compared as text.
func NormalizeKey(rec FieldRecord, layouts Layouts) (RetrievalKey, error) {
	site := strings.ToUpper(strings.TrimSpace(rec.SiteName))
	if site == "" {
		return RetrievalKey{}, fmt.Errorf("row %d: %w", rec.Row, ErrMissingSiteName)
	}

	date, err := time.Parse(layouts.Date, strings.TrimSpace(rec.DateRetrieved))
	if err != nil {
		return RetrievalKey{}, fmt.Errorf("row %d: %w: %q", rec.Row, ErrMalformedDate, rec.DateRetrieved)
	}

	return RetrievalKey{Site: site, Date: date}, nil
}

// parseClock parses the optional retrieval time. An empty string is not an
// error: the record simply has no time component.
func parseClock(rec FieldRecord, layouts Layouts) (*time.Time, error) {
	raw := strings.TrimSpace(rec.TimeRetrieved)
	if raw == "" {
		return nil, nil
	}

	clock, err := time.Parse(layouts.Time, raw)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w: %q", rec.Row, ErrMalformedDate, rec.TimeRetrieved)
	}

	return &clock, nil
}

package export

import (
	"errors"
	"fmt"
	"time"
)

// Renderer turns one resolved retrieval event into a SQL statement string.
// Implementations return ErrNoUpdatableFields (wrapped or bare) when the
// event has nothing to set under the active selection; the engine records
// the row as skipped and continues.
//
// NeedsClock reports whether the renderer's active selection writes the
// retrieval time. The engine only parses and enforces the time field for
// renderers that answer true, so a junk time cannot cost a row whose
// statement never contains it.
type Renderer interface {
	Render(ev Event) (string, error)
	NeedsClock() bool
}

// Options control a single export run.
type Options struct {
	// Layouts are the input date/time formats.
	Layouts Layouts

	// WindowStart and WindowEnd bound the accepted retrieval dates,
	// inclusive. Nil means unbounded on that side.
	WindowStart *time.Time
	WindowEnd   *time.Time
}

// BuildPlan runs the join engine over the full ordered record sequence.
//
// Each record is processed independently: no cross-record deduplication is
// performed, and per-record failures become Skip entries while the run
// continues. Output order matches input order so operators can cross-check
// the statements against the original export visually. The only fatal
// condition is an empty source.
func BuildPlan(records []FieldRecord, r Renderer, opts Options) (*Plan, error) {
	if len(records) == 0 {
		return nil, ErrEmptySource
	}

	plan := &Plan{}
	plan.Summary.TotalRecords = len(records)

	for _, rec := range records {
		key, err := NormalizeKey(rec, opts.Layouts)
		if err != nil {
			plan.skip(rec, err)
			continue
		}

		var clock *time.Time
		if r.NeedsClock() {
			clock, err = parseClock(rec, opts.Layouts)
			if err != nil {
				plan.skip(rec, err)
				continue
			}
		}

		if outsideWindow(key.Date, opts) {
			plan.skip(rec, fmt.Errorf("row %d: %w: %s", rec.Row, ErrOutsideWindow, key.Date.Format("2006-01-02")))
			continue
		}

		sql, err := r.Render(Event{Record: rec, Key: key, Time: clock})
		if err != nil {
			plan.skip(rec, err)
			continue
		}

		plan.Statements = append(plan.Statements, Statement{
			Row:      rec.Row,
			SiteName: rec.SiteName,
			Date:     key.Date,
			SQL:      sql,
		})
		plan.Summary.Rendered++
	}

	return plan, nil
}

// skip records a per-record failure and updates the summary counters.
func (p *Plan) skip(rec FieldRecord, reason error) {
	p.Skips = append(p.Skips, Skip{Row: rec.Row, SiteName: rec.SiteName, Reason: reason})

	switch {
	case errors.Is(reason, ErrMalformedDate):
		p.Summary.MalformedDates++
	case errors.Is(reason, ErrMissingSiteName):
		p.Summary.MissingSiteNames++
	case errors.Is(reason, ErrNoUpdatableFields):
		p.Summary.NoUpdatableFields++
	case errors.Is(reason, ErrOutsideWindow):
		p.Summary.OutsideWindow++
	}
}

// outsideWindow reports whether a parsed date falls outside the configured
// inclusive window. Dates are compared as values, never as strings.
func outsideWindow(date time.Time, opts Options) bool {
	if opts.WindowStart != nil && date.Before(*opts.WindowStart) {
		return true
	}
	if opts.WindowEnd != nil && date.After(*opts.WindowEnd) {
		return true
	}
	return false
}

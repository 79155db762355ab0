package export

import (
	"errors"
	"time"
)

// FieldRecord is one row from the field export.
// It is materialized once per run by the record source and never mutated.
type FieldRecord struct {
	// Row is the record's 1-based position in the source export.
	Row int

	// SiteName is the monitoring site identifier as recorded in the field.
	SiteName string

	// DateRetrieved is the raw retrieval date string from the export.
	DateRetrieved string

	// TimeRetrieved is the raw retrieval time string, empty when absent.
	TimeRetrieved string

	// Latitude and Longitude are corrected coordinates in decimal degrees.
	// Nil when the coordinates were not corrected in the field.
	Latitude  *float64
	Longitude *float64

	// Notes is the free-form field comment, empty when absent.
	Notes string

	// SourceFile names the export file the record came from.
	SourceFile string
}

// RetrievalKey is the canonical join key for a record: the normalized site
// name plus the parsed retrieval date. It is not guaranteed unique across
// the underlying system; the engine emits one statement per record and
// leaves uniqueness to the reviewer.
type RetrievalKey struct {
	// Site is the trimmed, upper-cased site name used for matching only.
	Site string

	// Date is the parsed retrieval date (midnight, no time component).
	Date time.Time
}

// Event is one resolved retrieval event ready for rendering.
type Event struct {
	// Record is the source record, original casing preserved.
	Record FieldRecord

	// Key is the canonical key derived from the record.
	Key RetrievalKey

	// Time is the parsed retrieval clock time, nil when the record has none.
	Time *time.Time
}

// UpdateSelection chooses which columns the rendered statements may modify.
// It is fixed once per run and applied uniformly to every record.
type UpdateSelection string

const (
	// SelectionFull updates date, time, coordinates, and notes.
	SelectionFull UpdateSelection = "full"
	// SelectionLatLong updates the corrected coordinates only.
	SelectionLatLong UpdateSelection = "latlong"
)

// Valid reports whether the selection is a recognized mode.
func (s UpdateSelection) Valid() bool {
	switch s {
	case SelectionFull, SelectionLatLong:
		return true
	default:
		return false
	}
}

// Per-record and per-run failure reasons. Per-record reasons are collected
// as Skips; only ErrEmptySource aborts a run.
var (
	// ErrMalformedDate marks a record whose date or time string does not
	// parse with the configured input layout.
	ErrMalformedDate = errors.New("date or time cannot be parsed")

	// ErrMissingSiteName marks a record with an empty site identifier.
	ErrMissingSiteName = errors.New("site name is empty")

	// ErrNoUpdatableFields marks a record with nothing to set under the
	// active selection. A warning, not a data error.
	ErrNoUpdatableFields = errors.New("no updatable fields present")

	// ErrOutsideWindow marks a record whose retrieval date falls outside
	// the configured season window.
	ErrOutsideWindow = errors.New("retrieval date outside the export window")

	// ErrEmptySource aborts the run: the source yielded no records.
	ErrEmptySource = errors.New("source yielded no records")
)

// Statement is one rendered SQL statement plus the identity an operator
// needs to cross-check it against the original export.
type Statement struct {
	// Row is the source record's original position.
	Row int

	// SiteName is the site identifier, original casing.
	SiteName string

	// Date is the parsed retrieval date.
	Date time.Time

	// SQL is the complete, independently executable statement text.
	SQL string
}

// Skip records an input row that produced no statement, and why.
type Skip struct {
	// Row is the source record's original position.
	Row int

	// SiteName is the site identifier, original casing.
	SiteName string

	// Reason is one of the per-record sentinel errors, possibly wrapped
	// with record detail.
	Reason error
}

// Plan is the complete output of one export run: rendered statements and
// skipped rows, both in input order, plus aggregate counts.
type Plan struct {
	// Statements holds the rendered SQL in input order.
	Statements []Statement

	// Skips holds the rows that produced no statement, in input order.
	Skips []Skip

	// Summary provides aggregate counts for reporting.
	Summary PlanSummary
}

// PlanSummary provides aggregate statistics for an export plan.
type PlanSummary struct {
	// TotalRecords is the number of input records processed.
	TotalRecords int `json:"total_records"`

	// Rendered counts records that produced a statement.
	Rendered int `json:"rendered"`

	// MalformedDates counts records skipped for unparseable dates or times.
	MalformedDates int `json:"malformed_dates"`

	// MissingSiteNames counts records skipped for an empty site name.
	MissingSiteNames int `json:"missing_site_names"`

	// NoUpdatableFields counts records skipped with nothing to set.
	NoUpdatableFields int `json:"no_updatable_fields"`

	// OutsideWindow counts records skipped by the season window.
	OutsideWindow int `json:"outside_window"`
}

// Package export implements the field-data reconciliation core.
//
// It turns an ordered sequence of flat field records, as produced by the
// Trimble handheld export, into a plan of SQL statements ready for manual
// review. Three stages run in a single pass:
//  1. Key Normalizer: derives a canonical (site, retrieval date) key per
//     record and parses the date/time strings into real temporal values.
//  2. Join Engine: resolves one retrieval event per record, collecting
//     per-record problems instead of aborting the batch.
//  3. Statement Renderer: a domain adapter implementing the Renderer
//     interface turns each resolved event into one SQL statement string.
//
// # Error model
//
// Per-record failures (a date that does not parse, a record with nothing to
// update, a date outside the configured season window) become Skip entries
// in the plan; the run continues. Only an input that yields no records at
// all is fatal (ErrEmptySource).
//
// Dates are always parsed before they are compared. The upstream data has a
// history of format variance (zero padding, ordering), so no stage ever
// compares date-like strings lexically.
//
// # Usage
//
//	plan, err := export.BuildPlan(records, renderer, opts)
//	if err != nil {
//	    return err // nothing usable in the input
//	}
//	for _, st := range plan.Statements {
//	    fmt.Println(st.SQL)
//	}
package export

// Package continuous implements the continuous-sensor export feature.
//
// Continuous data loggers are installed at a monitoring site (deployment)
// and revisited at the end of the season (retrieval). The master database
// row is created at deployment time; the field crew's retrieval record
// carries the date, time, and optionally corrected coordinates that row is
// still missing. This package turns those field records into SQL statements
// a reviewer inspects before running:
//
//   - RetrievalUpdate renders one UPDATE per retrieval record, keyed by
//     site name and date.
//   - DeploymentInsert renders one INSERT per deployment record.
//
// # Schema profiles
//
// The master database's table and column names are not hardcoded: a
// SchemaProfile maps the logical fields to concrete names, and the profile
// is chosen by configuration. See profile.go.
//
// # Components
//
//   - Exporter: orchestrates one run (engine options, renderer choice, log
//     summary).
//   - WriteScript: writes the reviewed script file with its provenance
//     header, statements in input order, and a skipped-rows appendix.
//   - DuplicateKeys: advisory duplicate (site, date) key detection over the
//     raw records.
package continuous

// Package source reads field records from the flat files the upstream
// geodatabase processing step produces.
//
// The export core treats its input as an ordered sequence of flat records
// (column name to value); this package supplies that sequence from a
// delimited text file. The field crews' deployment sheets are typically
// tab-delimited, so the delimiter and the column header names are
// configurable rather than assumed.
//
// Records are returned in file order with their 1-based data row positions
// preserved, so downstream skip reports can name the original row.
package source

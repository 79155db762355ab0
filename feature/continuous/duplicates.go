package continuous

import "trimble-export/core/export"

// DuplicateKeys counts canonical (site, date) key occurrences over the raw
// records and returns only the keys seen more than once, with their counts.
//
// Two field visits can legitimately share a site and date, so duplicates
// are advisory: the reviewer compares the generated statements against the
// live database, and the export itself is never blocked. Records whose key
// does not normalize (no parseable date, empty site) are not valid records
// and are not counted.
func DuplicateKeys(records []export.FieldRecord, layouts export.Layouts) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		key, err := export.NormalizeKey(rec, layouts)
		if err != nil {
			continue
		}
		counts[key.Site+" "+key.Date.Format("2006-01-02")]++
	}

	dups := make(map[string]int)
	for k, n := range counts {
		if n > 1 {
			dups[k] = n
		}
	}

	return dups
}

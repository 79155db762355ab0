package continuous

import (
	"strings"

	"trimble-export/core/export"
)

// UpdateRenderer renders retrieval events as UPDATE statements against the
// master database row created at deployment time.
//
// The SET clause only ever contains columns present in the source record:
// an absent field is never written as a NULL overwrite. The WHERE clause
// matches on the original-case site name and the retrieval date, the same
// identity the reviewer uses to find the row.
type UpdateRenderer struct {
	// Profile supplies the table and column names.
	Profile SchemaProfile

	// Selection chooses the column set (full or latlong).
	Selection export.UpdateSelection

	// KeepComments includes the field notes in full mode.
	KeepComments bool
}

// NeedsClock implements export.Renderer. Only the full column set writes
// the retrieval time; the latlong selection ignores the time field entirely.
func (r UpdateRenderer) NeedsClock() bool {
	return r.Selection != export.SelectionLatLong
}

// Render implements export.Renderer.
func (r UpdateRenderer) Render(ev export.Event) (string, error) {
	cols := r.Profile.Columns

	var sets []string
	switch r.Selection {
	case export.SelectionLatLong:
		// Both coordinates or nothing: a lone coordinate is not a position.
		if ev.Record.Latitude == nil || ev.Record.Longitude == nil {
			return "", export.ErrNoUpdatableFields
		}
		sets = append(sets,
			cols[ColLatitude]+" = "+export.FormatFloat(*ev.Record.Latitude),
			cols[ColLongitude]+" = "+export.FormatFloat(*ev.Record.Longitude),
		)

	default: // SelectionFull
		sets = append(sets, cols[ColDateRetrieved]+" = "+export.QuoteDate(ev.Key.Date))
		if ev.Time != nil {
			sets = append(sets, cols[ColTimeRetrieved]+" = "+export.QuoteTime(*ev.Time))
		}
		if ev.Record.Latitude != nil {
			sets = append(sets, cols[ColLatitude]+" = "+export.FormatFloat(*ev.Record.Latitude))
		}
		if ev.Record.Longitude != nil {
			sets = append(sets, cols[ColLongitude]+" = "+export.FormatFloat(*ev.Record.Longitude))
		}
		if r.KeepComments && ev.Record.Notes != "" {
			sets = append(sets, cols[ColNotes]+" = "+export.QuoteString(ev.Record.Notes))
		}
	}

	return "UPDATE " + r.Profile.TableName +
		" SET " + strings.Join(sets, ", ") +
		" WHERE " + cols[ColSiteName] + " = " + export.QuoteString(strings.TrimSpace(ev.Record.SiteName)) +
		" AND " + cols[ColSampleDate] + " = " + export.QuoteDate(ev.Key.Date) + ";", nil
}

// InsertRenderer renders deployment events as INSERT statements that create
// the master database row a later retrieval will update.
type InsertRenderer struct {
	// Profile supplies the table and column names.
	Profile SchemaProfile

	// KeepComments includes the field notes.
	KeepComments bool
}

// NeedsClock implements export.Renderer.
func (r InsertRenderer) NeedsClock() bool { return true }

// Render implements export.Renderer.
func (r InsertRenderer) Render(ev export.Event) (string, error) {
	cols := r.Profile.Columns

	names := []string{cols[ColSiteName], cols[ColSampleDate], cols[ColDateDeployed]}
	values := []string{
		export.QuoteString(strings.TrimSpace(ev.Record.SiteName)),
		export.QuoteDate(ev.Key.Date),
		export.QuoteDate(ev.Key.Date),
	}

	if ev.Time != nil {
		names = append(names, cols[ColTimeDeployed])
		values = append(values, export.QuoteTime(*ev.Time))
	}
	if ev.Record.Latitude != nil {
		names = append(names, cols[ColLatitude])
		values = append(values, export.FormatFloat(*ev.Record.Latitude))
	}
	if ev.Record.Longitude != nil {
		names = append(names, cols[ColLongitude])
		values = append(values, export.FormatFloat(*ev.Record.Longitude))
	}
	if r.KeepComments && ev.Record.Notes != "" {
		names = append(names, cols[ColNotes])
		values = append(values, export.QuoteString(ev.Record.Notes))
	}
	if ev.Record.SourceFile != "" {
		names = append(names, cols[ColSource])
		values = append(values, export.QuoteString(ev.Record.SourceFile))
	}

	return "INSERT INTO " + r.Profile.TableName +
		"(" + strings.Join(names, ",") + ") VALUES(" + strings.Join(values, ",") + ");", nil
}

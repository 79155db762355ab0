package export

import (
	"strconv"
	"strings"
	"time"
)

// SQL literal helpers shared by the domain renderers. All values are
// rendered in a locale-independent, unambiguous form so the generated
// statements read the same on any reviewer's machine.

// QuoteString renders s as a SQL string literal with single quotes doubled.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// FormatFloat renders a coordinate as a plain decimal, no exponent.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// QuoteDate renders t as an ISO-8601 date literal.
func QuoteDate(t time.Time) string {
	return "'" + t.Format("2006-01-02") + "'"
}

// QuoteTime renders t as an ISO-8601 time literal.
func QuoteTime(t time.Time) string {
	return "'" + t.Format("15:04:05") + "'"
}

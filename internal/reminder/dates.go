// Package reminder implements the warranty and maintenance reminder engine:
// the milestone policy deciding which notifications are due for a piece of
// equipment, the reconciliation run over the whole registry, and the
// throttled email dispatch with sent-record bookkeeping.
package reminder

import (
	"fmt"
	"strings"
	"time"
)

// displayLayout is the date format used in email bodies and API responses.
const displayLayout = "02/01/2006"

// dateLayouts are the invoice date formats the registry actually contains.
// Legacy rows imported from the old system use DD/MM/YYYY, newer rows ISO.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// DateParseError reports an invoice date string matching neither accepted
// layout. The engine skips the equipment instead of aborting the run.
type DateParseError struct {
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unparseable date %q", e.Value)
}

// ParseDate parses an invoice date in either YYYY-MM-DD or DD/MM/YYYY form.
// The result is normalized to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Midnight(t), nil
		}
	}
	return time.Time{}, &DateParseError{Value: s}
}

// Midnight truncates a time to midnight UTC so that same-day comparisons are
// stable regardless of when during the day a run is triggered.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the date n calendar months after t, at midnight UTC.
func AddMonths(t time.Time, n int) time.Time {
	return Midnight(t.AddDate(0, n, 0))
}

// AddDays returns the date n days after t, at midnight UTC.
func AddDays(t time.Time, n int) time.Time {
	return Midnight(t.AddDate(0, 0, n))
}

// DaysBetween returns the calendar-day difference a - b, ignoring
// time-of-day.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(a).Sub(Midnight(b)).Hours() / 24)
}

// FormatDisplay renders a date as DD/MM/YYYY for email copy.
func FormatDisplay(t time.Time) string {
	return t.Format(displayLayout)
}

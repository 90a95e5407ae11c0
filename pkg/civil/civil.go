// Package civil provides the fixed UTC+5 civil clock used for every
// timestamp the store writes and every period boundary the reports filter
// on. Sales are written with this clock, so period predicates must use it
// too or date-boundary queries drift against the data they filter.
package civil

import "time"

// Zone is the fixed UTC+5 offset (Pakistan Standard Time, no DST).
var Zone = time.FixedZone("PKT", 5*60*60)

const (
	// Layout is the timestamp format stored in date_created columns.
	// Zero-padded ISO, so text comparison orders the same as time.
	Layout = "2006-01-02 15:04:05"

	// DateLayout is the civil date portion of Layout.
	DateLayout = "2006-01-02"

	// MonthLayout is the civil month prefix of Layout.
	MonthLayout = "2006-01"
)

// Now returns the current civil time in the fixed zone.
func Now() time.Time {
	return time.Now().In(Zone)
}

// Timestamp formats t the way the store persists timestamps.
func Timestamp(t time.Time) string {
	return t.In(Zone).Format(Layout)
}

// Date formats the civil date of t.
func Date(t time.Time) string {
	return t.In(Zone).Format(DateLayout)
}

// Month formats the civil month of t.
func Month(t time.Time) string {
	return t.In(Zone).Format(MonthLayout)
}

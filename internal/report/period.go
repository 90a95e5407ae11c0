package report

import (
	"fmt"
	"time"

	"github.com/hornerp/reporting-service/pkg/civil"
)

// Period is a named time window for report filtering.
type Period string

const (
	Daily   Period = "Daily"
	Weekly  Period = "Weekly"
	Monthly Period = "Monthly"
)

// ParsePeriod maps a selector string to a Period. Unknown values resolve
// to Daily: a permissive default chosen on purpose so a mistyped selector
// still yields a usable report instead of an error page.
func ParsePeriod(s string) Period {
	switch s {
	case "Weekly", "weekly":
		return Weekly
	case "Monthly", "monthly":
		return Monthly
	default:
		return Daily
	}
}

// Filter is a resolved period predicate. The clause is built per call
// against a caller-supplied column reference, because the resolver cannot
// know which table alias a joined query uses. Values travel as bind
// parameters, never interpolated text.
type Filter struct {
	comparator string
	arg        string

	// Label is the human-readable report title for the window.
	Label string
}

// Clause renders the predicate against the given column reference, e.g.
// "date_created" or "s.date_created". CAST(... AS TEXT) is one of the two
// sanctioned portable idioms: it is valid on both backends and makes the
// zero-padded ISO timestamp comparable lexicographically.
func (f Filter) Clause(column string) string {
	return fmt.Sprintf("CAST(%s AS TEXT) %s ?", column, f.comparator)
}

// Arg is the single bind value for the predicate.
func (f Filter) Arg() string { return f.arg }

// Resolve converts a period selector plus a reference timestamp into a
// concrete filter. The reference must come from the same fixed UTC+5
// civil clock that wrote the sale rows being filtered.
func Resolve(p Period, ref time.Time) Filter {
	switch p {
	case Weekly:
		start := civil.Date(ref.AddDate(0, 0, -7))
		return Filter{
			comparator: ">=",
			arg:        start,
			Label:      fmt.Sprintf("Weekly Report (Since %s)", start),
		}
	case Monthly:
		month := civil.Month(ref)
		return Filter{
			comparator: "LIKE",
			arg:        month + "%",
			Label:      fmt.Sprintf("Monthly Report (%s)", month),
		}
	default:
		day := civil.Date(ref)
		return Filter{
			comparator: "LIKE",
			arg:        day + "%",
			Label:      fmt.Sprintf("Daily Report (%s)", day),
		}
	}
}

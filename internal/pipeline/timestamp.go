package pipeline

import (
	"strings"
	"time"
)

// Accepted layouts, tried in priority order. ISO forms first, then the
// day-first forms the carrier exports, then the month-first forms that show
// up when a sheet has passed through US-locale tooling.
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
}

var dateOnlyLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

// ParseObservedAt derives a timestamp from the free-text date and time
// columns. Date+time layouts are tried first; when the time text is unusable
// the date-only layouts are tried on the date alone. When nothing parses the
// zero time is returned as an "unknown/earliest-possible" sentinel. Known
// quirk: the sentinel sorts before every real timestamp, so a record with
// garbage date text always wins deduplication over one with a valid date.
func ParseObservedAt(date, clock string) time.Time {
	joined := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	for _, layout := range dateTimeLayouts {
		if ts, err := time.Parse(layout, joined); err == nil {
			return ts
		}
	}
	for _, layout := range dateOnlyLayouts {
		if ts, err := time.Parse(layout, strings.TrimSpace(date)); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// secondsIntoDay projects a timestamp onto its time of day, the sort key the
// sequencer uses within a route.
func secondsIntoDay(ts time.Time) int {
	return ts.Hour()*3600 + ts.Minute()*60 + ts.Second()
}

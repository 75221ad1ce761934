package pipeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/route-assist/app/models"
)

// NormalizeRouteID coerces a route id that is textually a float-like integer
// ("7.0", as produced by spreadsheet exports) to its plain integer text form
// ("7"). Ids that do not parse as a number are returned trimmed but
// otherwise as-is.
func NormalizeRouteID(id string) string {
	trimmed := strings.TrimSpace(id)
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return trimmed
	}
	return strconv.Itoa(int(f))
}

// Sequence orders the deduplicated records by (route_id, time of day) and
// assigns each record its 1-based position within its route. Route ids are
// canonicalized to plain integer text before counting, so "7" and "7.0"
// share one counter, and the display name is resolved from the canonical id
// (unmapped ids get an empty name). The sort compares route ids in their
// original text form; the input order breaks ties.
func Sequence(kept []models.DeliveryRecord, names models.RouteNames) []models.DeliveryRecord {
	type timed struct {
		rec models.DeliveryRecord
		day int
	}

	rows := make([]timed, len(kept))
	for i, rec := range kept {
		rows[i] = timed{rec: rec, day: secondsIntoDay(ParseObservedAt(rec.Date, rec.Time))}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].rec.RouteID != rows[j].rec.RouteID {
			return rows[i].rec.RouteID < rows[j].rec.RouteID
		}
		return rows[i].day < rows[j].day
	})

	counters := make(map[string]int)
	out := make([]models.DeliveryRecord, len(rows))
	for i, row := range rows {
		rec := row.rec
		id := NormalizeRouteID(rec.RouteID)
		counters[id]++
		rec.RouteID = id
		rec.RouteName = names.Name(id)
		rec.SequencePosition = counters[id]
		out[i] = rec
	}
	return out
}

package pipeline

import (
	"time"

	"github.com/route-assist/app/models"
)

type recordKey struct {
	routeID string
	address string
}

// Dedup collapses repeated observations of the same stop down to the
// earliest one. Grouping is on the literal (route_id, raw_address) pair as
// ingested, not on the normalized street name, matching the "same literal
// field values" notion of the ingest step. Returns the surviving records in
// first-seen order and the number of discarded duplicates.
func Dedup(records []models.DeliveryRecord) ([]models.DeliveryRecord, int) {
	type earliest struct {
		rec models.DeliveryRecord
		at  time.Time
	}

	kept := make(map[recordKey]earliest, len(records))
	order := make([]recordKey, 0, len(records))
	duplicates := 0

	for _, rec := range records {
		key := recordKey{routeID: rec.RouteID, address: rec.RawAddress}
		at := ParseObservedAt(rec.Date, rec.Time)

		cur, seen := kept[key]
		if !seen {
			kept[key] = earliest{rec: rec, at: at}
			order = append(order, key)
			continue
		}

		duplicates++
		// Strictly before: on equal timestamps the first observation wins.
		if at.Before(cur.at) {
			kept[key] = earliest{rec: rec, at: at}
		}
	}

	out := make([]models.DeliveryRecord, 0, len(order))
	for _, key := range order {
		out = append(out, kept[key].rec)
	}
	return out, duplicates
}

package pipeline

import (
	"strings"

	"github.com/route-assist/app/models"
)

// FilterRows trims every field and drops rows that are unusable for the
// pipeline: subtotal lines the carrier export interleaves with the data
// (any address starting with the marker literal) and rows with any blank
// field. Trimming happens before filtering so a field of pure whitespace
// counts as blank, and before deduplication so padded and unpadded copies
// of a stop share one literal key. An empty marker disables the subtotal
// filter.
func FilterRows(records []models.DeliveryRecord, subtotalMarker string) []models.DeliveryRecord {
	out := make([]models.DeliveryRecord, 0, len(records))
	for _, rec := range records {
		rec.RouteID = strings.TrimSpace(rec.RouteID)
		rec.RawAddress = strings.TrimSpace(rec.RawAddress)
		rec.Date = strings.TrimSpace(rec.Date)
		rec.Time = strings.TrimSpace(rec.Time)

		if rec.RouteID == "" || rec.RawAddress == "" || rec.Date == "" || rec.Time == "" {
			continue
		}
		if subtotalMarker != "" && strings.HasPrefix(rec.RawAddress, subtotalMarker) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

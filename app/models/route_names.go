package models

import (
	"sort"
	"strconv"
)

// PlaceholderName marks a route id that is reserved but has no real route
// behind it. Such ids are excluded from the user-facing selector.
const PlaceholderName = "#"

// RouteNames maps a canonical route id (plain integer text, e.g. "7") to its
// display name. Unmapped ids resolve to the empty string.
type RouteNames map[string]string

// Name returns the display name for id, or "" when the id is unmapped.
func (rn RouteNames) Name(id string) string {
	return rn[id]
}

// Selectable returns the routes a driver may pick: every mapped route with a
// non-empty, non-placeholder name, sorted by numeric id (non-numeric ids
// sort after numeric ones, alphabetically).
func (rn RouteNames) Selectable() []RouteRef {
	refs := make([]RouteRef, 0, len(rn))
	for id, name := range rn {
		if name == "" || name == PlaceholderName {
			continue
		}
		refs = append(refs, RouteRef{ID: id, Name: name})
	}
	sort.Slice(refs, func(i, j int) bool {
		a, errA := strconv.Atoi(refs[i].ID)
		b, errB := strconv.Atoi(refs[j].ID)
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return refs[i].ID < refs[j].ID
		}
	})
	return refs
}

package services

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/route-assist/app/models"
	"github.com/route-assist/internal/normalizer"
	"github.com/route-assist/internal/pipeline"
	"github.com/route-assist/internal/store"
	"go.uber.org/zap"
)

// LookupService answers "where is this address in my route" against the
// finalized table. Pure reads: the table is immutable for the lifetime of
// the service and verdicts are cached per (route, street) pair.
type LookupService struct {
	table  *store.Table
	names  models.RouteNames
	cache  *lru.Cache[string, *models.LookupResult]
	logger *zap.Logger
}

// NewLookupService creates the service with an LRU verdict cache of the
// given size.
func NewLookupService(table *store.Table, names models.RouteNames, cacheSize int, logger *zap.Logger) (*LookupService, error) {
	cache, err := lru.New[string, *models.LookupResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}
	return &LookupService{
		table:  table,
		names:  names,
		cache:  cache,
		logger: logger,
	}, nil
}

// Routes returns the routes a driver may select.
func (s *LookupService) Routes() []models.RouteRef {
	return s.names.Selectable()
}

// RouteName resolves the display name of a route id in any textual form.
func (s *LookupService) RouteName(routeID string) string {
	return s.names.Name(pipeline.NormalizeRouteID(routeID))
}

// Lookup matches an address against the selected route. Matching is exact
// equality on the normalized street name; there is no fuzzy matching. The
// second return reports whether the verdict came from the cache.
func (s *LookupService) Lookup(rawAddress, routeID string) (*models.LookupResult, bool) {
	street := normalizer.ExtractStreetName(rawAddress)
	route := pipeline.NormalizeRouteID(routeID)

	key := route + "|" + street
	if cached, ok := s.cache.Get(key); ok {
		return cached, true
	}

	result := s.search(street, route)
	s.cache.Add(key, result)
	return result, false
}

func (s *LookupService) search(street, route string) *models.LookupResult {
	records := s.table.Records()
	streets := s.table.Streets()

	for i := range records {
		if streets[i] != street || records[i].RouteID != route {
			continue
		}
		return &models.LookupResult{
			Status:   models.StatusFound,
			Position: records[i].SequencePosition,
			AlsoIn:   s.otherRoutes(street, route),
		}
	}

	// Not in the selected route: report the first route that does have the
	// street, if any.
	for i := range records {
		if streets[i] != street {
			continue
		}
		other := records[i].RouteID
		return &models.LookupResult{
			Status: models.StatusWrongRoute,
			Elsewhere: &models.RouteRef{
				ID:   other,
				Name: s.names.Name(other),
			},
		}
	}

	return &models.LookupResult{Status: models.StatusNotFound}
}

// otherRoutes collects the advisory "also appears in" list: every route
// other than the queried one containing the street, each once, in table
// order. Advisory only, the verdict is already decided.
func (s *LookupService) otherRoutes(street, route string) []models.RouteRef {
	records := s.table.Records()
	streets := s.table.Streets()

	var refs []models.RouteRef
	seen := map[string]bool{route: true}
	for i := range records {
		if streets[i] != street || seen[records[i].RouteID] {
			continue
		}
		seen[records[i].RouteID] = true
		refs = append(refs, models.RouteRef{
			ID:   records[i].RouteID,
			Name: s.names.Name(records[i].RouteID),
		})
	}
	return refs
}

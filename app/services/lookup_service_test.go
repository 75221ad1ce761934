package services

import (
	"testing"

	"github.com/route-assist/app/models"
	"github.com/route-assist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNames = models.RouteNames{
	"3": "grand theatre",
	"4": models.PlaceholderName,
	"7": "VERDUN",
	"9": "QUAI DE BACALAN",
}

func finalized(route, name, addr string, pos int) models.DeliveryRecord {
	return models.DeliveryRecord{
		RouteID:          route,
		RouteName:        name,
		RawAddress:       addr,
		Date:             "2024-05-01",
		Time:             "08:00",
		SequencePosition: pos,
	}
}

func newTestLookup(t *testing.T) *LookupService {
	t.Helper()
	table := store.NewTable([]models.DeliveryRecord{
		finalized("7", "VERDUN", "12 Rue des Lilas", 1),
		finalized("7", "VERDUN", "5 Avenue Foch", 2),
		finalized("3", "grand theatre", "8 Rue des Lilas", 1),
		finalized("3", "grand theatre", "1 Place Pey-Berland", 2),
	})
	svc, err := NewLookupService(table, testNames, 128, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestLookupFound(t *testing.T) {
	svc := newTestLookup(t)

	result, _ := svc.Lookup("12 Rue des Lilas", "7")

	assert.Equal(t, models.StatusFound, result.Status)
	assert.Equal(t, 1, result.Position)
}

func TestLookupNormalizationSymmetry(t *testing.T) {
	svc := newTestLookup(t)

	// Lowercase, different house number, accents: all the same street key,
	// so all must land on the same position.
	for _, input := range []string{"12 rue des lilas", "44 RUE DES LILAS", "Rue des Lilas"} {
		result, _ := svc.Lookup(input, "7")
		assert.Equal(t, models.StatusFound, result.Status, "input %q", input)
		assert.Equal(t, 1, result.Position, "input %q", input)
	}
}

func TestLookupFloatLikeRouteID(t *testing.T) {
	svc := newTestLookup(t)

	result, _ := svc.Lookup("5 Avenue Foch", "7.0")

	assert.Equal(t, models.StatusFound, result.Status)
	assert.Equal(t, 2, result.Position)
}

func TestLookupAlsoInOtherRoutes(t *testing.T) {
	svc := newTestLookup(t)

	result, _ := svc.Lookup("12 Rue des Lilas", "7")

	require.Equal(t, models.StatusFound, result.Status)
	require.Len(t, result.AlsoIn, 1)
	assert.Equal(t, "3", result.AlsoIn[0].ID)
	assert.Equal(t, "grand theatre", result.AlsoIn[0].Name)
}

func TestLookupAlsoInEmptyForExclusiveStreet(t *testing.T) {
	svc := newTestLookup(t)

	result, _ := svc.Lookup("5 Avenue Foch", "7")

	require.Equal(t, models.StatusFound, result.Status)
	assert.Empty(t, result.AlsoIn)
}

func TestLookupWrongRoute(t *testing.T) {
	svc := newTestLookup(t)

	result, _ := svc.Lookup("1 Place Pey-Berland", "7")

	assert.Equal(t, models.StatusWrongRoute, result.Status)
	require.NotNil(t, result.Elsewhere)
	assert.Equal(t, "3", result.Elsewhere.ID)
	assert.Equal(t, "grand theatre", result.Elsewhere.Name)
}

func TestLookupNotFoundAnywhere(t *testing.T) {
	svc := newTestLookup(t)

	result, _ := svc.Lookup("99 Rue Imaginaire", "7")

	assert.Equal(t, models.StatusNotFound, result.Status)
	assert.Nil(t, result.Elsewhere)
}

func TestLookupCacheHit(t *testing.T) {
	svc := newTestLookup(t)

	first, hit := svc.Lookup("12 Rue des Lilas", "7")
	assert.False(t, hit)

	second, hit := svc.Lookup("44 rue des Lilas", "7") // same street key
	assert.True(t, hit)
	assert.Equal(t, first, second)
}

func TestRoutesExcludesPlaceholder(t *testing.T) {
	svc := newTestLookup(t)

	routes := svc.Routes()

	require.Len(t, routes, 3)
	assert.Equal(t, "3", routes[0].ID)
	assert.Equal(t, "7", routes[1].ID)
	assert.Equal(t, "9", routes[2].ID)
	for _, r := range routes {
		assert.NotEqual(t, models.PlaceholderName, r.Name)
		assert.NotEmpty(t, r.Name)
	}
}

func TestRouteName(t *testing.T) {
	svc := newTestLookup(t)

	assert.Equal(t, "VERDUN", svc.RouteName("7.0"))
	assert.Equal(t, "", svc.RouteName("99"))
}

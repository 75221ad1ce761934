package services

import (
	"testing"

	"github.com/route-assist/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSessions(t *testing.T) *SessionService {
	t.Helper()
	return NewSessionService(newTestLookup(t), zap.NewNop())
}

func TestSubmitAcceptedAppends(t *testing.T) {
	svc := newTestSessions(t)
	session := svc.Create()

	result, err := svc.Submit(session.ID, "12 Rue des Lilas", "7")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFound, result.Status)

	stops, err := svc.Table(session.ID, "7")
	require.NoError(t, err)
	require.Len(t, stops, 1)
	assert.Equal(t, "12 Rue des Lilas", stops[0].Address)
	assert.Equal(t, 1, stops[0].Position)
}

func TestSubmitRejectedNotAppended(t *testing.T) {
	svc := newTestSessions(t)
	session := svc.Create()

	result, err := svc.Submit(session.ID, "1 Place Pey-Berland", "7")
	require.NoError(t, err)
	assert.Equal(t, models.StatusWrongRoute, result.Status)

	result, err = svc.Submit(session.ID, "99 Rue Imaginaire", "7")
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotFound, result.Status)

	stops, err := svc.Table(session.ID, "7")
	require.NoError(t, err)
	assert.Empty(t, stops)
}

func TestSubmitBlankAddress(t *testing.T) {
	svc := newTestSessions(t)
	session := svc.Create()

	_, err := svc.Submit(session.ID, "   ", "7")
	assert.ErrorIs(t, err, ErrEmptyAddress)

	stops, err := svc.Table(session.ID, "7")
	require.NoError(t, err)
	assert.Empty(t, stops)
}

func TestSubmitUnknownSession(t *testing.T) {
	svc := newTestSessions(t)

	_, err := svc.Submit("no-such-session", "12 Rue des Lilas", "7")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTableRevalidatesOnRouteSwitch(t *testing.T) {
	svc := newTestSessions(t)
	session := svc.Create()

	_, err := svc.Submit(session.ID, "12 Rue des Lilas", "7")
	require.NoError(t, err)

	// On route 7 the address shows up.
	stops, err := svc.Table(session.ID, "7")
	require.NoError(t, err)
	require.Len(t, stops, 1)

	// After switching to route 3 the same street exists there too, so it
	// stays visible, at route 3's position.
	stops, err = svc.Table(session.ID, "3")
	require.NoError(t, err)
	require.Len(t, stops, 1)
	assert.Equal(t, 1, stops[0].Position)

	// On a route without the street it drops out entirely.
	stops, err = svc.Table(session.ID, "9")
	require.NoError(t, err)
	assert.Empty(t, stops)
}

func TestTableSortedAndGrouped(t *testing.T) {
	svc := newTestSessions(t)
	session := svc.Create()

	// Submitted out of delivery order, plus two entries for the same street.
	for _, addr := range []string{"5 Avenue Foch", "12 Rue des Lilas", "44 rue des lilas"} {
		_, err := svc.Submit(session.ID, addr, "7")
		require.NoError(t, err)
	}

	stops, err := svc.Table(session.ID, "7")
	require.NoError(t, err)
	require.Len(t, stops, 3)

	// Sorted by sequence position: the two Lilas entries (position 1) first.
	assert.Equal(t, 1, stops[0].Position)
	assert.Equal(t, 1, stops[1].Position)
	assert.Equal(t, 2, stops[2].Position)

	// Same street shares a group key; the other street gets the next one.
	assert.Equal(t, stops[0].StreetGroup, stops[1].StreetGroup)
	assert.NotEqual(t, stops[0].StreetGroup, stops[2].StreetGroup)
}

func TestToggleCamera(t *testing.T) {
	svc := newTestSessions(t)
	session := svc.Create()

	on, err := svc.ToggleCamera(session.ID)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := svc.ToggleCamera(session.ID)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = svc.ToggleCamera("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

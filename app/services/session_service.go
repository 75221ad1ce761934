package services

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/route-assist/app/models"
	"github.com/route-assist/helpers/utils"
	"github.com/route-assist/internal/normalizer"
	"go.uber.org/zap"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyAddress rejects a blank submission before it touches any
	// session state.
	ErrEmptyAddress = errors.New("address must not be empty")
)

// Session holds one driver's interactive state: the addresses accepted so
// far (as submitted, raw) and the camera visibility toggle.
type Session struct {
	ID         string
	Accepted   []string
	ShowCamera bool
	CreatedAt  time.Time
}

// SessionService owns all live sessions, keyed by generated id. Accepted
// addresses are stored raw; everything displayed is re-derived from the
// lookup table on each read, so switching routes re-validates the list.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	lookup   *LookupService
	logger   *zap.Logger
}

// NewSessionService creates an empty session registry.
func NewSessionService(lookup *LookupService, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: make(map[string]*Session),
		lookup:   lookup,
		logger:   logger,
	}
}

// Create starts a new session.
func (s *SessionService) Create() *Session {
	session := &Session{
		ID:        utils.GenerateUUID(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("Session created", zap.String("session_id", session.ID))
	return session
}

// Submit runs the address through the lookup and, when it belongs to the
// selected route, appends it to the session's accepted list. A blank address
// is rejected with ErrEmptyAddress and leaves the session untouched.
func (s *SessionService) Submit(sessionID, rawAddress, routeID string) (*models.LookupResult, error) {
	if strings.TrimSpace(rawAddress) == "" {
		return nil, ErrEmptyAddress
	}

	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	result, _ := s.lookup.Lookup(rawAddress, routeID)
	if result.Status == models.StatusFound {
		s.mu.Lock()
		session.Accepted = append(session.Accepted, rawAddress)
		s.mu.Unlock()
	}
	return result, nil
}

// Table builds the displayed table for the currently selected route: every
// accepted address is re-validated, addresses that no longer match the
// selected route drop out, survivors are sorted by sequence position and
// given street-group keys (numbered by first appearance) so same-street
// rows can be visually grouped.
func (s *SessionService) Table(sessionID, routeID string) ([]models.AcceptedStop, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.RUnlock()
		return nil, ErrSessionNotFound
	}
	accepted := make([]string, len(session.Accepted))
	copy(accepted, session.Accepted)
	s.mu.RUnlock()

	var stops []models.AcceptedStop
	for _, address := range accepted {
		result, _ := s.lookup.Lookup(address, routeID)
		if result.Status != models.StatusFound {
			continue
		}
		stops = append(stops, models.AcceptedStop{
			Address:  address,
			Position: result.Position,
			AlsoIn:   result.AlsoIn,
		})
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Position < stops[j].Position
	})

	groups := make(map[string]int)
	for i := range stops {
		street := normalizer.ExtractStreetName(stops[i].Address)
		group, ok := groups[street]
		if !ok {
			group = len(groups)
			groups[street] = group
		}
		stops[i].StreetGroup = group
	}
	return stops, nil
}

// ToggleCamera flips the session's camera visibility and returns the new
// state.
func (s *SessionService) ToggleCamera(sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return false, ErrSessionNotFound
	}
	session.ShowCamera = !session.ShowCamera
	return session.ShowCamera, nil
}

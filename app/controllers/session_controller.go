package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/route-assist/app/models"
	"github.com/route-assist/app/requests"
	"github.com/route-assist/app/responses"
	"github.com/route-assist/app/services"
	"go.uber.org/zap"
)

// SessionController manages the driver's interactive session: submitting
// addresses, reading back the accepted table, toggling the camera.
type SessionController struct {
	sessionService *services.SessionService
	lookupService  *services.LookupService
	logger         *zap.Logger
}

// NewSessionController creates the controller.
func NewSessionController(sessionService *services.SessionService, lookupService *services.LookupService, logger *zap.Logger) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		lookupService:  lookupService,
		logger:         logger,
	}
}

// CreateSession starts a fresh session.
func (sc *SessionController) CreateSession(c *gin.Context) {
	session := sc.sessionService.Create()
	c.JSON(http.StatusCreated, responses.CreateSessionResponse{
		SessionID: session.ID,
	})
}

// SubmitAddress submits a typed or scanned address against the selected
// route. Accepted addresses are appended to the session; every other
// verdict leaves the session unchanged.
func (sc *SessionController) SubmitAddress(c *gin.Context) {
	var req requests.SubmitAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Requête invalide : " + err.Error(),
		})
		return
	}

	result, err := sc.sessionService.Submit(c.Param("sessionID"), req.Address, req.RouteID)
	if err != nil {
		sc.renderSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.SubmitAddressResponse{
		Result:  result,
		Added:   result.Status == models.StatusFound,
		Message: sc.verdictMessage(result, req.RouteID),
	})
}

// GetTable returns the accepted stops re-validated against the currently
// selected route.
func (sc *SessionController) GetTable(c *gin.Context) {
	routeID := c.Query("route_id")
	if routeID == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_ROUTE",
			Message: "Veuillez choisir une tournée.",
		})
		return
	}

	stops, err := sc.sessionService.Table(c.Param("sessionID"), routeID)
	if err != nil {
		sc.renderSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.SessionTableResponse{
		RouteID: routeID,
		Stops:   stops,
	})
}

// ToggleCamera flips the camera visibility for the session.
func (sc *SessionController) ToggleCamera(c *gin.Context) {
	show, err := sc.sessionService.ToggleCamera(c.Param("sessionID"))
	if err != nil {
		sc.renderSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.CameraResponse{ShowCamera: show})
}

func (sc *SessionController) renderSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "SESSION_NOT_FOUND",
			Message: "Session inconnue ou expirée.",
		})
	case errors.Is(err, services.ErrEmptyAddress):
		c.JSON(http.StatusUnprocessableEntity, responses.ErrorResponse{
			Error:   "EMPTY_ADDRESS",
			Message: "Veuillez saisir ou scanner une adresse.",
		})
	default:
		sc.logger.Error("Session operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "SESSION_ERROR",
			Message: "Erreur interne.",
		})
	}
}

// verdictMessage renders the user-facing outcome for a submission.
func (sc *SessionController) verdictMessage(result *models.LookupResult, routeID string) string {
	switch result.Status {
	case models.StatusFound:
		return fmt.Sprintf("Adresse ajoutée à la tournée %s.", routeID)
	case models.StatusWrongRoute:
		return fmt.Sprintf(
			"Cette adresse n'est pas dans votre tournée %s - %s. Elle correspond à la tournée %s - %s.",
			routeID, sc.lookupService.RouteName(routeID),
			result.Elsewhere.ID, result.Elsewhere.Name)
	default:
		return "Adresse non trouvée dans aucune tournée."
	}
}

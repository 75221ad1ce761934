package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/route-assist/app/requests"
	"github.com/route-assist/app/responses"
	"github.com/route-assist/app/services"
	"go.uber.org/zap"
)

// LookupController exposes the route selector and the pure address lookup.
type LookupController struct {
	lookupService *services.LookupService
	logger        *zap.Logger
	startTime     time.Time
}

// NewLookupController creates the controller.
func NewLookupController(lookupService *services.LookupService, logger *zap.Logger) *LookupController {
	return &LookupController{
		lookupService: lookupService,
		logger:        logger,
		startTime:     time.Now(),
	}
}

// GetRoutes lists the routes a driver may select.
func (lc *LookupController) GetRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, responses.RoutesResponse{
		Routes: lc.lookupService.Routes(),
	})
}

// LookupAddress answers a single lookup without touching any session.
func (lc *LookupController) LookupAddress(c *gin.Context) {
	var req requests.LookupAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Requête invalide : " + err.Error(),
		})
		return
	}

	startTime := time.Now()
	result, cacheHit := lc.lookupService.Lookup(req.Address, req.RouteID)
	lc.logger.Info("Address lookup",
		zap.String("route_id", req.RouteID),
		zap.String("status", result.Status),
		zap.Bool("cache_hit", cacheHit))

	c.JSON(http.StatusOK, responses.LookupAddressResponse{
		Result:           result,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:         cacheHit,
	})
}

// HealthCheck reports liveness and uptime.
func (lc *LookupController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(lc.startTime).Seconds()),
	})
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/route-assist/app/controllers"
)

// SetupAPIRoutes registers the versioned API.
func SetupAPIRoutes(router *gin.Engine, lookupController *controllers.LookupController, sessionController *controllers.SessionController, scanController *controllers.ScanController) {
	v1 := router.Group("/v1")
	{
		v1.GET("/routes", lookupController.GetRoutes)
		v1.POST("/lookup", lookupController.LookupAddress)
		v1.POST("/scan", scanController.Scan)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionController.CreateSession)
			sessions.POST("/:sessionID/addresses", sessionController.SubmitAddress)
			sessions.GET("/:sessionID/table", sessionController.GetTable)
			sessions.POST("/:sessionID/camera", sessionController.ToggleCamera)
		}

		v1.GET("/health", lookupController.HealthCheck)
	}
}

// SetupHealthRoutes registers the unversioned health endpoints.
func SetupHealthRoutes(router *gin.Engine, lookupController *controllers.LookupController) {
	router.GET("/health", lookupController.HealthCheck)
	router.GET("/ready", lookupController.HealthCheck)
	router.GET("/live", lookupController.HealthCheck)
}

// SetupAllRoutes wires middleware and every route group.
func SetupAllRoutes(router *gin.Engine, lookupController *controllers.LookupController, sessionController *controllers.SessionController, scanController *controllers.ScanController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, lookupController)
	SetupAPIRoutes(router, lookupController, sessionController, scanController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
}

package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes registers the landing and documentation pages.
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Route Assist Service",
				"version": "1.0.0",
				"docs":    "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Route Assist API v1",
				"endpoints": map[string]string{
					"routes":  "GET /v1/routes",
					"lookup":  "POST /v1/lookup",
					"scan":    "POST /v1/scan",
					"session": "POST /v1/sessions",
					"submit":  "POST /v1/sessions/:sessionID/addresses",
					"table":   "GET /v1/sessions/:sessionID/table?route_id=N",
					"camera":  "POST /v1/sessions/:sessionID/camera",
					"health":  "GET /v1/health",
				},
			})
		})
	}
}

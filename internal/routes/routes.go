package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabhub_backend/internal/handlers"
)

// RegisterRoutes mounts all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.FeedbackHandler.RegisterRoutes(api)
	}
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/handlers"
)

// RegisterRoutes wires all HTTP routes onto the engine.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ResumeHandler.RegisterRoutes(api)
		appHandlers.PaymentHandler.RegisterRoutes(api)
		appHandlers.TemplatesHandler.RegisterRoutes(api)
		appHandlers.EmailHandler.RegisterRoutes(api)
	}
}

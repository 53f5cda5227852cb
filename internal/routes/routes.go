package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modella_backend/internal/handlers"
	"modella_backend/internal/middleware"
)

// SetupRoutes навешивает middleware и регистрирует все маршруты.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	h.User.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		h.User.RegisterRoutes(protected)
		h.Tag.RegisterRoutes(protected)
		h.Preference.RegisterRoutes(protected)
		h.Rating.RegisterRoutes(protected)
		h.Matching.RegisterRoutes(protected)
		h.Generator.RegisterRoutes(protected)
	}
}

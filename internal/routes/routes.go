package routes

import (
	"net/http"

	"arenaapp_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Register mounts every endpoint under /api/v1. Static segments (auth, admin,
// favoritos, search) take priority over the :entity catalog routes.
func Register(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	h.Auth.RegisterRoutes(api.Group("/auth"))
	h.Catalog.RegisterAdminRoutes(api.Group("/admin"))
	h.Favorite.RegisterRoutes(api.Group("/favoritos"))
	h.Search.RegisterRoutes(api)
	h.Catalog.RegisterPublicRoutes(api)
}

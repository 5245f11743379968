package handlers

import (
	"net/http"

	"arenaapp_backend/internal/middleware"
	"arenaapp_backend/internal/services"
	"arenaapp_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(middleware.RequireAuth())
	rg.GET("", h.ListAll)
	rg.GET("/:entity", h.ListByType)
	rg.POST("/:entity", h.Add)
	rg.DELETE("/:entity/:id", h.Remove)
}

// ListAll returns the saved-id sets of every type in one response, so the
// client can mark hearts across pages with a single call.
func (h *FavoriteHandler) ListAll(c *gin.Context) {
	sets := h.favoriteService.ListAll(h.GetDB(c), middleware.GetUserID(c))
	c.JSON(http.StatusOK, sets)
}

func (h *FavoriteHandler) ListByType(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	records, err := h.favoriteService.ListByType(h.GetDB(c), middleware.GetUserID(c), typ)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.FavoriteRequest
	if err := h.BindAndValidateJSON(c, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.favoriteService.Add(h.GetDB(c), middleware.GetUserID(c), typ, req.ItemID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.favoriteService.Remove(h.GetDB(c), middleware.GetUserID(c), typ, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": false})
}

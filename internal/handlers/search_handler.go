package handlers

import (
	"net/http"

	"arenaapp_backend/internal/services"
	"arenaapp_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
}

func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.UnifiedSearchRequest
	if err := h.BindAndValidateQuery(c, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.searchService.Search(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

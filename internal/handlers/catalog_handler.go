package handlers

import (
	"net/http"

	"arenaapp_backend/internal/middleware"
	"arenaapp_backend/internal/services"
	"arenaapp_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

// RegisterPublicRoutes mounts the read-only catalog endpoints.
func (h *CatalogHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/:entity/public", h.Public)
	rg.GET("/:entity/listado", h.Browse)
}

// RegisterAdminRoutes mounts the CRUD endpoints behind admin auth.
func (h *CatalogHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	rg.GET("/:entity", h.AdminList)
	rg.POST("/:entity", h.Create)
	rg.GET("/:entity/:id", h.Get)
	rg.PUT("/:entity/:id", h.Update)
	rg.DELETE("/:entity/:id", h.Delete)
}

// Public returns the full published array of one type, the source set the
// client-side fallback pipeline can run over.
func (h *CatalogHandler) Public(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items, err := h.catalogService.PublicListings(c.Request.Context(), h.GetDB(c), typ, c.Query("lang"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Browse runs the server-side filter, sort and paginate pipeline.
func (h *CatalogHandler) Browse(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.BrowseRequest
	if err := h.BindAndValidateQuery(c, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := h.catalogService.Browse(c.Request.Context(), h.GetDB(c), typ, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) AdminList(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := h.catalogService.AdminList(h.GetDB(c), typ, c.Query("search"), ParsePage(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) Get(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	row, err := h.catalogService.GetByID(h.GetDB(c), typ, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ListingRequest
	if err := h.BindAndValidateJSON(c, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	row, err := h.catalogService.Create(c.Request.Context(), h.GetDB(c), typ, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ListingRequest
	if err := h.BindAndValidateJSON(c, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	row, err := h.catalogService.Update(c.Request.Context(), h.GetDB(c), typ, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	typ, err := h.EntityType(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), h.GetDB(c), typ, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

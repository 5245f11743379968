package handlers

import (
	"net/http"

	"arenaapp_backend/internal/auth"
	"arenaapp_backend/internal/config"
	"arenaapp_backend/internal/middleware"
	"arenaapp_backend/internal/services"
	"arenaapp_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", middleware.RequireAuth(), h.Me)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := h.BindAndValidateJSON(c, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	maxAge := config.GetConfig().JWT.TTL * 60
	c.SetCookie(auth.CookieName, resp.Token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.authService.CurrentUser(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/services"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type tokenRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type changePasscodeRequest struct {
	Current string `json:"current"`
	New     string `json:"new"`
}

// RegisterRoutes mounts the endpoints that must stay reachable while the API is locked.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.GET("/status", h.Status)
		auth.POST("/token", h.Token)
		auth.PUT("/passcode", h.ChangePasscode)
	}
}

func (h *AuthHandler) Status(c *gin.Context) {
	locked, err := h.service.Locked(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locked": locked})
}

// Token godoc
// @Summary Exchange the passcode for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Passcode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// ChangePasscode godoc
// @Summary Set, replace or clear (empty "new") the passcode
// @Tags auth
// @Accept json
// @Router /auth/passcode [put]
func (h *AuthHandler) ChangePasscode(c *gin.Context) {
	var req changePasscodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.ChangePasscode(c.Request.Context(), services.ChangePasscodeInput{
		Current: req.Current,
		New:     req.New,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

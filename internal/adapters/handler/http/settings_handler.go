package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/services"
)

type SettingsHandler struct {
	svc *services.SettingsService
}

func NewSettingsHandler(svc *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// settingsResponse never carries the passcode hash.
type settingsResponse struct {
	Username             string    `json:"username"`
	Avatar               string    `json:"avatar,omitempty"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	DefaultReminderTime  string    `json:"default_reminder_time"`
	WeekStartDay         int       `json:"week_start_day"`
	Theme                string    `json:"theme"`
	OnboardingComplete   bool      `json:"onboarding_complete"`
	PasscodeEnabled      bool      `json:"passcode_enabled"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func toSettingsResponse(s domain.Settings) settingsResponse {
	return settingsResponse{
		Username:             s.Username,
		Avatar:               s.Avatar,
		NotificationsEnabled: s.NotificationsEnabled,
		DefaultReminderTime:  s.DefaultReminderTime,
		WeekStartDay:         int(s.WeekStartDay),
		Theme:                string(s.Theme),
		OnboardingComplete:   s.OnboardingComplete,
		PasscodeEnabled:      s.HasPasscode(),
		UpdatedAt:            s.UpdatedAt,
	}
}

type updateSettingsRequest struct {
	Username             *string `json:"username"`
	Avatar               *string `json:"avatar"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	DefaultReminderTime  *string `json:"default_reminder_time"`
	WeekStartDay         *int    `json:"week_start_day"`
	Theme                *string `json:"theme"`
	OnboardingComplete   *bool   `json:"onboarding_complete"`
}

type onboardingRequest struct {
	Username string `json:"username"`
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("", h.Get)
		settings.PATCH("", h.Update)
		settings.POST("/reset", h.Reset)
		settings.POST("/onboarding", h.CompleteOnboarding)
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(s))
}

// Update godoc
// @Summary Merge a partial settings update
// @Tags settings
// @Accept json
// @Produce json
// @Router /settings [patch]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.svc.Update(c.Request.Context(), domain.SettingsPatch{
		Username:             req.Username,
		Avatar:               req.Avatar,
		NotificationsEnabled: req.NotificationsEnabled,
		DefaultReminderTime:  req.DefaultReminderTime,
		WeekStartDay:         req.WeekStartDay,
		Theme:                req.Theme,
		OnboardingComplete:   req.OnboardingComplete,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(s))
}

func (h *SettingsHandler) Reset(c *gin.Context) {
	s, err := h.svc.Reset(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(s))
}

func (h *SettingsHandler) CompleteOnboarding(c *gin.Context) {
	var req onboardingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	s, err := h.svc.CompleteOnboarding(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(s))
}

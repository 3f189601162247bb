package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type createHabitRequest struct {
	Name                string  `json:"name" binding:"required"`
	Icon                string  `json:"icon"`
	Category            string  `json:"category"`
	MetricType          string  `json:"metric_type"`
	Goal                float64 `json:"goal"`
	Unit                string  `json:"unit"`
	Frequency           string  `json:"frequency"`
	DaysPerWeek         int     `json:"days_per_week"`
	NotificationEnabled bool    `json:"notification_enabled"`
	NotificationTime    string  `json:"notification_time"`
}

type updateHabitRequest struct {
	Name                string  `json:"name"`
	Icon                string  `json:"icon"`
	Category            string  `json:"category"`
	MetricType          string  `json:"metric_type"`
	Goal                float64 `json:"goal"`
	Unit                string  `json:"unit"`
	Frequency           string  `json:"frequency"`
	DaysPerWeek         int     `json:"days_per_week"`
	NotificationEnabled *bool   `json:"notification_enabled"`
	NotificationTime    string  `json:"notification_time"`
}

type completionRequest struct {
	Date string `json:"date"`
}

type progressRequest struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value" binding:"required"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/:id", h.Get)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
		habits.POST("/:id/done", h.MarkDone)
		habits.POST("/:id/toggle", h.Toggle)
		habits.POST("/:id/progress", h.RecordProgress)
	}
}

// Create godoc
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Success 201 {object} domain.Habit
// @Router /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{
		Name:                req.Name,
		Icon:                req.Icon,
		Category:            req.Category,
		MetricType:          req.MetricType,
		Goal:                req.Goal,
		Unit:                req.Unit,
		Frequency:           req.Frequency,
		DaysPerWeek:         req.DaysPerWeek,
		NotificationEnabled: req.NotificationEnabled,
		NotificationTime:    req.NotificationTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// List godoc
// @Summary List habits in creation order
// @Tags habits
// @Produce json
// @Success 200 {array} domain.Habit
// @Router /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *HabitHandler) Get(c *gin.Context) {
	habit, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Update godoc
// @Summary Update a habit; omitted fields keep their value
// @Tags habits
// @Accept json
// @Produce json
// @Success 200 {object} domain.Habit
// @Router /habits/{id} [put]
func (h *HabitHandler) Update(c *gin.Context) {
	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:                  c.Param("id"),
		Name:                req.Name,
		Icon:                req.Icon,
		Category:            req.Category,
		MetricType:          req.MetricType,
		Goal:                req.Goal,
		Unit:                req.Unit,
		Frequency:           req.Frequency,
		DaysPerWeek:         req.DaysPerWeek,
		NotificationEnabled: req.NotificationEnabled,
		NotificationTime:    req.NotificationTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Delete godoc
// @Summary Delete a habit with its notes and reminder
// @Tags habits
// @Success 204
// @Router /habits/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindDate reads an optional JSON body carrying a date. An empty body means today.
func bindDate(c *gin.Context) (string, bool) {
	var req completionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return "", false
		}
	}
	if req.Date == "" {
		req.Date = c.Query("date")
	}
	return req.Date, true
}

func (h *HabitHandler) MarkDone(c *gin.Context) {
	date, ok := bindDate(c)
	if !ok {
		return
	}

	habit, err := h.svc.MarkDone(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Toggle(c *gin.Context) {
	date, ok := bindDate(c)
	if !ok {
		return
	}

	habit, err := h.svc.ToggleDate(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// RecordProgress godoc
// @Summary Record progress for a day; a value <= 0 clears the day
// @Tags habits
// @Accept json
// @Produce json
// @Success 200 {object} domain.Habit
// @Router /habits/{id}/progress [post]
func (h *HabitHandler) RecordProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.svc.RecordProgress(c.Request.Context(), c.Param("id"), req.Date, *req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

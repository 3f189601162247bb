package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	{
		stats.GET("/overview", h.Overview)
		stats.GET("/streaks", h.Streaks)
		stats.GET("/completion", h.CompletionRate)
		stats.GET("/comparison", h.Compare)
		stats.GET("/weekly-activity", h.WeeklyActivity)
		stats.GET("/day", h.DayStats)
		stats.GET("/calendar", h.MonthCalendar)
		stats.GET("/heatmap", h.YearHeatmap)
		stats.GET("/mood", h.MoodTrend)
		stats.GET("/report", h.RangeReport)
	}
}

func queryInt(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key + ", expected an integer"})
		return 0, false
	}
	return n, true
}

// Overview godoc
// @Summary Dashboard summary
// @Tags stats
// @Produce json
// @Success 200 {object} domain.Overview
// @Router /stats/overview [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Streaks godoc
// @Summary Current and best streak of a habit, or of perfect days when no habit is given
// @Tags stats
// @Produce json
// @Param habit_id query string false "habit filter"
// @Success 200 {object} domain.StreakSummary
// @Router /stats/streaks [get]
func (h *StatsHandler) Streaks(c *gin.Context) {
	summary, err := h.svc.Streaks(c.Request.Context(), c.Query("habit_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CompletionRate godoc
// @Summary Completion rate 0..100 for a period or an explicit range
// @Tags stats
// @Produce json
// @Param period query string false "week, month or year"
// @Param habit_id query string false "habit filter"
// @Param start_date query string false "custom range start (YYYY-MM-DD)"
// @Param end_date query string false "custom range end (YYYY-MM-DD)"
// @Router /stats/completion [get]
func (h *StatsHandler) CompletionRate(c *gin.Context) {
	var custom *domain.DateRange
	start, end := c.Query("start_date"), c.Query("end_date")
	if start != "" || end != "" {
		if start == "" || end == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date must be given together"})
			return
		}
		custom = &domain.DateRange{Start: start, End: end}
	}

	period := c.DefaultQuery("period", string(domain.PeriodWeek))
	rate, err := h.svc.CompletionRate(c.Request.Context(), period, c.Query("habit_id"), custom)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"rate": rate, "period": period}
	if custom != nil {
		resp["range"] = custom
		delete(resp, "period")
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) Compare(c *gin.Context) {
	cmp, err := h.svc.Compare(c.Request.Context(), c.DefaultQuery("period", string(domain.PeriodWeek)), c.Query("habit_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

func (h *StatsHandler) WeeklyActivity(c *gin.Context) {
	days, err := h.svc.WeeklyActivity(c.Request.Context(), c.Query("habit_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *StatsHandler) DayStats(c *gin.Context) {
	stats, err := h.svc.DayStats(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MonthCalendar godoc
// @Summary Month grid with heatmap intensity; defaults to the current month
// @Tags stats
// @Produce json
// @Param year query int false "year"
// @Param month query int false "month 1-12"
// @Success 200 {object} domain.MonthCalendar
// @Router /stats/calendar [get]
func (h *StatsHandler) MonthCalendar(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}

	cal, err := h.svc.MonthCalendar(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

func (h *StatsHandler) YearHeatmap(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	days, err := h.svc.YearHeatmap(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *StatsHandler) MoodTrend(c *gin.Context) {
	points, err := h.svc.MoodTrend(c.Request.Context(), c.DefaultQuery("period", string(domain.PeriodWeek)), c.Query("habit_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// RangeReport godoc
// @Summary Per-habit daily breakdown; defaults to the last seven days
// @Tags stats
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} domain.RangeReport
// @Router /stats/report [get]
func (h *StatsHandler) RangeReport(c *gin.Context) {
	end := c.Query("end_date")
	if end == "" {
		end = h.svc.Today()
	}
	if !domain.IsValidDate(end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format, expected YYYY-MM-DD"})
		return
	}

	start := c.Query("start_date")
	if start == "" {
		start = domain.AddDays(end, -6)
	}
	if !domain.IsValidDate(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format, expected YYYY-MM-DD"})
		return
	}

	report, err := h.svc.RangeReport(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

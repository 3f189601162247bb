package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/services"
)

type NoteHandler struct {
	svc *services.NoteService
}

func NewNoteHandler(svc *services.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

type saveNoteRequest struct {
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Images  []string `json:"images"`
	Tags    []string `json:"tags"`
}

func (h *NoteHandler) RegisterRoutes(router *gin.RouterGroup) {
	notes := router.Group("/notes")
	{
		notes.GET("", h.List)
		notes.GET("/:habit_id/:date", h.Get)
		notes.PUT("/:habit_id/:date", h.Save)
		notes.DELETE("/:habit_id/:date", h.Delete)
		notes.GET("/:habit_id/:date/exists", h.Exists)
	}
}

// List godoc
// @Summary List notes, optionally of one habit (newest first)
// @Tags notes
// @Produce json
// @Param habit_id query string false "habit filter"
// @Success 200 {array} domain.Note
// @Router /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if habitID := c.Query("habit_id"); habitID != "" {
		notes, err := h.svc.ListByHabitID(ctx, habitID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, notes)
		return
	}

	notes, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.svc.Get(c.Request.Context(), c.Param("habit_id"), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// Save godoc
// @Summary Create or replace the note of a habit for a day
// @Tags notes
// @Accept json
// @Produce json
// @Success 200 {object} domain.Note
// @Router /notes/{habit_id}/{date} [put]
func (h *NoteHandler) Save(c *gin.Context) {
	var req saveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.svc.Save(c.Request.Context(), services.SaveNoteInput{
		HabitID: c.Param("habit_id"),
		Date:    c.Param("date"),
		Content: req.Content,
		Mood:    req.Mood,
		Images:  req.Images,
		Tags:    req.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("habit_id"), c.Param("date")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NoteHandler) Exists(c *gin.Context) {
	ok, err := h.svc.HasNote(c.Request.Context(), c.Param("habit_id"), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": ok})
}

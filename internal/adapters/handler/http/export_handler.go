package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/archive"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/services"
)

// PassphraseHeader carries the age passphrase for sealed backups.
const PassphraseHeader = "X-Export-Passphrase"

const maxImportBytes = 20 << 20

type ExportHandler struct {
	svc *services.ExportService
}

func NewExportHandler(svc *services.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/export", h.Export)
	router.POST("/import", h.Import)
}

// Export godoc
// @Summary Download every habit as a backup document, sealed when a passphrase header is set
// @Tags backup
// @Produce json
// @Success 200 {object} domain.ExportDocument
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	doc, err := h.svc.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	filename := "kanso-export-" + doc.ExportedAt.Format("2006-01-02")
	passphrase := c.GetHeader(PassphraseHeader)
	if passphrase == "" {
		c.Header("Content-Disposition", `attachment; filename="`+filename+`.json"`)
		c.JSON(http.StatusOK, doc)
		return
	}

	sealed, err := archive.Seal(*doc, passphrase)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`.age"`)
	c.Data(http.StatusOK, "application/octet-stream", sealed)
}

// Import godoc
// @Summary Merge habits from a plain or sealed backup document
// @Tags backup
// @Accept json
// @Produce json
// @Router /import [post]
func (h *ExportHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	doc, err := archive.Decode(raw, c.GetHeader(PassphraseHeader))
	if err != nil {
		respondError(c, err)
		return
	}

	n, err := h.svc.Import(c.Request.Context(), &doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": n})
}

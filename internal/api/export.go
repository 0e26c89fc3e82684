package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salespulse/internal/exporter"
	"salespulse/internal/model"
	"salespulse/internal/service/analysis"
)

const downloadTTL = 10 * time.Minute

// ExportRequest selects the drill-down scope of the exported report.
type ExportRequest struct {
	DSM       string `json:"dsm"`
	ASE       string `json:"ase"`
	Territory string `json:"territory"`
}

// Export generates the XLSX report for a selection and returns a download
// token.
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	ds := h.mem.Dataset()
	if ds == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no dataset imported"})
		return
	}

	// An empty body exports the full dataset.
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sel := model.Selection{DSM: req.DSM, ASE: req.ASE, Territory: req.Territory}

	analyzer := analysis.NewAnalyzer(ds, h.cfg.Analysis)
	result := analyzer.Analyze(sel)
	if result.NoData {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no data for selection"})
		return
	}

	f, err := exporter.NewExporter().Export(result, analyzer.Leaderboards())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("salespulse_report_%s.xlsx", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(os.TempDir(), fmt.Sprintf("salespulse_export_%s.xlsx", uuid.NewString()))

	if err := f.SaveAs(filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write report"})
		return
	}

	token := h.downloads.put(filePath, filename, downloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"filename":  filename,
		"expiresIn": int(downloadTTL.Seconds()),
	})
}

// DownloadExport streams a previously generated report. Tokens are one-shot.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	dl, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}
	h.downloads.delete(token)

	defer os.Remove(dl.filePath)
	c.FileAttachment(dl.filePath, dl.filename)
}

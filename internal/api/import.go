package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"salespulse/internal/parser"
)

// ImportResponse summarizes a completed dataset import.
type ImportResponse struct {
	ImportID string `json:"importId"`
	Filename string `json:"filename"`
	RowCount int    `json:"rowCount"`
	Columns  int    `json:"columns"`
}

// Import replaces the dataset from an uploaded CSV or XLSX file.
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	uploaded := files[0]

	tempDir := os.TempDir()
	tempPath := filepath.Join(tempDir, fmt.Sprintf("salespulse_import_%d_%s", time.Now().Unix(), filepath.Base(uploaded.Filename)))

	if err := c.SaveUploadedFile(uploaded, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}
	defer os.Remove(tempPath)

	ds, err := parser.ParseFile(tempPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	importID, err := h.db.ReplaceDataset(ds, uploaded.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.mem.Replace(ds, uploaded.Filename, time.Now())

	c.JSON(http.StatusOK, ImportResponse{
		ImportID: importID,
		Filename: uploaded.Filename,
		RowCount: len(ds.Records),
		Columns:  len(ds.Columns),
	})
}

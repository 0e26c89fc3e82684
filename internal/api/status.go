package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse is the system status payload.
type StatusResponse struct {
	Initialized bool   `json:"initialized"`
	RowCount    int    `json:"rowCount"`
	Filename    string `json:"filename"`
	ImportedAt  string `json:"importedAt"`
}

// GetStatus reports whether a dataset is loaded and where it came from.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count := h.mem.Count()
	filename, importedAt := h.mem.ImportMeta()

	resp := StatusResponse{
		Initialized: count > 0,
		RowCount:    count,
		Filename:    filename,
	}
	if !importedAt.IsZero() {
		resp.ImportedAt = importedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, resp)
}

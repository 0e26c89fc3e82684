package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salespulse/internal/service/analysis"
)

// GetLeaderboards returns the global top/bottom performers by ASE and by
// territory. Leaderboards always read the full dataset, independent of the
// active drill-down.
// GET /api/leaderboards
func (h *Handler) GetLeaderboards(c *gin.Context) {
	ds := h.mem.Dataset()
	if ds == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no dataset imported"})
		return
	}

	analyzer := analysis.NewAnalyzer(ds, h.cfg.Analysis)
	c.JSON(http.StatusOK, gin.H{"leaderboards": analyzer.Leaderboards()})
}

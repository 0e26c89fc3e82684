package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salespulse/internal/model"
	"salespulse/internal/service/analysis"
)

// selectionFromQuery builds the drill-down selection from query parameters.
// Absent or empty parameters mean "all" at that level.
func selectionFromQuery(c *gin.Context) model.Selection {
	return model.Selection{
		DSM:       c.Query("dsm"),
		ASE:       c.Query("ase"),
		Territory: c.Query("territory"),
	}
}

// GetFilters returns the candidate values per hierarchy level for the
// current selection. ASE candidates are restricted by the chosen DSM,
// territory candidates by both upper levels.
// GET /api/filters?dsm=&ase=
func (h *Handler) GetFilters(c *gin.Context) {
	ds := h.mem.Dataset()
	if ds == nil {
		c.JSON(http.StatusOK, gin.H{"initialized": false})
		return
	}

	analyzer := analysis.NewAnalyzer(ds, h.cfg.Analysis)
	candidates := analyzer.Candidates(selectionFromQuery(c))

	c.JSON(http.StatusOK, gin.H{
		"initialized": true,
		"dsm":         candidates[model.LevelDSM],
		"ase":         candidates[model.LevelASE],
		"territory":   candidates[model.LevelTerritory],
	})
}

// GetAnalysis runs the full pipeline for the selection. A selection matching
// no rows returns the terminal no-data result.
// GET /api/analysis?dsm=&ase=&territory=
func (h *Handler) GetAnalysis(c *gin.Context) {
	ds := h.mem.Dataset()
	if ds == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no dataset imported"})
		return
	}

	analyzer := analysis.NewAnalyzer(ds, h.cfg.Analysis)
	result := analyzer.Analyze(selectionFromQuery(c))

	c.JSON(http.StatusOK, result)
}

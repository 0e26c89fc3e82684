package api

import (
	"github.com/gin-gonic/gin"

	"salespulse/internal/config"
	memstore "salespulse/internal/service/store"
	"salespulse/internal/store"
)

// Handler wires the HTTP API to the dataset stores and the analysis config.
type Handler struct {
	mem       *memstore.MemoryStore
	db        *store.Store
	cfg       *config.AppConfig
	downloads *exportDownloadStore
}

// NewHandler creates the API handler.
func NewHandler(mem *memstore.MemoryStore, db *store.Store, cfg *config.AppConfig) *Handler {
	return &Handler{
		mem:       mem,
		db:        db,
		cfg:       cfg,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// System status
	router.GET("/status", h.GetStatus)

	// Dataset import
	router.POST("/import", h.Import)

	// Drill-down candidates
	router.GET("/filters", h.GetFilters)

	// KPI analysis
	router.GET("/analysis", h.GetAnalysis)

	// Global leaderboards
	router.GET("/leaderboards", h.GetLeaderboards)

	// Report export
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}

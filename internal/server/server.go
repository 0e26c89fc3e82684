package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"salespulse/internal/api"
	"salespulse/internal/config"
	memstore "salespulse/internal/service/store"
	"salespulse/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server is the HTTP server.
type Server struct {
	router *gin.Engine
	store  *store.Store
	mem    *memstore.MemoryStore
	api    *api.Handler
}

// NewServer builds the server: opens the SQLite store, restores the last
// imported dataset into memory, and wires the API routes.
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "salespulse.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	mem := memstore.NewMemoryStore()
	if ds, info, err := sqliteStore.LoadDataset(); err != nil {
		log.Printf("Failed to restore dataset: %v", err)
	} else if ds != nil {
		mem.Replace(ds, info.Filename, info.ImportedAt)
		log.Printf("Restored dataset: %s (%d rows)", info.Filename, len(ds.Records))
	}

	apiHandler := api.NewHandler(mem, sqliteStore, cfg)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		mem:    mem,
		api:    apiHandler,
	}

	s.setupRoutes(devMode)

	return s
}

func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	if devMode {
		// Dev mode proxies page loads to the frontend dev server.
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		sub, _ := fs.Sub(staticFiles, "dist")

		s.router.GET("/", func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})

		s.router.NoRoute(func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})
	}
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the database.
func (s *Server) Close() error {
	return s.store.Close()
}

// Store exposes the SQLite store for tests.
func (s *Server) Store() *store.Store {
	return s.store
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"salespulse/internal/config"
	"salespulse/internal/model"
	memstore "salespulse/internal/service/store"
	"salespulse/internal/store"
)

func newTestRouter(t *testing.T, ds *model.Dataset) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mem := memstore.NewMemoryStore()
	if ds != nil {
		mem.Replace(ds, "test.csv", time.Now())
	}

	handler := NewHandler(mem, db, config.DefaultConfig())

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func testDataset() *model.Dataset {
	ds := model.NewDataset()
	for _, c := range []string{
		model.ColDSM, model.ColASE, model.ColTerritory,
		model.ColManpowerPlan, model.ColManpowerActual, model.ColMandaysActual,
		model.ColRoutesPlan, model.ColRoutesActual, model.ColCallageActual,
		model.ColProductivityActual, model.ColSecondaryPlan, model.ColSecondaryActual,
		model.ColUBOActual, model.ColULSRetailer, model.ColULSDB,
		model.ColTPPerOutletPlan, model.ColTPPerOutletActual,
	} {
		ds.Columns[c] = true
	}
	ds.Records = []model.Record{
		{
			DSM: "North", ASE: "A1", Territory: "T1",
			ManpowerPlan: 10, ManpowerActual: 8, MandaysActual: 240,
			RoutesPlan: 100, RoutesActual: 95, CallageActual: 3900,
			ProductivityActual: 3100, SecondaryPlan: 50, SecondaryActual: 48,
			UBOActual: 200, ULSRetailer: 600, ULSDB: 400,
			TPPerOutletPlan: 100, TPPerOutletActual: 95,
		},
		{
			DSM: "South", ASE: "B1", Territory: "T2",
			ManpowerPlan: 5, ManpowerActual: 5, MandaysActual: 100,
			RoutesPlan: 50, RoutesActual: 20, CallageActual: 500,
			ProductivityActual: 400, SecondaryPlan: 40, SecondaryActual: 10,
			UBOActual: 100, ULSRetailer: 150, ULSDB: 80,
			TPPerOutletPlan: 100, TPPerOutletActual: 40,
		},
	}
	return ds
}

func TestGetStatus(t *testing.T) {
	router := newTestRouter(t, testDataset())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Initialized || resp.RowCount != 2 || resp.Filename != "test.csv" {
		t.Errorf("response = %+v", resp)
	}
}

func TestGetAnalysis(t *testing.T) {
	router := newTestRouter(t, testDataset())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analysis?dsm=North", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.NoData {
		t.Fatal("unexpected NoData result")
	}
	if result.RowCount != 1 || len(result.KPIs) != 10 || len(result.Diagnostics) == 0 {
		t.Errorf("result = rows %d, kpis %d, diagnostics %d", result.RowCount, len(result.KPIs), len(result.Diagnostics))
	}
}

func TestGetAnalysisNoData(t *testing.T) {
	router := newTestRouter(t, testDataset())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analysis?dsm=East", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.NoData {
		t.Error("expected the NoData terminal result")
	}
}

func TestGetAnalysisWithoutDataset(t *testing.T) {
	router := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analysis", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409 before any import", w.Code)
	}
}

func TestGetFilters(t *testing.T) {
	router := newTestRouter(t, testDataset())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/filters?dsm=North", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Initialized bool     `json:"initialized"`
		DSM         []string `json:"dsm"`
		ASE         []string `json:"ase"`
		Territory   []string `json:"territory"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.DSM) != 2 {
		t.Errorf("dsm candidates = %v, want both", resp.DSM)
	}
	if len(resp.ASE) != 1 || resp.ASE[0] != "A1" {
		t.Errorf("ase candidates = %v, want [A1]", resp.ASE)
	}
	if len(resp.Territory) != 1 || resp.Territory[0] != "T1" {
		t.Errorf("territory candidates = %v, want [T1]", resp.Territory)
	}
}

func TestGetLeaderboards(t *testing.T) {
	router := newTestRouter(t, testDataset())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leaderboards", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Leaderboards []model.Leaderboard `json:"leaderboards"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Leaderboards) != 2 {
		t.Fatalf("got %d leaderboards, want 2", len(resp.Leaderboards))
	}
	if resp.Leaderboards[0].Top[0].Key != "A1" {
		t.Errorf("top ASE = %s, want A1", resp.Leaderboards[0].Top[0].Key)
	}
}

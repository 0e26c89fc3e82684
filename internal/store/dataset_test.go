package store

import (
	"path/filepath"
	"testing"

	"salespulse/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadDatasetBeforeImport(t *testing.T) {
	s := openTestStore(t)

	ds, info, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if ds != nil || info != nil {
		t.Error("fresh database must report no dataset")
	}
}

func TestReplaceAndLoadDataset(t *testing.T) {
	s := openTestStore(t)

	ds := model.NewDataset()
	ds.Columns[model.ColDSM] = true
	ds.Columns[model.ColManpowerPlan] = true
	ds.Records = []model.Record{
		{DSM: "North", ASE: "A1", Territory: "T1", ManpowerPlan: 10, SecondaryActual: 45.5},
		{DSM: "South", ASE: "B1", Territory: "T2", ManpowerPlan: 5},
	}

	importID, err := s.ReplaceDataset(ds, "sales.csv")
	if err != nil {
		t.Fatalf("ReplaceDataset failed: %v", err)
	}
	if importID == "" {
		t.Fatal("import id must not be empty")
	}

	loaded, info, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if info == nil || info.ID != importID || info.Filename != "sales.csv" || info.RowCount != 2 {
		t.Errorf("import info = %+v", info)
	}
	if len(loaded.Records) != 2 {
		t.Fatalf("loaded %d records, want 2", len(loaded.Records))
	}
	if loaded.Records[0].DSM != "North" || loaded.Records[0].SecondaryActual != 45.5 {
		t.Errorf("first record = %+v", loaded.Records[0])
	}
	if !loaded.HasColumn(model.ColManpowerPlan) || loaded.HasColumn(model.ColRoutesPlan) {
		t.Error("column set did not survive the round trip")
	}
}

// A second import fully replaces the first.
func TestReplaceDatasetIsWholesale(t *testing.T) {
	s := openTestStore(t)

	first := model.NewDataset()
	first.Columns[model.ColDSM] = true
	first.Records = []model.Record{{DSM: "North"}, {DSM: "South"}}
	if _, err := s.ReplaceDataset(first, "first.csv"); err != nil {
		t.Fatalf("first import failed: %v", err)
	}

	second := model.NewDataset()
	second.Columns[model.ColDSM] = true
	second.Records = []model.Record{{DSM: "East"}}
	if _, err := s.ReplaceDataset(second, "second.csv"); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	loaded, info, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if len(loaded.Records) != 1 || loaded.Records[0].DSM != "East" {
		t.Errorf("loaded records = %+v, want only the second import", loaded.Records)
	}
	if info.Filename != "second.csv" {
		t.Errorf("latest import = %s, want second.csv", info.Filename)
	}
}

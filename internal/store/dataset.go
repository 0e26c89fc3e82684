package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"salespulse/internal/model"
)

// ImportInfo describes the most recent dataset import.
type ImportInfo struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	RowCount   int       `json:"rowCount"`
	ImportedAt time.Time `json:"importedAt"`
}

// ReplaceDataset swaps the persisted dataset for a new one in a single
// transaction and records an import log entry. Returns the import id.
func (s *Store) ReplaceDataset(ds *model.Dataset, filename string) (string, error) {
	cols := make([]string, 0, len(ds.Columns))
	for c := range ds.Columns {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	colsJSON, err := json.Marshal(cols)
	if err != nil {
		return "", fmt.Errorf("failed to encode columns: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sales_records`); err != nil {
		return "", fmt.Errorf("failed to clear dataset: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sales_records (
			dsm, ase, territory,
			manpower_plan, manpower_actual, mandays_actual,
			routes_plan, routes_actual, callage_actual, productivity_actual,
			secondary_plan, secondary_actual, ubo_plan, ubo_actual,
			uls_retailer, uls_db, tp_per_outlet_plan, tp_per_outlet_actual
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range ds.Records {
		r := &ds.Records[i]
		_, err := stmt.Exec(
			r.DSM, r.ASE, r.Territory,
			r.ManpowerPlan, r.ManpowerActual, r.MandaysActual,
			r.RoutesPlan, r.RoutesActual, r.CallageActual, r.ProductivityActual,
			r.SecondaryPlan, r.SecondaryActual, r.UBOPlan, r.UBOActual,
			r.ULSRetailer, r.ULSDB, r.TPPerOutletPlan, r.TPPerOutletActual,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert record: %w", err)
		}
	}

	importID := uuid.NewString()
	if _, err := tx.Exec(`
		INSERT INTO import_logs (id, filename, row_count, columns)
		VALUES (?, ?, ?, ?)
	`, importID, filename, len(ds.Records), string(colsJSON)); err != nil {
		return "", fmt.Errorf("failed to create import log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit import: %w", err)
	}

	return importID, nil
}

// LoadDataset restores the persisted dataset and the latest import info.
// Returns (nil, nil, nil) when nothing has been imported yet.
func (s *Store) LoadDataset() (*model.Dataset, *ImportInfo, error) {
	info, err := s.LatestImport()
	if err != nil {
		return nil, nil, err
	}
	if info == nil {
		return nil, nil, nil
	}

	var cols []string
	row := s.db.QueryRow(`SELECT columns FROM import_logs WHERE id = ?`, info.ID)
	var colsJSON string
	if err := row.Scan(&colsJSON); err != nil {
		return nil, nil, fmt.Errorf("failed to read import columns: %w", err)
	}
	if err := json.Unmarshal([]byte(colsJSON), &cols); err != nil {
		return nil, nil, fmt.Errorf("failed to decode import columns: %w", err)
	}

	ds := model.NewDataset()
	for _, c := range cols {
		ds.Columns[c] = true
	}

	rows, err := s.db.Query(`
		SELECT dsm, ase, territory,
			manpower_plan, manpower_actual, mandays_actual,
			routes_plan, routes_actual, callage_actual, productivity_actual,
			secondary_plan, secondary_actual, ubo_plan, ubo_actual,
			uls_retailer, uls_db, tp_per_outlet_plan, tp_per_outlet_actual
		FROM sales_records ORDER BY id
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query dataset: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Record
		err := rows.Scan(
			&r.DSM, &r.ASE, &r.Territory,
			&r.ManpowerPlan, &r.ManpowerActual, &r.MandaysActual,
			&r.RoutesPlan, &r.RoutesActual, &r.CallageActual, &r.ProductivityActual,
			&r.SecondaryPlan, &r.SecondaryActual, &r.UBOPlan, &r.UBOActual,
			&r.ULSRetailer, &r.ULSDB, &r.TPPerOutletPlan, &r.TPPerOutletActual,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan record: %w", err)
		}
		ds.Records = append(ds.Records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return ds, info, nil
}

// LatestImport returns the most recent import log entry, or nil when the
// database has never seen an import.
func (s *Store) LatestImport() (*ImportInfo, error) {
	row := s.db.QueryRow(`
		SELECT id, filename, row_count, imported_at
		FROM import_logs ORDER BY rowid DESC LIMIT 1
	`)

	var info ImportInfo
	err := row.Scan(&info.ID, &info.Filename, &info.RowCount, &info.ImportedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read import log: %w", err)
	}
	return &info, nil
}

package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"salespulse/internal/model"
)

// ParseFile parses a dataset file, dispatching on the extension.
// CSV and XLSX are supported.
func ParseFile(path string) (*model.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSVFile(path)
	case ".xlsx":
		return ParseXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func parseCSVFile(path string) (*model.Dataset, error) {
	f, err := osOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV parses a CSV dataset from a reader. The first row is the header.
func ParseCSV(r io.Reader) (*model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return parseRows(rows)
}

// ParseXLSX parses the first sheet of a workbook as the dataset.
func ParseXLSX(path string) (*model.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return parseRows(rows)
}

// parseRows turns a raw table into a dataset. Unknown columns are ignored,
// missing metric cells stay zero, blank lines are skipped. Rows are kept even
// when every hierarchy key is empty; candidate derivation drops empty keys.
func parseRows(rows [][]string) (*model.Dataset, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset has no header row")
	}

	mappings := MapHeaders(rows[0])
	if len(mappings) == 0 {
		return nil, fmt.Errorf("no recognizable columns in header")
	}

	ds := model.NewDataset()
	for _, m := range mappings {
		ds.Columns[m.col] = true
	}

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		var rec model.Record
		for _, m := range mappings {
			if m.index >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[m.index])
			if m.setString != nil {
				m.setString(&rec, cell)
				continue
			}
			m.setFloat(&rec, ParseNumber(cell))
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"salespulse/internal/model"
	"salespulse/internal/util"
)

const (
	sheetKPI          = "KPI Overview"
	sheetDiagnostics  = "Diagnostics"
	sheetLeaderboards = "Leaderboards"
)

// Exporter renders an analysis result into a workbook: one sheet for the KPI
// overview, one for the root-cause narrative, one for the leaderboards.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export builds the report workbook. The caller owns closing the file.
func (e *Exporter) Export(result *model.AnalysisResult, boards []model.Leaderboard) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.fillKPISheet(f, result); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := e.fillDiagnosticsSheet(f, result); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := e.fillLeaderboardSheet(f, boards); err != nil {
		_ = f.Close()
		return nil, err
	}

	// The default sheet is replaced by the KPI overview.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(sheetKPI)
	if err == nil {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

func (e *Exporter) fillKPISheet(f *excelize.File, result *model.AnalysisResult) error {
	if _, err := f.NewSheet(sheetKPI); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []interface{}{"Metric", "Actual", "Plan", "% Achieved", "Healthy"}
	if err := f.SetSheetRow(sheetKPI, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, k := range result.KPIs {
		pct, ok := k.PercentAchieved()
		row := []interface{}{
			k.Name,
			k.Actual,
			k.Plan,
			util.FormatPercent(pct, ok),
			healthLabel(result.Flags, k.Name),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetKPI, cell, &row); err != nil {
			return fmt.Errorf("failed to write kpi row: %w", err)
		}
	}

	summaryRow := len(result.KPIs) + 3
	cells := [][]interface{}{
		{"Total Manpower (Plan)", result.Summary.TotalManpowerPlan},
		{"Vacant Positions", result.Summary.VacantPositions},
		{"Secondary Billing", util.FormatINR(result.Summary.TotalSecondary)},
	}
	for i, row := range cells {
		cell := fmt.Sprintf("A%d", summaryRow+i)
		if err := f.SetSheetRow(sheetKPI, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}

func (e *Exporter) fillDiagnosticsSheet(f *excelize.File, result *model.AnalysisResult) error {
	if _, err := f.NewSheet(sheetDiagnostics); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []interface{}{"Severity", "Code", "Message"}
	if err := f.SetSheetRow(sheetDiagnostics, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, d := range result.Diagnostics {
		row := []interface{}{string(d.Severity), d.Code, d.Message}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetDiagnostics, cell, &row); err != nil {
			return fmt.Errorf("failed to write diagnostic row: %w", err)
		}
	}

	return nil
}

func (e *Exporter) fillLeaderboardSheet(f *excelize.File, boards []model.Leaderboard) error {
	if _, err := f.NewSheet(sheetLeaderboards); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	rowNum := 1
	writeRow := func(values ...interface{}) error {
		cell := fmt.Sprintf("A%d", rowNum)
		rowNum++
		return f.SetSheetRow(sheetLeaderboards, cell, &values)
	}

	for _, board := range boards {
		if err := writeRow(fmt.Sprintf("Top %s", board.GroupBy)); err != nil {
			return err
		}
		for _, entry := range board.Top {
			if err := writeRow(entry.Key, entry.Value); err != nil {
				return err
			}
		}
		if err := writeRow(fmt.Sprintf("Bottom %s", board.GroupBy)); err != nil {
			return err
		}
		for _, entry := range board.Bottom {
			if err := writeRow(entry.Key, entry.Value); err != nil {
				return err
			}
		}
		rowNum++
	}

	return nil
}

func healthLabel(flags model.FlagSet, kpiName string) string {
	flag, ok := kpiFlagNames[kpiName]
	if !ok {
		return ""
	}
	if flags[flag] {
		return "yes"
	}
	return "no"
}

// kpiFlagNames maps KPI table rows to their health flags. KPIs without a
// generic flag (Mandays uses the capacity formula, UBO and Lines per DB have
// none) are left unmapped and render blank.
var kpiFlagNames = map[string]string{
	model.KPIRoutes:       model.FlagRoutes,
	model.KPICallage:      model.FlagCallage,
	model.KPIProductivity: model.FlagProductivity,
	model.KPILinesOutlet:  model.FlagLines,
	model.KPITPPerOutlet:  model.FlagTP,
	model.KPISecondary:    model.FlagSecondary,
}

package model

// KPI display names, in presentation order.
const (
	KPIManpower     = "Manpower"
	KPIMandays      = "Mandays"
	KPIRoutes       = "Unique Routes"
	KPICallage      = "Unique Callage"
	KPIProductivity = "Productivity"
	KPIUBO          = "UBO"
	KPILinesOutlet  = "Lines per Outlet"
	KPILinesDB      = "Lines per DB"
	KPITPPerOutlet  = "TP per Outlet"
	KPISecondary    = "Secondary INR"
)

// Flag names used by the health evaluator and the narrator.
const (
	FlagCallage      = "callage"
	FlagRoutes       = "routes"
	FlagProductivity = "productivity"
	FlagLines        = "lines"
	FlagTP           = "tp"
	FlagSecondary    = "secondary"
	FlagManday       = "manday"
)

// KPI is one actual/plan pair.
type KPI struct {
	Name   string  `json:"name"`
	Actual float64 `json:"actual"`
	Plan   float64 `json:"plan"`
}

// PercentAchieved returns actual/plan as a percentage. The second return is
// false when the plan is zero and the percentage is undefined; callers render
// a placeholder in that case.
func (k KPI) PercentAchieved() (float64, bool) {
	if k.Plan == 0 {
		return 0, false
	}
	return k.Actual / k.Plan * 100, true
}

// KPISet is the ordered KPI table for one evaluation pass.
type KPISet []KPI

// Get looks up a KPI by name.
func (s KPISet) Get(name string) (KPI, bool) {
	for _, k := range s {
		if k.Name == name {
			return k, true
		}
	}
	return KPI{}, false
}

// FlagSet maps flag name to health status.
type FlagSet map[string]bool

// Severity of a diagnostic finding.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Finding is one entry in the root-cause narrative. Code identifies the
// decision-tree terminal that produced it; Message is the display text.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

// Summary holds the headline cards shown above the KPI table.
type Summary struct {
	TotalManpowerPlan int     `json:"totalManpowerPlan"`
	VacantPositions   int     `json:"vacantPositions"`
	TotalSecondary    float64 `json:"totalSecondary"`
}

// AnalysisResult is the full output of one pipeline run. When NoData is true
// the selection matched no rows and nothing else is populated.
type AnalysisResult struct {
	NoData      bool      `json:"noData"`
	RowCount    int       `json:"rowCount"`
	Summary     Summary   `json:"summary"`
	KPIs        KPISet    `json:"kpis"`
	Flags       FlagSet   `json:"flags"`
	Diagnostics []Finding `json:"diagnostics"`
}

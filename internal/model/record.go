package model

// Hierarchy level names, top to bottom.
const (
	LevelDSM       = "DSM"
	LevelASE       = "ASE"
	LevelTerritory = "Territory"
)

// Canonical column keys of the source table.
// Parsers map raw headers onto these; the aggregator reads them to decide
// whether a metric column was present in the imported file.
const (
	ColDSM       = "DSM"
	ColASE       = "ASE"
	ColTerritory = "SO_Territory"

	ColManpowerPlan       = "Manpower Plan"
	ColManpowerActual     = "Manpower Actual"
	ColMandaysActual      = "Mandays Actual"
	ColRoutesPlan         = "Unique Routes Plan"
	ColRoutesActual       = "Unique Routes Actual"
	ColCallageActual      = "Unique Callage Actual"
	ColProductivityActual = "Productivity Actual"
	ColSecondaryPlan      = "Secondary INR Plan"
	ColSecondaryActual    = "Secondary INR Actual"
	ColUBOPlan            = "UBO Plan"
	ColUBOActual          = "UBO Actual"
	ColULSRetailer        = "ULS Retailer"
	ColULSDB              = "ULS DB"
	ColTPPerOutletPlan    = "TP per Outlet Plan"
	ColTPPerOutletActual  = "TP per Outlet Actual"
)

// Record is one row of the sales dataset.
type Record struct {
	DSM       string `json:"dsm"`
	ASE       string `json:"ase"`
	Territory string `json:"territory"`

	ManpowerPlan       float64 `json:"manpowerPlan"`
	ManpowerActual     float64 `json:"manpowerActual"`
	MandaysActual      float64 `json:"mandaysActual"`
	RoutesPlan         float64 `json:"routesPlan"`
	RoutesActual       float64 `json:"routesActual"`
	CallageActual      float64 `json:"callageActual"`
	ProductivityActual float64 `json:"productivityActual"`
	SecondaryPlan      float64 `json:"secondaryPlan"`
	SecondaryActual    float64 `json:"secondaryActual"`
	UBOPlan            float64 `json:"uboPlan"`
	UBOActual          float64 `json:"uboActual"`
	ULSRetailer        float64 `json:"ulsRetailer"`
	ULSDB              float64 `json:"ulsDB"`
	TPPerOutletPlan    float64 `json:"tpPerOutletPlan"`
	TPPerOutletActual  float64 `json:"tpPerOutletActual"`
}

// HierarchyValue returns the record's value for a hierarchy level.
func (r *Record) HierarchyValue(level string) string {
	switch level {
	case LevelDSM:
		return r.DSM
	case LevelASE:
		return r.ASE
	case LevelTerritory:
		return r.Territory
	}
	return ""
}

// Dataset is the imported table plus the set of columns the source file
// actually carried. Absent metric columns aggregate to zero; the column set
// lets mean-based metrics distinguish "column missing" from "all zeros".
type Dataset struct {
	Records []Record        `json:"records"`
	Columns map[string]bool `json:"columns"`
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{Columns: make(map[string]bool)}
}

// HasColumn reports whether the source file carried the given column.
func (d *Dataset) HasColumn(col string) bool {
	return d.Columns[col]
}

// Selection is the active drill-down state. An empty string means "all" at
// that level.
type Selection struct {
	DSM       string `json:"dsm"`
	ASE       string `json:"ase"`
	Territory string `json:"territory"`
}

// IsAll reports whether no level is restricted.
func (s Selection) IsAll() bool {
	return s.DSM == "" && s.ASE == "" && s.Territory == ""
}

// Matches reports whether a record satisfies every restricted level.
func (s Selection) Matches(r *Record) bool {
	if s.DSM != "" && r.DSM != s.DSM {
		return false
	}
	if s.ASE != "" && r.ASE != s.ASE {
		return false
	}
	if s.Territory != "" && r.Territory != s.Territory {
		return false
	}
	return true
}

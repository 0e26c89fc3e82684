package parser

import (
	"strings"

	"salespulse/internal/model"
)

// hierarchyField maps a canonical column to a Record string field.
type hierarchyField struct {
	col string
	set func(r *model.Record, v string)
}

// metricField maps a canonical column to a Record numeric field.
type metricField struct {
	col string
	set func(r *model.Record, v float64)
}

// Header aliases are matched after normalization (lowercase, underscores to
// spaces, collapsed whitespace), so "SO_Territory", "so territory" and
// "SO  TERRITORY" all resolve to the same field.
var hierarchyFields = map[string]hierarchyField{
	"dsm":          {model.ColDSM, func(r *model.Record, v string) { r.DSM = v }},
	"ase":          {model.ColASE, func(r *model.Record, v string) { r.ASE = v }},
	"so territory": {model.ColTerritory, func(r *model.Record, v string) { r.Territory = v }},
	"territory":    {model.ColTerritory, func(r *model.Record, v string) { r.Territory = v }},
}

var metricFields = map[string]metricField{
	"manpower plan":         {model.ColManpowerPlan, func(r *model.Record, v float64) { r.ManpowerPlan = v }},
	"manpower actual":       {model.ColManpowerActual, func(r *model.Record, v float64) { r.ManpowerActual = v }},
	"mandays actual":        {model.ColMandaysActual, func(r *model.Record, v float64) { r.MandaysActual = v }},
	"unique routes plan":    {model.ColRoutesPlan, func(r *model.Record, v float64) { r.RoutesPlan = v }},
	"unique routes actual":  {model.ColRoutesActual, func(r *model.Record, v float64) { r.RoutesActual = v }},
	"unique callage actual": {model.ColCallageActual, func(r *model.Record, v float64) { r.CallageActual = v }},
	"productivity actual":   {model.ColProductivityActual, func(r *model.Record, v float64) { r.ProductivityActual = v }},
	"secondary inr plan":    {model.ColSecondaryPlan, func(r *model.Record, v float64) { r.SecondaryPlan = v }},
	"secondary inr actual":  {model.ColSecondaryActual, func(r *model.Record, v float64) { r.SecondaryActual = v }},
	"ubo plan":              {model.ColUBOPlan, func(r *model.Record, v float64) { r.UBOPlan = v }},
	"ubo actual":            {model.ColUBOActual, func(r *model.Record, v float64) { r.UBOActual = v }},
	"uls retailer":          {model.ColULSRetailer, func(r *model.Record, v float64) { r.ULSRetailer = v }},
	"uls db":                {model.ColULSDB, func(r *model.Record, v float64) { r.ULSDB = v }},
	"tp per outlet plan":    {model.ColTPPerOutletPlan, func(r *model.Record, v float64) { r.TPPerOutletPlan = v }},
	"tp per outlet actual":  {model.ColTPPerOutletActual, func(r *model.Record, v float64) { r.TPPerOutletActual = v }},
}

// columnMapping binds a column index in the source table to a Record field.
type columnMapping struct {
	index     int
	col       string
	setString func(r *model.Record, v string)
	setFloat  func(r *model.Record, v float64)
}

// MapHeaders resolves a header row to column mappings. Unknown headers are
// ignored; the dataset simply does not carry those columns.
func MapHeaders(headers []string) []columnMapping {
	mappings := make([]columnMapping, 0, len(headers))
	for i, h := range headers {
		key := NormalizeHeader(h)
		if f, ok := hierarchyFields[key]; ok {
			mappings = append(mappings, columnMapping{index: i, col: f.col, setString: f.set})
			continue
		}
		if f, ok := metricFields[key]; ok {
			mappings = append(mappings, columnMapping{index: i, col: f.col, setFloat: f.set})
		}
	}
	return mappings
}

// NormalizeHeader canonicalizes a raw header cell for alias lookup.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}

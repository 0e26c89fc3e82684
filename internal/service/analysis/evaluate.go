package analysis

import (
	"salespulse/internal/config"
	"salespulse/internal/model"
)

// IsHealthy reports whether an actual meets the threshold share of its plan.
// A zero-plan KPI is never healthy: with no target there is nothing to have
// achieved, and reporting green on a missing plan would hide bad data.
func IsHealthy(actual, plan, threshold float64) bool {
	if plan == 0 {
		return false
	}
	return actual >= threshold*plan
}

// Evaluate derives the per-KPI health flags from the KPI table.
//
// The manday flag has its own formula: mandays are judged as capacity
// consumed against planned headcount times the manday norm, not as a generic
// target-achieved ratio.
func Evaluate(kpis model.KPISet, cfg config.AnalysisConfig) model.FlagSet {
	get := func(name string) model.KPI {
		k, _ := kpis.Get(name)
		return k
	}

	callage := get(model.KPICallage)
	routes := get(model.KPIRoutes)
	productivity := get(model.KPIProductivity)
	lines := get(model.KPILinesOutlet)
	tp := get(model.KPITPPerOutlet)
	secondary := get(model.KPISecondary)
	manpower := get(model.KPIManpower)
	mandays := get(model.KPIMandays)

	flags := model.FlagSet{
		model.FlagCallage:      IsHealthy(callage.Actual, callage.Plan, cfg.Threshold),
		model.FlagRoutes:       IsHealthy(routes.Actual, routes.Plan, cfg.Threshold),
		model.FlagProductivity: IsHealthy(productivity.Actual, productivity.Plan, cfg.Threshold),
		model.FlagLines:        IsHealthy(lines.Actual, lines.Plan, cfg.Threshold),
		model.FlagTP:           IsHealthy(tp.Actual, tp.Plan, cfg.Threshold),
		model.FlagSecondary:    IsHealthy(secondary.Actual, secondary.Plan, cfg.Threshold),
	}

	flags[model.FlagManday] = manpower.Plan > 0 && mandays.Actual >= manpower.Plan*cfg.MandayNorm

	return flags
}

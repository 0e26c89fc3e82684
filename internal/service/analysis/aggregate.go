package analysis

import (
	"salespulse/internal/config"
	"salespulse/internal/model"
)

// kpiInputs holds the raw sums and derived values for one evaluation pass.
type kpiInputs struct {
	mpActual      float64
	mpPlan        float64
	mandaysActual float64
	mandaysPlan   float64
	routesActual  float64
	routesPlan    float64
	callageActual float64
	callagePlan   float64
	prodActual    float64
	prodPlan      float64
	secActual     float64
	secPlan       float64
	uboActual     float64
	uboPlan       float64
	ulsRetailer   float64
	ulsDB         float64
	tpActual      float64
	tpPlan        float64

	linesPerOutletActual float64
	linesPerDBActual     float64
	linesPerAverage      float64
	ulsDBPlan            float64
	linesPerOutletPlan   float64
	linesPerAveragePlan  float64

	hasManpowerActual bool
}

// computeInputs aggregates a filtered subset into the values every KPI needs.
// Metric columns absent from the source file contribute zero; ratios with a
// zero denominator fall back to zero.
func computeInputs(ds *model.Dataset, records []model.Record, cfg config.AnalysisConfig) kpiInputs {
	sumIf := func(col string, get func(*model.Record) float64) float64 {
		if !ds.HasColumn(col) {
			return 0
		}
		var total float64
		for i := range records {
			total += get(&records[i])
		}
		return total
	}
	meanIf := func(col string, get func(*model.Record) float64) float64 {
		if !ds.HasColumn(col) || len(records) == 0 {
			return 0
		}
		var total float64
		for i := range records {
			total += get(&records[i])
		}
		return total / float64(len(records))
	}

	in := kpiInputs{
		mpActual:      sumIf(model.ColManpowerActual, func(r *model.Record) float64 { return r.ManpowerActual }),
		mpPlan:        sumIf(model.ColManpowerPlan, func(r *model.Record) float64 { return r.ManpowerPlan }),
		mandaysActual: sumIf(model.ColMandaysActual, func(r *model.Record) float64 { return r.MandaysActual }),
		routesActual:  sumIf(model.ColRoutesActual, func(r *model.Record) float64 { return r.RoutesActual }),
		routesPlan:    sumIf(model.ColRoutesPlan, func(r *model.Record) float64 { return r.RoutesPlan }),
		callageActual: sumIf(model.ColCallageActual, func(r *model.Record) float64 { return r.CallageActual }),
		prodActual:    sumIf(model.ColProductivityActual, func(r *model.Record) float64 { return r.ProductivityActual }),
		secActual:     sumIf(model.ColSecondaryActual, func(r *model.Record) float64 { return r.SecondaryActual }),
		secPlan:       sumIf(model.ColSecondaryPlan, func(r *model.Record) float64 { return r.SecondaryPlan }),
		uboActual:     sumIf(model.ColUBOActual, func(r *model.Record) float64 { return r.UBOActual }),
		uboPlan:       sumIf(model.ColUBOPlan, func(r *model.Record) float64 { return r.UBOPlan }),
		ulsRetailer:   sumIf(model.ColULSRetailer, func(r *model.Record) float64 { return r.ULSRetailer }),
		ulsDB:         sumIf(model.ColULSDB, func(r *model.Record) float64 { return r.ULSDB }),

		// TP per Outlet is an intensity metric, averaged rather than summed.
		tpActual: meanIf(model.ColTPPerOutletActual, func(r *model.Record) float64 { return r.TPPerOutletActual }),
		tpPlan:   meanIf(model.ColTPPerOutletPlan, func(r *model.Record) float64 { return r.TPPerOutletPlan }),

		hasManpowerActual: ds.HasColumn(model.ColManpowerActual),
	}

	// Derived actuals.
	if in.uboActual > 0 {
		in.linesPerOutletActual = in.ulsRetailer / in.uboActual
		in.linesPerDBActual = in.ulsDB / in.uboActual
	}
	in.linesPerAverage = (in.linesPerOutletActual + in.linesPerDBActual) / 2

	// Derived plans. Higher-level plan quantities imply lower-level targets.
	in.mandaysPlan = in.mpPlan * cfg.MandayNorm
	in.callagePlan = in.routesPlan * cfg.CallsPerRoute
	in.prodPlan = in.callagePlan * cfg.ProductivityRate

	// The lines plan is pegged to the current lines-per-DB actual ratio: the
	// target is "hold the current mix". Kept as the product defines it; see
	// DESIGN.md for the open question on making this an independent input.
	if in.uboActual > 0 {
		in.ulsDBPlan = in.linesPerDBActual
	}
	in.linesPerOutletPlan = in.ulsDBPlan * 0.8
	in.linesPerAveragePlan = (in.linesPerOutletPlan + in.ulsDBPlan) / 2

	return in
}

// buildKPISet lays out the KPI overview table in presentation order.
func buildKPISet(in kpiInputs) model.KPISet {
	return model.KPISet{
		{Name: model.KPIManpower, Actual: in.mpActual, Plan: in.mpPlan},
		{Name: model.KPIMandays, Actual: in.mandaysActual, Plan: in.mandaysPlan},
		{Name: model.KPIRoutes, Actual: in.routesActual, Plan: in.routesPlan},
		{Name: model.KPICallage, Actual: in.callageActual, Plan: in.callagePlan},
		{Name: model.KPIProductivity, Actual: in.prodActual, Plan: in.prodPlan},
		{Name: model.KPIUBO, Actual: in.uboActual, Plan: in.uboPlan},
		{Name: model.KPILinesOutlet, Actual: in.linesPerAverage, Plan: in.linesPerAveragePlan},
		{Name: model.KPILinesDB, Actual: in.linesPerDBActual, Plan: in.linesPerOutletPlan},
		{Name: model.KPITPPerOutlet, Actual: in.tpActual, Plan: in.tpPlan},
		{Name: model.KPISecondary, Actual: in.secActual, Plan: in.secPlan},
	}
}

// buildSummary fills the headline cards.
func buildSummary(in kpiInputs) model.Summary {
	s := model.Summary{
		TotalManpowerPlan: int(in.mpPlan),
		TotalSecondary:    in.secActual,
	}
	if in.hasManpowerActual {
		s.VacantPositions = int(in.mpPlan) - int(in.mpActual)
	}
	return s
}

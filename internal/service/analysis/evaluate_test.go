package analysis

import (
	"testing"

	"salespulse/internal/model"
)

func TestIsHealthy(t *testing.T) {
	tests := []struct {
		name      string
		actual    float64
		plan      float64
		threshold float64
		expected  bool
	}{
		{"above threshold", 95, 100, 0.9, true},
		{"exactly at threshold", 90, 100, 0.9, true},
		{"just below threshold", 89.999, 100, 0.9, false},
		{"zero plan never healthy", 1000, 0, 0.9, false},
		{"zero plan zero actual", 0, 0, 0.9, false},
		{"zero actual with plan", 0, 100, 0.9, false},
		{"full achievement", 100, 100, 0.9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHealthy(tt.actual, tt.plan, tt.threshold); got != tt.expected {
				t.Errorf("IsHealthy(%v, %v, %v) = %v, want %v", tt.actual, tt.plan, tt.threshold, got, tt.expected)
			}
		})
	}
}

func TestEvaluateFlags(t *testing.T) {
	kpis := model.KPISet{
		{Name: model.KPIManpower, Actual: 8, Plan: 10},
		{Name: model.KPIMandays, Actual: 240, Plan: 240},
		{Name: model.KPIRoutes, Actual: 95, Plan: 100},
		{Name: model.KPICallage, Actual: 3000, Plan: 4000},
		{Name: model.KPIProductivity, Actual: 3000, Plan: 3200},
		{Name: model.KPILinesOutlet, Actual: 2.5, Plan: 1.8},
		{Name: model.KPITPPerOutlet, Actual: 100, Plan: 200},
		{Name: model.KPISecondary, Actual: 10, Plan: 50},
	}

	flags := Evaluate(kpis, testConfig())

	expected := map[string]bool{
		model.FlagRoutes:       true,  // 95 >= 90
		model.FlagCallage:      false, // 3000 < 3600
		model.FlagProductivity: true,  // 3000 >= 2880
		model.FlagLines:        true,  // 2.5 >= 1.62
		model.FlagTP:           false, // 100 < 180
		model.FlagSecondary:    false, // 10 < 45
		model.FlagManday:       true,  // 240 >= 10*24
	}
	for name, want := range expected {
		if flags[name] != want {
			t.Errorf("flag %q = %v, want %v", name, flags[name], want)
		}
	}
}

// A zero secondary plan keeps the flag down no matter how large the actual.
func TestEvaluateZeroPlanSecondary(t *testing.T) {
	kpis := model.KPISet{
		{Name: model.KPISecondary, Actual: 1000, Plan: 0},
	}

	flags := Evaluate(kpis, testConfig())

	if flags[model.FlagSecondary] {
		t.Error("secondary flag must be false when the plan is zero")
	}
}

func TestMandayFlag(t *testing.T) {
	tests := []struct {
		name          string
		mandaysActual float64
		manpowerPlan  float64
		expected      bool
	}{
		{"fully utilized", 240, 10, true},
		{"over utilized", 300, 10, true},
		{"under utilized", 239, 10, false},
		{"no manpower plan", 240, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kpis := model.KPISet{
				{Name: model.KPIManpower, Actual: 0, Plan: tt.manpowerPlan},
				{Name: model.KPIMandays, Actual: tt.mandaysActual, Plan: tt.manpowerPlan * 24},
			}
			flags := Evaluate(kpis, testConfig())
			if flags[model.FlagManday] != tt.expected {
				t.Errorf("manday flag = %v, want %v", flags[model.FlagManday], tt.expected)
			}
		})
	}
}

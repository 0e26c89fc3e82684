package analysis

import (
	"salespulse/internal/config"
	"salespulse/internal/model"
)

// Analyzer runs the evaluation pipeline over an immutable dataset snapshot.
// The snapshot is injected at construction; nothing here reads global state
// or mutates the records. Every call recomputes in full.
type Analyzer struct {
	dataset *model.Dataset
	cfg     config.AnalysisConfig
}

// NewAnalyzer creates an analyzer over a loaded dataset.
func NewAnalyzer(dataset *model.Dataset, cfg config.AnalysisConfig) *Analyzer {
	return &Analyzer{dataset: dataset, cfg: cfg}
}

// Analyze runs filter → aggregate → evaluate → narrate for one selection.
// A selection matching no rows yields the terminal NoData result with no
// KPIs computed.
func (a *Analyzer) Analyze(sel model.Selection) *model.AnalysisResult {
	subset := Apply(a.dataset.Records, sel)
	if len(subset) == 0 {
		return &model.AnalysisResult{NoData: true}
	}

	in := computeInputs(a.dataset, subset, a.cfg)
	kpis := buildKPISet(in)
	flags := Evaluate(kpis, a.cfg)

	return &model.AnalysisResult{
		RowCount:    len(subset),
		Summary:     buildSummary(in),
		KPIs:        kpis,
		Flags:       flags,
		Diagnostics: Narrate(flags),
	}
}

// Candidates returns the drill-down choices for every hierarchy level under
// the current selection.
func (a *Analyzer) Candidates(sel model.Selection) map[string][]string {
	records := a.dataset.Records
	return map[string][]string{
		model.LevelDSM:       CandidatesFor(records, model.LevelDSM, sel),
		model.LevelASE:       CandidatesFor(records, model.LevelASE, sel),
		model.LevelTerritory: CandidatesFor(records, model.LevelTerritory, sel),
	}
}

// Leaderboards ranks the full dataset by ASE and by territory.
func (a *Analyzer) Leaderboards() []model.Leaderboard {
	return []model.Leaderboard{
		Rank(a.dataset.Records, model.LevelASE, a.cfg.TopN, a.cfg.BottomN),
		Rank(a.dataset.Records, model.LevelTerritory, a.cfg.TopN, a.cfg.BottomN),
	}
}

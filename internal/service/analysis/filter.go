package analysis

import (
	"sort"

	"salespulse/internal/model"
)

// CandidatesFor returns the sorted distinct non-empty values for a hierarchy
// level, restricted by the levels chosen above it. Territory candidates are
// always computed, falling back to the full dataset when no upper level is
// restricted; territory selection is not gated on a specific ASE.
func CandidatesFor(records []model.Record, level string, sel model.Selection) []string {
	restrict := model.Selection{}
	switch level {
	case model.LevelDSM:
		// Top level, never restricted.
	case model.LevelASE:
		restrict.DSM = sel.DSM
	case model.LevelTerritory:
		restrict.DSM = sel.DSM
		restrict.ASE = sel.ASE
	default:
		return nil
	}

	seen := make(map[string]bool)
	for i := range records {
		r := &records[i]
		if !restrict.Matches(r) {
			continue
		}
		v := r.HierarchyValue(level)
		if v == "" {
			continue
		}
		seen[v] = true
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Apply returns the subset of records matching every restricted level of the
// selection. The source slice is never mutated. An empty result is the
// caller's terminal no-data case.
func Apply(records []model.Record, sel model.Selection) []model.Record {
	out := make([]model.Record, 0, len(records))
	for i := range records {
		if sel.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

package analysis

import (
	"sort"

	"salespulse/internal/model"
)

// Rank groups the full dataset by a hierarchy level, sums secondary revenue
// per group, and extracts the top and bottom slices in descending order.
// Leaderboards are always global context: they read the unfiltered dataset
// regardless of the active drill-down. A dataset with fewer groups than
// bottomN yields a shorter bottom list, never padding.
func Rank(records []model.Record, level string, topN, bottomN int) model.Leaderboard {
	sums := make(map[string]float64)
	for i := range records {
		key := records[i].HierarchyValue(level)
		if key == "" {
			continue
		}
		sums[key] += records[i].SecondaryActual
	}

	entries := make([]model.LeaderboardEntry, 0, len(sums))
	for key, value := range sums {
		entries = append(entries, model.LeaderboardEntry{Key: key, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Key < entries[j].Key
	})

	if topN > len(entries) {
		topN = len(entries)
	}
	if bottomN > len(entries) {
		bottomN = len(entries)
	}
	if topN < 0 {
		topN = 0
	}
	if bottomN < 0 {
		bottomN = 0
	}

	board := model.Leaderboard{GroupBy: level}
	board.Top = append(board.Top, entries[:topN]...)
	board.Bottom = append(board.Bottom, entries[len(entries)-bottomN:]...)
	return board
}

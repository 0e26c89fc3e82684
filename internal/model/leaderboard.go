package model

// LeaderboardEntry is one ranked group with its summed metric value.
type LeaderboardEntry struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Leaderboard holds the top and bottom slices for one grouping dimension.
// Both slices are in descending metric order; Bottom may be shorter than the
// requested size when the dataset has fewer groups.
type Leaderboard struct {
	GroupBy string             `json:"groupBy"`
	Top     []LeaderboardEntry `json:"top"`
	Bottom  []LeaderboardEntry `json:"bottom"`
}

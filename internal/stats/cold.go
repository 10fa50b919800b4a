package stats

import (
	"sort"

	"github.com/verte-zerg/ballfreq/internal/model"
)

// ColdNumbers returns the n least-drawn entries, least first. Ties are broken
// by the lower number.
func ColdNumbers(ds model.Dataset, n int) []model.RankedEntry {
	ranked := Rank(ds)
	if len(ranked) == 0 || n <= 0 {
		return nil
	}
	candidates := make([]model.RankedEntry, len(ranked))
	copy(candidates, ranked)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DrawCount == candidates[j].DrawCount {
			return candidates[i].Number < candidates[j].Number
		}
		return candidates[i].DrawCount < candidates[j].DrawCount
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

// Package stats contains frequency ranking, lookup, and reporting.
package stats

import (
	"sort"

	"github.com/verte-zerg/ballfreq/internal/model"
)

// Rank orders rankable records by draw count, highest first. Ties keep CSV
// order. Records without a number or count are excluded.
func Rank(ds model.Dataset) []model.RankedEntry {
	entries := make([]model.RankedEntry, 0, len(ds.Records))
	for i, rec := range ds.Records {
		if !rec.HasNumber || !rec.HasCount {
			continue
		}
		entries = append(entries, model.RankedEntry{
			Number:    rec.Number,
			DrawCount: rec.DrawCount,
			Record:    i,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DrawCount > entries[j].DrawCount
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// RankOf returns the ranked entry of the record Lookup reports for number,
// which is the first record in CSV order carrying that number.
func RankOf(ds model.Dataset, number int) (model.RankedEntry, bool) {
	idx := firstRecord(ds, number)
	if idx < 0 {
		return model.RankedEntry{}, false
	}
	for _, entry := range Rank(ds) {
		if entry.Record == idx {
			return entry, true
		}
	}
	return model.RankedEntry{}, false
}

func firstRecord(ds model.Dataset, number int) int {
	for i, rec := range ds.Records {
		if rec.HasNumber && rec.Number == number {
			return i
		}
	}
	return -1
}

// TopNumbers returns the numbers of the first n ranked entries.
func TopNumbers(ds model.Dataset, n int) []int {
	if n <= 0 {
		return nil
	}
	ranked := Rank(ds)
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]int, 0, n)
	for _, entry := range ranked[:n] {
		out = append(out, entry.Number)
	}
	return out
}

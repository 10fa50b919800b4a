// Package generator builds quick-pick ball selections.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/ballfreq/internal/model"
	"github.com/verte-zerg/ballfreq/internal/stats"
)

// MainPicks is the number of main balls on a ticket.
const MainPicks = 5

// Pick is a full ticket: five distinct main numbers and one Powerball.
type Pick struct {
	Main      []int
	Powerball int
}

// Generator produces randomized picks.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// QuickPick selects numbers uniformly.
func (g *Generator) QuickPick() Pick {
	return Pick{
		Main:      g.distinct(uniformWeights(model.Main.MaxNumber()), MainPicks),
		Powerball: g.distinct(uniformWeights(model.Powerball.MaxNumber()), 1)[0],
	}
}

// HotPick biases selection toward frequently drawn numbers. Each number
// weighs 1 + factor*share, where share is its draw count over the dataset
// maximum. Missing datasets fall back to uniform weights.
func (g *Generator) HotPick(mainDS, powerballDS model.Dataset, factor float64) Pick {
	return Pick{
		Main:      g.distinct(hotWeights(mainDS, model.Main, factor), MainPicks),
		Powerball: g.distinct(hotWeights(powerballDS, model.Powerball, factor), 1)[0],
	}
}

func uniformWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}

func hotWeights(ds model.Dataset, bt model.BallType, factor float64) []float64 {
	weights := uniformWeights(bt.MaxNumber())
	if factor <= 0 {
		return weights
	}
	profile := stats.DrawProfile(model.Dataset{BallType: bt, Records: ds.Records})
	peak := 0.0
	for _, v := range profile {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return weights
	}
	for i := range weights {
		if i < len(profile) {
			weights[i] += factor * profile[i] / peak
		}
	}
	return weights
}

// distinct draws count numbers without replacement; weights[i] belongs to i+1.
func (g *Generator) distinct(weights []float64, count int) []int {
	weights = append([]float64(nil), weights...)
	result := make([]int, 0, count)
	for len(result) < count {
		total := 0.0
		for _, w := range weights {
			total += w
		}
		if total <= 0 {
			break
		}
		r := g.rnd.Float64() * total
		acc := 0.0
		idx := -1
		for j, w := range weights {
			if w <= 0 {
				continue
			}
			idx = j
			acc += w
			if r < acc {
				break
			}
		}
		result = append(result, idx+1)
		weights[idx] = 0
	}
	return result
}

package stats

import (
	"github.com/verte-zerg/ballfreq/internal/model"
)

const defaultColdCount = 5

// Report contains precomputed data for rank rendering.
type Report struct {
	BallType  model.BallType
	Ranked    []model.RankedEntry
	Cold      []model.RankedEntry
	Profile   []float64
	Latest    model.LatestDate
	HasLatest bool
}

// BuildReport derives every rank view for one dataset.
func BuildReport(ds model.Dataset) Report {
	latest, ok := LatestDate(ds)
	return Report{
		BallType:  ds.BallType,
		Ranked:    Rank(ds),
		Cold:      ColdNumbers(ds, defaultColdCount),
		Profile:   DrawProfile(ds),
		Latest:    latest,
		HasLatest: ok,
	}
}

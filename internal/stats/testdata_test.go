package stats

import (
	"strings"

	"github.com/verte-zerg/ballfreq/internal/model"
)

func record(number, count int, date string) model.DrawRecord {
	return model.DrawRecord{
		Number:    number,
		HasNumber: true,
		DrawCount: count,
		HasCount:  true,
		DateDrawn: date,
	}
}

func sampleDataset() model.Dataset {
	return model.Dataset{
		BallType: model.Main,
		Records: []model.DrawRecord{
			record(7, 120, "2024-01-05"),
			record(13, 200, "2024-02-10"),
			record(42, 50, "2023-12-01"),
		},
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

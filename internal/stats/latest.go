package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/ballfreq/internal/model"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseDrawDate splits YYYY-MM-DD into integers without calendar parsing.
func ParseDrawDate(s string) (model.LatestDate, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return model.LatestDate{}, false
	}
	var vals [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return model.LatestDate{}, false
		}
		vals[i] = n
	}
	return model.LatestDate{Year: vals[0], Month: vals[1], Day: vals[2]}, true
}

// LatestDate returns the record date with the highest compare key. The first
// record in CSV order wins a tie.
func LatestDate(ds model.Dataset) (model.LatestDate, bool) {
	var (
		best  model.LatestDate
		found bool
	)
	for _, rec := range ds.Records {
		if rec.DateDrawn == "" {
			continue
		}
		d, ok := ParseDrawDate(rec.DateDrawn)
		if !ok {
			continue
		}
		if !found || d.CompareKey() > best.CompareKey() {
			best = d
			found = true
		}
	}
	return best, found
}

// OverallLatest picks the later of two optional dates; a wins a tie.
func OverallLatest(a *model.LatestDate, b *model.LatestDate) (model.LatestDate, bool) {
	switch {
	case a == nil && b == nil:
		return model.LatestDate{}, false
	case a == nil:
		return *b, true
	case b == nil:
		return *a, true
	case b.CompareKey() > a.CompareKey():
		return *b, true
	default:
		return *a, true
	}
}

// FormatDate renders "{MonthName} {day}, {year}".
func FormatDate(d model.LatestDate) string {
	month := strconv.Itoa(d.Month)
	if d.Month >= 1 && d.Month <= len(monthNames) {
		month = monthNames[d.Month-1]
	}
	return fmt.Sprintf("%s %d, %d", month, d.Day, d.Year)
}

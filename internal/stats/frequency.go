package stats

import (
	"fmt"

	"github.com/verte-zerg/ballfreq/internal/csvload"
	"github.com/verte-zerg/ballfreq/internal/model"
)

// Lookup finds the first record whose number equals n.
func Lookup(ds model.Dataset, n int) model.Frequency {
	idx := firstRecord(ds, n)
	if idx < 0 {
		return model.Frequency{Number: n}
	}
	rec := ds.Records[idx]
	return model.Frequency{
		Number:    n,
		DrawCount: rec.DrawCount,
		Found:     true,
		Available: rec.HasCount,
	}
}

// LookupText normalizes a textual number before lookup, so "13", " 13" and
// "013" all match a record numbered 13.
func LookupText(ds model.Dataset, s string) model.Frequency {
	n, ok := csvload.ParseInt(s)
	if !ok {
		return model.Frequency{}
	}
	return Lookup(ds, n)
}

// FrequencyParts splits the display text around the count so callers can
// emphasize it. emphasized is empty when there is no count to show.
func FrequencyParts(f model.Frequency) (prefix, emphasized, suffix string) {
	switch {
	case !f.Found:
		return "Frequency: N/A", "", ""
	case !f.Available:
		return "Frequency data unavailable", "", ""
	default:
		return "Drawn ", fmt.Sprintf("%d", f.DrawCount), " times"
	}
}

// FrequencyText renders the lookup result as plain text.
func FrequencyText(f model.Frequency) string {
	prefix, emphasized, suffix := FrequencyParts(f)
	return prefix + emphasized + suffix
}

package stats

import (
	"testing"

	"github.com/verte-zerg/ballfreq/internal/model"
)

func TestLookupPresentNumbers(t *testing.T) {
	ds := sampleDataset()
	for _, rec := range ds.Records {
		f := Lookup(ds, rec.Number)
		if !f.Found || !f.Available || f.DrawCount != rec.DrawCount {
			t.Fatalf("unexpected lookup for %d: %+v", rec.Number, f)
		}
	}
}

func TestLookupAbsentNumber(t *testing.T) {
	f := Lookup(sampleDataset(), 1)
	if f.Found {
		t.Fatalf("expected 1 to be absent")
	}
	if got := FrequencyText(f); got != "Frequency: N/A" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestLookupTextMatchesNumericForm(t *testing.T) {
	ds := sampleDataset()
	for _, query := range []string{"13", " 13", "013"} {
		f := LookupText(ds, query)
		if !f.Found || f.DrawCount != 200 {
			t.Fatalf("expected %q to match 13, got %+v", query, f)
		}
		if f != Lookup(ds, 13) {
			t.Fatalf("expected text and numeric lookups to agree for %q", query)
		}
	}
	if f := LookupText(ds, "thirteen"); f.Found {
		t.Fatalf("expected unparseable query to miss")
	}
}

func TestFrequencyText(t *testing.T) {
	ds := sampleDataset()
	if got := FrequencyText(Lookup(ds, 13)); got != "Drawn 200 times" {
		t.Fatalf("unexpected text: %q", got)
	}
	prefix, count, suffix := FrequencyParts(Lookup(ds, 7))
	if prefix != "Drawn " || count != "120" || suffix != " times" {
		t.Fatalf("unexpected parts: %q %q %q", prefix, count, suffix)
	}
}

func TestFrequencyUnavailableCount(t *testing.T) {
	ds := model.Dataset{Records: []model.DrawRecord{{Number: 5, HasNumber: true}}}
	f := Lookup(ds, 5)
	if !f.Found || f.Available {
		t.Fatalf("expected found-but-unavailable, got %+v", f)
	}
	if got := FrequencyText(f); got != "Frequency data unavailable" {
		t.Fatalf("unexpected text: %q", got)
	}
}

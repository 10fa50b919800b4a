package stats

import (
	"testing"

	"github.com/verte-zerg/ballfreq/internal/model"
)

func TestLatestDate(t *testing.T) {
	got, ok := LatestDate(sampleDataset())
	if !ok {
		t.Fatalf("expected a latest date")
	}
	if got != (model.LatestDate{Year: 2024, Month: 2, Day: 10}) {
		t.Fatalf("unexpected latest date: %+v", got)
	}
	if s := FormatDate(got); s != "February 10, 2024" {
		t.Fatalf("unexpected format: %q", s)
	}
}

func TestLatestDateSkipsMalformed(t *testing.T) {
	ds := model.Dataset{Records: []model.DrawRecord{
		record(1, 1, "2025-13"),
		record(2, 1, "2025/01/01"),
		record(3, 1, "abcd-01-01"),
		record(4, 1, ""),
		record(5, 1, "2021-06-30"),
	}}
	got, ok := LatestDate(ds)
	if !ok || got.CompareKey() != 20210630 {
		t.Fatalf("expected only the valid date to count, got %+v ok=%v", got, ok)
	}
}

func TestLatestDateNone(t *testing.T) {
	if _, ok := LatestDate(model.Dataset{}); ok {
		t.Fatalf("expected no date for empty dataset")
	}
	ds := model.Dataset{Records: []model.DrawRecord{record(1, 1, "soon")}}
	if _, ok := LatestDate(ds); ok {
		t.Fatalf("expected no date when nothing parses")
	}
}

func TestParseDrawDateIgnoresCalendar(t *testing.T) {
	d, ok := ParseDrawDate("2023-02-31")
	if !ok || d.CompareKey() != 20230231 {
		t.Fatalf("expected impossible date to parse numerically, got %+v ok=%v", d, ok)
	}
}

func TestOverallLatest(t *testing.T) {
	a := model.LatestDate{Year: 2024, Month: 2, Day: 10}
	b := model.LatestDate{Year: 2024, Month: 3, Day: 1}

	ab, _ := OverallLatest(&a, &b)
	ba, _ := OverallLatest(&b, &a)
	if ab != b || ba != b {
		t.Fatalf("expected order-independent result, got %+v and %+v", ab, ba)
	}
	if got, ok := OverallLatest(&a, nil); !ok || got != a {
		t.Fatalf("expected single date to be returned")
	}
	if got, ok := OverallLatest(nil, &b); !ok || got != b {
		t.Fatalf("expected single date to be returned")
	}
	if _, ok := OverallLatest(nil, nil); ok {
		t.Fatalf("expected no date")
	}
}

func TestFormatDate(t *testing.T) {
	cases := map[model.LatestDate]string{
		{Year: 2023, Month: 1, Day: 5}:   "January 5, 2023",
		{Year: 2022, Month: 12, Day: 31}: "December 31, 2022",
		{Year: 2022, Month: 14, Day: 1}:  "14 1, 2022",
	}
	for d, want := range cases {
		if got := FormatDate(d); got != want {
			t.Fatalf("FormatDate(%+v) = %q, want %q", d, got, want)
		}
	}
}

package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/ballfreq/internal/model"
)

func TestBuildReport(t *testing.T) {
	report := BuildReport(sampleDataset())
	if len(report.Ranked) != 3 || report.Ranked[0].Number != 13 {
		t.Fatalf("unexpected ranking: %+v", report.Ranked)
	}
	if len(report.Profile) != 69 {
		t.Fatalf("expected profile for 69 numbers, got %d", len(report.Profile))
	}
	if report.Profile[12] != 200 || report.Profile[0] != 0 {
		t.Fatalf("unexpected profile values: %v", report.Profile[:13])
	}
	if !report.HasLatest || report.Latest.CompareKey() != 20240210 {
		t.Fatalf("unexpected latest: %+v", report.Latest)
	}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, BuildReport(sampleDataset()), 2, 0, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !containsAll(out, []string{"Ball frequencies (top 2 of 3)", "Rank", "13", "200", "Coldest: 42 (50)", "Profile: ", "Data as of February 10, 2024"}) {
		t.Fatalf("report missing expected segments:\n%s", out)
	}
	if strings.Contains(out, "   3  42") {
		t.Fatalf("expected table to stop at top 2:\n%s", out)
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, BuildReport(model.Dataset{BallType: model.Powerball}), 10, 0, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != "No powerball frequencies found.\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 5, 10}); got != " +@" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline([]float64{3, 3}); got != "++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

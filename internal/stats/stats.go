package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/ballfreq/internal/model"
)

const sparkChars = " .:-=+*#%@"

// DrawProfile returns draw counts indexed by number-1 for 1..MaxNumber.
// Numbers missing from the dataset count as zero.
func DrawProfile(ds model.Dataset) []float64 {
	out := make([]float64, ds.BallType.MaxNumber())
	for _, entry := range Rank(ds) {
		idx := entry.Number - 1
		if idx < 0 || idx >= len(out) || out[idx] != 0 {
			continue
		}
		out[idx] = float64(entry.DrawCount)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderReport prints the ranked table, cold numbers, and draw profile.
func RenderReport(w io.Writer, r Report, top, width int, useColor bool) error {
	label := r.BallType.Label()
	if len(r.Ranked) == 0 {
		_, err := fmt.Fprintf(w, "No %s frequencies found.\n", strings.ToLower(label))
		return err
	}
	if top <= 0 || top > len(r.Ranked) {
		top = len(r.Ranked)
	}
	if _, err := fmt.Fprintf(w, "%s frequencies (top %d of %d)\n", label, top, len(r.Ranked)); err != nil {
		return err
	}
	rows := make([][]string, 0, top)
	for _, entry := range r.Ranked[:top] {
		rows = append(rows, []string{
			fmt.Sprintf("%d", entry.Rank),
			fmt.Sprintf("%d", entry.Number),
			fmt.Sprintf("%d", entry.DrawCount),
		})
	}
	lines := formatTable([]string{"Rank", "Number", "Drawn"}, rows, map[int]bool{0: true, 1: true, 2: true})
	for i, line := range lines {
		if i == 0 && useColor {
			line = headerStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(r.Cold) > 0 {
		cold := make([]string, 0, len(r.Cold))
		for _, entry := range r.Cold {
			cold = append(cold, fmt.Sprintf("%d (%d)", entry.Number, entry.DrawCount))
		}
		if _, err := fmt.Fprintln(w, truncate("Coldest: "+strings.Join(cold, ", "), width)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, truncate("Profile: "+Sparkline(r.Profile), width)); err != nil {
		return err
	}
	if r.HasLatest {
		if _, err := fmt.Fprintf(w, "Data as of %s\n", FormatDate(r.Latest)); err != nil {
			return err
		}
	}
	return nil
}

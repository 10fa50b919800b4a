package csvload

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/ballfreq/internal/model"
)

// Parse converts CSV text into a Dataset. The first line is a header and is
// dropped. Fields are split on commas with no quote handling.
func Parse(ballType model.BallType, text string) model.Dataset {
	ds := model.Dataset{BallType: ballType}
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return ds
	}
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		ds.Records = append(ds.Records, parseRow(strings.Split(line, ",")))
	}
	return ds
}

func parseRow(fields []string) model.DrawRecord {
	var rec model.DrawRecord
	rec.Number, rec.HasNumber = ParseInt(fields[0])
	if len(fields) >= 2 {
		rec.DrawCount, rec.HasCount = ParseInt(fields[1])
	}
	if len(fields) >= 3 {
		rec.DateDrawn = strings.TrimSpace(fields[2])
	}
	return rec
}

// ParseInt parses a trimmed base-10 integer.
func ParseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

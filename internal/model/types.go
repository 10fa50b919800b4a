// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// BallType identifies which pool a number is drawn from.
type BallType string

const (
	// Main is the white-ball pool (1-69).
	Main BallType = "main"
	// Powerball is the red-ball pool (1-26).
	Powerball BallType = "powerball"
)

// BallTypes lists every ball type in display order.
var BallTypes = []BallType{Main, Powerball}

// ParseBallType resolves a user-provided ball type name.
func ParseBallType(s string) (BallType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "main", "ball", "white":
		return Main, nil
	case "powerball", "pb", "red":
		return Powerball, nil
	default:
		return "", fmt.Errorf("unknown ball type %q (expected main or powerball)", s)
	}
}

// MaxNumber returns the highest selectable number for the ball type.
func (b BallType) MaxNumber() int {
	if b == Powerball {
		return 26
	}
	return 69
}

// Label returns the human-facing name of the ball type.
func (b BallType) Label() string {
	if b == Powerball {
		return "Powerball"
	}
	return "Ball"
}

// DrawRecord is one parsed CSV row.
type DrawRecord struct {
	Number    int
	HasNumber bool
	DrawCount int
	HasCount  bool
	DateDrawn string
}

// Dataset is the ordered set of records for one ball type.
type Dataset struct {
	BallType BallType
	Records  []DrawRecord
}

// RankedEntry is a record positioned by draw count. Record is the index of
// the source record in the dataset.
type RankedEntry struct {
	Number    int
	DrawCount int
	Rank      int
	Record    int
}

// LatestDate is a plain year/month/day triple. No calendar validation is applied.
type LatestDate struct {
	Year  int
	Month int
	Day   int
}

// CompareKey orders dates as year*10000 + month*100 + day.
func (d LatestDate) CompareKey() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// Frequency is the outcome of a number lookup.
type Frequency struct {
	Number    int
	DrawCount int
	// Found reports whether any record matched the number.
	Found bool
	// Available is false when the matching record had no usable count.
	Available bool
}

// Config defines runtime settings.
type Config struct {
	MainSource      string
	PowerballSource string
	Timeout         time.Duration
	LogFile         string
	Verbose         bool
}

// SourceFor returns the configured source for the ball type.
func (c Config) SourceFor(b BallType) string {
	if b == Powerball {
		return c.PowerballSource
	}
	return c.MainSource
}

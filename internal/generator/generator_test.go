package generator

import (
	"testing"

	"github.com/verte-zerg/ballfreq/internal/model"
)

func assertValidPick(t *testing.T, p Pick) {
	t.Helper()
	if len(p.Main) != MainPicks {
		t.Fatalf("expected %d main numbers, got %v", MainPicks, p.Main)
	}
	seen := map[int]bool{}
	for _, n := range p.Main {
		if n < 1 || n > model.Main.MaxNumber() {
			t.Fatalf("main number out of range: %d", n)
		}
		if seen[n] {
			t.Fatalf("duplicate main number %d in %v", n, p.Main)
		}
		seen[n] = true
	}
	if p.Powerball < 1 || p.Powerball > model.Powerball.MaxNumber() {
		t.Fatalf("powerball out of range: %d", p.Powerball)
	}
}

func TestQuickPick(t *testing.T) {
	g := NewWithSeed(1)
	for i := 0; i < 200; i++ {
		assertValidPick(t, g.QuickPick())
	}
}

func TestQuickPickDeterministicSeed(t *testing.T) {
	a := NewWithSeed(42).QuickPick()
	b := NewWithSeed(42).QuickPick()
	if a.Powerball != b.Powerball {
		t.Fatalf("expected identical picks for identical seeds")
	}
	for i := range a.Main {
		if a.Main[i] != b.Main[i] {
			t.Fatalf("expected identical picks for identical seeds")
		}
	}
}

func TestHotPickFavorsFrequentNumbers(t *testing.T) {
	pb := model.Dataset{BallType: model.Powerball}
	for n := 1; n <= 26; n++ {
		count := 0
		if n == 7 {
			count = 1000
		}
		pb.Records = append(pb.Records, model.DrawRecord{Number: n, HasNumber: true, DrawCount: count, HasCount: true})
	}
	g := NewWithSeed(3)
	hits := 0
	const rounds = 500
	for i := 0; i < rounds; i++ {
		p := g.HotPick(model.Dataset{}, pb, 100)
		assertValidPick(t, p)
		if p.Powerball == 7 {
			hits++
		}
	}
	// Uniform odds would be about 1 in 26.
	if hits < rounds/2 {
		t.Fatalf("expected 7 to dominate hot picks, got %d/%d", hits, rounds)
	}
}

func TestHotPickWithoutDataIsUniform(t *testing.T) {
	g := NewWithSeed(9)
	for i := 0; i < 50; i++ {
		assertValidPick(t, g.HotPick(model.Dataset{}, model.Dataset{}, 2))
	}
}

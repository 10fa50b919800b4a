// Package selector models a ball's idle/editing lifecycle.
package selector

import "github.com/verte-zerg/ballfreq/internal/model"

// State is the selector's current mode.
type State int

const (
	// Idle shows the static number.
	Idle State = iota
	// Editing has the choice list open.
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "idle"
}

// Selector tracks one ball. The zero Number means nothing is displayed yet.
type Selector struct {
	ballType model.BallType
	state    State
	number   int
}

// New returns an idle selector showing number (0 for none).
func New(bt model.BallType, number int) *Selector {
	s := &Selector{ballType: bt}
	if number >= 1 && number <= bt.MaxNumber() {
		s.number = number
	}
	return s
}

// BallType returns the ball's pool.
func (s *Selector) BallType() model.BallType { return s.ballType }

// State returns the current mode.
func (s *Selector) State() State { return s.state }

// Number returns the displayed number and whether one is set.
func (s *Selector) Number() (int, bool) {
	return s.number, s.number != 0
}

// Activate opens the choice list. It returns the choices 1..MaxNumber and the
// index of the displayed number (0 when none is shown). It is a no-op while
// already editing.
func (s *Selector) Activate() (choices []int, selected int, ok bool) {
	if s.state == Editing {
		return nil, 0, false
	}
	limit := s.ballType.MaxNumber()
	choices = make([]int, limit)
	for i := range choices {
		choices[i] = i + 1
		if choices[i] == s.number {
			selected = i
		}
	}
	s.state = Editing
	return choices, selected, true
}

// Commit closes the choice list with n displayed. It reports whether the
// displayed number changed; committing the current number is a cancel.
func (s *Selector) Commit(n int) bool {
	if s.state != Editing {
		return false
	}
	s.state = Idle
	if n < 1 || n > s.ballType.MaxNumber() || n == s.number {
		return false
	}
	s.number = n
	return true
}

// Set displays n without going through the choice list, as a quick pick does.
func (s *Selector) Set(n int) bool {
	if s.state != Idle || n < 1 || n > s.ballType.MaxNumber() {
		return false
	}
	s.number = n
	return true
}

// Cancel closes the choice list and keeps the displayed number.
func (s *Selector) Cancel() {
	s.state = Idle
}

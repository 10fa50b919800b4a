// Package board binds the most-drawn numbers to fixed display slots.
package board

import (
	"go.uber.org/zap"

	"github.com/verte-zerg/ballfreq/internal/model"
	"github.com/verte-zerg/ballfreq/internal/session"
	"github.com/verte-zerg/ballfreq/internal/stats"
)

// MainSlots are the display slots for main balls, most drawn first.
var MainSlots = []string{
	"main1", "main2", "main3", "main4", "main5",
	"main65", "main66", "main67", "main68", "main69",
}

// PowerballSlots are the display slots for the Powerball, most drawn first.
var PowerballSlots = []string{
	"powerball1", "powerball2", "powerball3", "powerball4", "powerball5",
	"powerball22", "powerball23", "powerball24", "powerball25", "powerball26",
}

// SlotIDs returns the slot list for a ball type.
func SlotIDs(bt model.BallType) []string {
	if bt == model.Powerball {
		return PowerballSlots
	}
	return MainSlots
}

// Slot is one display position and its bound number.
type Slot struct {
	ID     string
	Number int
	Bound  bool
}

// Board holds slot bindings for both ball types.
type Board struct {
	logger *zap.Logger
	values map[string]int
}

// New returns a board with every slot unbound.
func New(logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{logger: logger, values: map[string]int{}}
}

// Assign binds ranked numbers to slots once both datasets are loaded. It
// returns false, touching nothing, while either dataset is outstanding.
func (b *Board) Assign(sess *session.Session) bool {
	if !sess.Ready() {
		b.logger.Info("waiting for datasets",
			zap.Stringer("main", sess.Status(model.Main)),
			zap.Stringer("powerball", sess.Status(model.Powerball)))
		return false
	}
	for _, bt := range model.BallTypes {
		ds, _ := sess.Dataset(bt)
		ids := SlotIDs(bt)
		top := stats.TopNumbers(ds, len(ids))
		for i, n := range top {
			b.values[ids[i]] = n
		}
		b.logger.Debug("slots assigned",
			zap.String("ball_type", string(bt)),
			zap.Int("bound", len(top)),
			zap.Int("slots", len(ids)))
	}
	return true
}

// Number returns the number bound to a slot.
func (b *Board) Number(id string) (int, bool) {
	n, ok := b.values[id]
	return n, ok
}

// Slots returns the slots for a ball type in display order.
func (b *Board) Slots(bt model.BallType) []Slot {
	ids := SlotIDs(bt)
	out := make([]Slot, 0, len(ids))
	for _, id := range ids {
		n, ok := b.values[id]
		out = append(out, Slot{ID: id, Number: n, Bound: ok})
	}
	return out
}

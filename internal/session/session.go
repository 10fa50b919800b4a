// Package session owns the datasets loaded during one app run.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/verte-zerg/ballfreq/internal/model"
)

// Status is the load state of one dataset.
type Status int

const (
	// Pending means the dataset has not finished loading.
	Pending Status = iota
	// Loaded means the dataset is available and immutable.
	Loaded
	// Failed means the load failed; it is not retried.
	Failed
)

func (s Status) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// ErrAlreadySet is returned when a dataset is stored or failed twice.
var ErrAlreadySet = errors.New("dataset already settled")

type slot struct {
	status  Status
	dataset model.Dataset
	err     error
}

// Session holds the main and Powerball datasets. Each is set exactly once.
type Session struct {
	mu    sync.RWMutex
	slots map[model.BallType]*slot
}

// New returns a session with both datasets pending.
func New() *Session {
	s := &Session{slots: map[model.BallType]*slot{}}
	for _, bt := range model.BallTypes {
		s.slots[bt] = &slot{}
	}
	return s
}

// SetDataset stores a loaded dataset.
func (s *Session) SetDataset(ds model.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.pendingSlot(ds.BallType)
	if err != nil {
		return err
	}
	records := make([]model.DrawRecord, len(ds.Records))
	copy(records, ds.Records)
	sl.dataset = model.Dataset{BallType: ds.BallType, Records: records}
	sl.status = Loaded
	return nil
}

// SetFailed records a terminal load failure.
func (s *Session) SetFailed(bt model.BallType, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.pendingSlot(bt)
	if err != nil {
		return err
	}
	sl.status = Failed
	sl.err = cause
	return nil
}

func (s *Session) pendingSlot(bt model.BallType) (*slot, error) {
	sl, ok := s.slots[bt]
	if !ok {
		return nil, fmt.Errorf("unknown ball type %q", bt)
	}
	if sl.status != Pending {
		return nil, fmt.Errorf("%s: %w", bt, ErrAlreadySet)
	}
	return sl, nil
}

// Dataset returns the dataset for bt when it has loaded. The returned
// records must not be modified.
func (s *Session) Dataset(bt model.BallType) (model.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.slots[bt]
	if !ok || sl.status != Loaded {
		return model.Dataset{BallType: bt}, false
	}
	return sl.dataset, true
}

// Status returns the load status for bt.
func (s *Session) Status(bt model.BallType) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[bt]; ok {
		return sl.status
	}
	return Pending
}

// Err returns the failure recorded for bt, if any.
func (s *Session) Err(bt model.BallType) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[bt]; ok {
		return sl.err
	}
	return nil
}

// Ready reports whether every dataset has loaded.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sl := range s.slots {
		if sl.status != Loaded {
			return false
		}
	}
	return true
}

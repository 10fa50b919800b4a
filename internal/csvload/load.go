package csvload

import (
	"context"
	"fmt"

	"github.com/verte-zerg/ballfreq/internal/model"
)

// TransportError reports a failed fetch for one dataset.
type TransportError struct {
	BallType model.BallType
	Source   string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to load %s dataset from %s: %v", e.BallType, e.Source, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Load fetches and parses the dataset for one ball type. It does not retry.
func Load(ctx context.Context, f Fetcher, ballType model.BallType, source string) (model.Dataset, error) {
	if source == "" {
		return model.Dataset{}, &TransportError{BallType: ballType, Source: source, Err: fmt.Errorf("source is empty")}
	}
	text, err := f.Fetch(ctx, source)
	if err != nil {
		return model.Dataset{}, &TransportError{BallType: ballType, Source: source, Err: err}
	}
	return Parse(ballType, text), nil
}

package odet

import "fmt"

// DefaultSmoothing is the weight given to each incoming loss value by the
// exponential moving average.
const DefaultSmoothing = 0.1

// ProgressUpdater converts raw training output into user-visible progress,
// folding each batch's loss into an exponentially smoothed accumulator.
//
// The smoothing recurrence is order-dependent: batches must arrive in
// strictly increasing iteration id order, one at a time. The serial
// delivery contract of combine guarantees this; concurrent invocation is
// not supported.
type ProgressUpdater struct {
	smoothing    float32
	smoothedLoss float32
	seeded       bool
}

// NewProgressUpdater returns an updater whose accumulator seeds itself
// with the first observed loss. A non-positive smoothing selects
// DefaultSmoothing.
func NewProgressUpdater(smoothing float32) *ProgressUpdater {
	if smoothing <= 0 {
		smoothing = DefaultSmoothing
	}
	return &ProgressUpdater{smoothing: smoothing}
}

// NewProgressUpdaterFrom returns an updater resuming from a previously
// smoothed loss value.
func NewProgressUpdaterFrom(smoothing, smoothedLoss float32) *ProgressUpdater {
	u := NewProgressUpdater(smoothing)
	u.smoothedLoss = smoothedLoss
	u.seeded = true
	return u
}

func (u *ProgressUpdater) Invoke(batch TrainingOutputBatch) (TrainingProgress, error) {
	loss, err := batch.Loss.Mean()
	if err != nil {
		return TrainingProgress{}, fmt.Errorf("odet: loss for batch %d: %w", batch.IterationID, err)
	}

	if !u.seeded {
		u.smoothedLoss = loss
		u.seeded = true
	} else {
		u.smoothedLoss = (1-u.smoothing)*u.smoothedLoss + u.smoothing*loss
	}

	return TrainingProgress{
		IterationID:  batch.IterationID,
		SmoothedLoss: u.smoothedLoss,
	}, nil
}

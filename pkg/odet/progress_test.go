package odet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/odflow/pkg/tensor"
)

func outputBatch(id int, loss float32) TrainingOutputBatch {
	return TrainingOutputBatch{IterationID: id, Loss: tensor.Scalar(loss)}
}

func TestProgressUpdater_SeedsWithFirstLoss(t *testing.T) {
	t.Parallel()
	u := NewProgressUpdater(0.5)

	p, err := u.Invoke(outputBatch(1, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, p.IterationID)
	assert.InDelta(t, 4, p.SmoothedLoss, 1e-6)

	p, err = u.Invoke(outputBatch(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, p.IterationID)
	assert.InDelta(t, 3, p.SmoothedLoss, 1e-6) // 0.5*4 + 0.5*2
}

func TestProgressUpdater_ResumesFromPriorState(t *testing.T) {
	t.Parallel()
	u := NewProgressUpdaterFrom(0.5, 10)

	p, err := u.Invoke(outputBatch(100, 2))
	require.NoError(t, err)
	assert.InDelta(t, 6, p.SmoothedLoss, 1e-6)
}

func TestProgressUpdater_Deterministic(t *testing.T) {
	t.Parallel()
	losses := []float32{3.2, 1.1, 2.7, 0.4, 0.9}

	run := func() []TrainingProgress {
		u := NewProgressUpdater(DefaultSmoothing)
		var out []TrainingProgress
		for i, loss := range losses {
			p, err := u.Invoke(outputBatch(i+1, loss))
			require.NoError(t, err)
			out = append(out, p)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestProgressUpdater_AveragesLossTensor(t *testing.T) {
	t.Parallel()
	u := NewProgressUpdater(DefaultSmoothing)
	loss, err := tensor.New([]int{4}, []float32{1, 2, 3, 4})
	require.NoError(t, err)

	p, err := u.Invoke(TrainingOutputBatch{IterationID: 1, Loss: loss})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, p.SmoothedLoss, 1e-6)
}

func TestProgressUpdater_EmptyLossFails(t *testing.T) {
	t.Parallel()
	u := NewProgressUpdater(DefaultSmoothing)

	_, err := u.Invoke(TrainingOutputBatch{IterationID: 3})
	assert.Error(t, err)
}

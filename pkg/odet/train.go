package odet

import (
	"context"
	"log"

	"github.com/ib-77/odflow/pkg/combine"
)

// TrainOptions are the knobs of one training run.
type TrainOptions struct {
	// Offset is the number of batches consumed by a prior run; iteration
	// numbering continues from it.
	Offset int

	// LogEvery logs smoothed progress every N steps. 0 selects the
	// default; negative disables logging.
	LogEvery int

	// CheckpointEvery requests a checkpoint every N completed steps and
	// hands it to OnCheckpoint. 0 disables periodic checkpoints.
	CheckpointEvery int

	// Smoothing is the progress EMA weight; non-positive selects
	// DefaultSmoothing.
	Smoothing float32

	// Policy resolves -1 config fields; nil selects DefaultPolicy.
	Policy Policy

	// OnProgress observes every TrainingProgress value, in order.
	OnProgress func(TrainingProgress)

	// OnCheckpoint receives periodic checkpoints. An error aborts the run.
	OnCheckpoint func(Checkpoint) error
}

const defaultLogEvery = 50

// Train drives the model's training pipeline against data for the
// configured number of iterations, one batch at a time: each step is fully
// processed, and any requested checkpoint taken, before the next batch is
// demanded. It returns the last observed progress value. The run ends
// early, without error, if the data source is exhausted; a stream failure
// or context cancellation aborts it with the corresponding error.
func Train(ctx context.Context, m *Model, data DataSource, opts TrainOptions) (TrainingProgress, error) {
	policy := opts.Policy
	if policy == nil {
		policy = DefaultPolicy{}
	}
	if opts.LogEvery == 0 {
		opts.LogEvery = defaultLogEvery
	}

	cfg := m.Config()
	batchSize := cfg.BatchSize
	if batchSize == -1 {
		batchSize = policy.BatchSize()
	}
	maxIterations := cfg.MaxIterations
	if maxIterations == -1 {
		maxIterations = policy.MaxIterations(numExamples(data), batchSize)
	}

	outputs := m.TrainingBatchPublisher(data, batchSize, opts.Offset)
	progress := combine.Map[TrainingOutputBatch, TrainingProgress](
		outputs, NewProgressUpdater(opts.Smoothing))

	run := &trainRun{
		ctx:           ctx,
		model:         m,
		opts:          opts,
		maxIterations: maxIterations,
	}
	progress.Subscribe(run)

	return run.last, run.err
}

func numExamples(data DataSource) int {
	if sized, ok := data.(SizedDataSource); ok {
		return sized.NumExamples()
	}
	return -1
}

// trainRun is the subscriber driving one run. It requests exactly one
// batch at a time, so the upstream never computes ahead of the consumer
// and checkpoints land on step boundaries.
type trainRun struct {
	ctx           context.Context
	model         *Model
	opts          TrainOptions
	maxIterations int

	sub   combine.Subscription
	steps int
	last  TrainingProgress
	err   error
}

func (r *trainRun) ReceiveSubscription(sub combine.Subscription) {
	r.sub = sub
	sub.Request(combine.DemandMax(1))
}

func (r *trainRun) Receive(p TrainingProgress) combine.Demand {
	if err := r.ctx.Err(); err != nil {
		r.err = err
		r.sub.Cancel()
		return combine.DemandNone
	}

	r.steps++
	r.last = p

	if r.opts.LogEvery > 0 && r.steps%r.opts.LogEvery == 0 {
		log.Printf("odet: iteration=%d smoothed_loss=%.4f", p.IterationID, p.SmoothedLoss)
	}
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(p)
	}

	if r.opts.CheckpointEvery > 0 && r.steps%r.opts.CheckpointEvery == 0 && r.opts.OnCheckpoint != nil {
		checkpoint, err := combine.First[Checkpoint](r.model.CheckpointPublisher())
		if err == nil {
			err = r.opts.OnCheckpoint(checkpoint)
		}
		if err != nil {
			r.err = err
			r.sub.Cancel()
			return combine.DemandNone
		}
	}

	if r.steps >= r.maxIterations {
		r.sub.Cancel()
		return combine.DemandNone
	}
	return combine.DemandMax(1)
}

func (r *trainRun) ReceiveCompletion(c combine.Completion) {
	if c.IsFailure() && r.err == nil {
		r.err = c.Failure()
	}
}

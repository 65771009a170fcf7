package odet

import "github.com/ib-77/odflow/pkg/combine"

// Model composes the model-agnostic front half of the training pipeline
// and delegates the model-specific back half to a Backend. It exclusively
// owns its augmenter; the backend is the single extension point for
// concrete detector architectures.
type Model struct {
	config      Config
	augmenter   *DataAugmenter
	backend     Backend
	checkpoints combine.Publisher[Checkpoint]
}

// NewModel validates the configuration and wires the augmenter and
// backend. Configuration inconsistency is rejected here, before any batch
// flows.
func NewModel(config Config, augmenter Augmenter, backend Backend) (*Model, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	m := &Model{
		config:    config,
		augmenter: NewDataAugmenter(augmenter),
		backend:   backend,
	}
	// A single shared publisher: it stays valid for subscribers that
	// outlive any particular training stream.
	m.checkpoints = combine.FromFunc(func() (Checkpoint, error) {
		weights, err := m.backend.ExportWeights()
		if err != nil {
			return Checkpoint{}, err
		}
		return Checkpoint{Config: m.config, Weights: weights}, nil
	})
	return m, nil
}

// Config returns the model's immutable configuration.
func (m *Model) Config() Config {
	return m.config
}

// TrainingBatchPublisher builds the full training stream: a DataIterator
// over data, chained through the augmenter, handed to the backend's
// encode+compute stage. offset shifts iteration numbering for resumed
// runs.
func (m *Model) TrainingBatchPublisher(data DataSource, batchSize, offset int) combine.Publisher[TrainingOutputBatch] {
	iterator := NewDataIterator(data, batchSize, offset)
	augmented := combine.Map[DataBatch, InputBatch](combine.FromIterator[DataBatch](iterator), m.augmenter)
	return m.backend.TrainingBatchPublisher(augmented)
}

// CheckpointPublisher returns the stream that, per unit of subscriber
// demand, snapshots the current configuration and weights. It is
// independent of any training stream and may be subscribed at any time.
func (m *Model) CheckpointPublisher() combine.Publisher[Checkpoint] {
	return m.checkpoints
}

package odet

import (
	"github.com/ib-77/odflow/pkg/combine"
	"github.com/ib-77/odflow/pkg/tensor"
)

// DataSource is the external annotated-image source the pipeline reads
// from. Next returns up to batchSize labeled images; calling Next when
// HasNext is false is undefined behavior of the source and a caller bug.
type DataSource interface {
	HasNext() bool
	Next(batchSize int) []LabeledImage
}

// SizedDataSource is implemented by sources that know their total example
// count. The iteration-count heuristic consumes it when available.
type SizedDataSource interface {
	DataSource
	NumExamples() int
}

// Augmenter is the external augmentation/resize engine. It consumes a
// batch of labeled images and returns one dense augmented-image tensor
// (batch x height x width x channel) aligned to the input ordering.
type Augmenter interface {
	Augment(examples []LabeledImage) (tensor.FloatArray, error)
}

// Backend is the model-specific half of the pipeline, supplied per
// concrete architecture. TrainingBatchPublisher encodes augmented inputs
// into the format its compute graph expects, runs one training step per
// batch, and emits the resulting loss, preserving iteration ids.
// ExportWeights returns a snapshot of the current weights; the snapshot
// must never expose a partially applied training step, even when requested
// concurrently with training.
type Backend interface {
	TrainingBatchPublisher(augmented combine.Publisher[InputBatch]) combine.Publisher[TrainingOutputBatch]
	ExportWeights() (map[string]tensor.FloatArray, error)
}

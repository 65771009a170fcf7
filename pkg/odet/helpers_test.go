package odet

import (
	"sync"

	"github.com/ib-77/odflow/pkg/combine"
	"github.com/ib-77/odflow/pkg/tensor"
)

// makeImages builds n labeled 4x4 RGB images, each with one annotation
// whose identifier is the image's index.
func makeImages(n int) []LabeledImage {
	images := make([]LabeledImage, n)
	for i := range images {
		images[i] = LabeledImage{
			Image: tensor.Zeros(4, 4, 3),
			Annotations: []Annotation{{
				Identifier: i,
				Confidence: 1,
				Box:        BoundingBox{X: 1, Y: 1, Width: 2, Height: 2},
			}},
		}
	}
	return images
}

// sliceSource serves labeled images from a slice, in order.
type sliceSource struct {
	images []LabeledImage
	pos    int
}

func (s *sliceSource) HasNext() bool {
	return s.pos < len(s.images)
}

func (s *sliceSource) Next(batchSize int) []LabeledImage {
	end := s.pos + batchSize
	if end > len(s.images) {
		end = len(s.images)
	}
	out := s.images[s.pos:end]
	s.pos = end
	return out
}

func (s *sliceSource) NumExamples() int {
	return len(s.images)
}

// stubAugmenter packs a batch into a fixed-size tensor, recording calls.
type stubAugmenter struct {
	calls int
	err   error
}

func (a *stubAugmenter) Augment(examples []LabeledImage) (tensor.FloatArray, error) {
	a.calls++
	if a.err != nil {
		return tensor.FloatArray{}, a.err
	}
	return tensor.Zeros(len(examples), 2, 2, 3), nil
}

// stubBackend encodes inputs into a label tensor shaped by cfg and counts
// completed training steps. The loss of step n is 1/n. Weights expose the
// step counter so tests can check snapshot consistency.
type stubBackend struct {
	cfg Config

	mu    sync.Mutex
	steps int
}

func (b *stubBackend) TrainingBatchPublisher(augmented combine.Publisher[InputBatch]) combine.Publisher[TrainingOutputBatch] {
	encode := combine.TransformFunc[InputBatch, EncodedInputBatch](func(in InputBatch) (EncodedInputBatch, error) {
		labels := tensor.Zeros(in.Images.Dim(0), b.cfg.OutputHeight, b.cfg.OutputWidth, b.cfg.NumClasses)
		return EncodedInputBatch{
			IterationID: in.IterationID,
			Images:      in.Images,
			Labels:      labels,
			Annotations: in.Annotations,
		}, nil
	})
	compute := combine.TransformFunc[EncodedInputBatch, TrainingOutputBatch](func(in EncodedInputBatch) (TrainingOutputBatch, error) {
		b.mu.Lock()
		b.steps++
		loss := float32(1) / float32(b.steps)
		b.mu.Unlock()
		return TrainingOutputBatch{
			IterationID: in.IterationID,
			Loss:        tensor.Scalar(loss),
		}, nil
	})
	return combine.Map[EncodedInputBatch, TrainingOutputBatch](
		combine.Map[InputBatch, EncodedInputBatch](augmented, encode), compute)
}

func (b *stubBackend) ExportWeights() (map[string]tensor.FloatArray, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return map[string]tensor.FloatArray{
		"steps": tensor.Scalar(float32(b.steps)),
	}, nil
}

func validConfig() Config {
	return Config{
		MaxIterations: -1,
		BatchSize:     -1,
		OutputHeight:  13,
		OutputWidth:   13,
		NumClasses:    2,
	}
}

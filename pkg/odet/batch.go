package odet

import "github.com/ib-77/odflow/pkg/tensor"

// BoundingBox locates one annotated object within an image, in pixel
// coordinates of the raw image.
type BoundingBox struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Annotation is one labeled object: its class identifier, the confidence
// assigned by the labeler, and its bounding box. Annotation slices are
// never mutated after creation, only carried forward between stages.
type Annotation struct {
	Identifier int
	Confidence float32
	Box        BoundingBox
}

// LabeledImage pairs raw image pixels (height x width x channel) with the
// image's annotations.
type LabeledImage struct {
	Image       tensor.FloatArray
	Annotations []Annotation
}

// DataBatch is one batch of raw data as read from the data source. The
// serial number starts at 1 and is carried unchanged through every
// downstream stage of the same pipeline run.
type DataBatch struct {
	IterationID int
	Examples    []LabeledImage
}

// InputBatch is one batch of model-agnostic data, post-augmentation. Images
// are a dense batch x height x width x channel tensor; the raw annotations
// from the DataBatch are preserved for later evaluation against
// predictions.
type InputBatch struct {
	IterationID int
	Images      tensor.FloatArray
	Annotations [][]Annotation
}

// EncodedInputBatch is one batch in a model-specific format: the image
// tensor plus whatever label tensor the concrete architecture's compute
// graph expects. Produced by a Backend's encoding stage, not by this
// package.
type EncodedInputBatch struct {
	IterationID int
	Images      tensor.FloatArray
	Labels      tensor.FloatArray
	Annotations [][]Annotation
}

// TrainingOutputBatch is the raw output of one forward/backward step.
type TrainingOutputBatch struct {
	IterationID int
	Loss        tensor.FloatArray
}

// TrainingProgress is the user-visible signal: the batch's serial number
// and the smoothed scalar loss.
type TrainingProgress struct {
	IterationID  int
	SmoothedLoss float32
}

// Package odet implements the model-agnostic training pipeline for object
// detection. It moves raw annotated images through augmentation,
// model-specific encoding and compute, and progress smoothing, while a
// separate stream emits checkpoints of model state.
//
// The pipeline is assembled from combine stages:
// - DataIterator: wraps a DataSource, stamping each batch with a strictly
//   increasing iteration id
// - DataAugmenter: wraps an Augmenter, turning DataBatch into InputBatch
// - ProgressUpdater: smooths per-batch loss into TrainingProgress
// - Model: composes source -> augment -> backend and exposes a checkpoint
//   publisher usable independently of the training stream
// - Train: drives the composed pipeline one batch at a time
//
// The raw data source, the pixel-level augmentation engine, and the compute
// graph stay behind the DataSource, Augmenter, and Backend interfaces;
// package odet never retries their failures, it terminates the affected
// stream.
package odet

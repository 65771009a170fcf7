package odet

// Policy computes training parameters left as -1 in the Config. It is
// consulted at most once per field per training run.
type Policy interface {
	// BatchSize returns the batch size to use when Config.BatchSize is -1.
	BatchSize() int
	// MaxIterations returns the iteration target when Config.MaxIterations
	// is -1. numExamples is the dataset size, or -1 when the data source
	// cannot report one.
	MaxIterations(numExamples, batchSize int) int
}

// DefaultPolicy is the built-in heuristic: batches of 32 images, and an
// iteration target that gives each example roughly 100 passes, clamped to
// a sane range.
type DefaultPolicy struct{}

const (
	defaultBatchSize     = 32
	minDefaultIterations = 1000
	maxDefaultIterations = 12000
)

func (DefaultPolicy) BatchSize() int {
	return defaultBatchSize
}

func (DefaultPolicy) MaxIterations(numExamples, batchSize int) int {
	if numExamples <= 0 || batchSize <= 0 {
		return minDefaultIterations
	}
	iterations := numExamples * 100 / batchSize
	if iterations < minDefaultIterations {
		return minDefaultIterations
	}
	if iterations > maxDefaultIterations {
		return maxDefaultIterations
	}
	return iterations
}

package odet

import "fmt"

// DataAugmenter adapts an Augmenter to the combine.Transform interface:
// one DataBatch in, one InputBatch out, iteration id unchanged. The raw
// annotations are carried forward untouched so predictions can later be
// evaluated against them. The adapter holds no state of its own.
type DataAugmenter struct {
	impl Augmenter
}

// NewDataAugmenter wraps impl, taking exclusive ownership of it.
func NewDataAugmenter(impl Augmenter) *DataAugmenter {
	return &DataAugmenter{impl: impl}
}

func (a *DataAugmenter) Invoke(batch DataBatch) (InputBatch, error) {
	images, err := a.impl.Augment(batch.Examples)
	if err != nil {
		return InputBatch{}, fmt.Errorf("odet: augment batch %d: %w", batch.IterationID, err)
	}

	annotations := make([][]Annotation, len(batch.Examples))
	for i, example := range batch.Examples {
		annotations[i] = example.Annotations
	}

	return InputBatch{
		IterationID: batch.IterationID,
		Images:      images,
		Annotations: annotations,
	}, nil
}

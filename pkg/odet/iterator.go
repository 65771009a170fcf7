package odet

// DataIterator adapts a DataSource to the combine.Iterator interface,
// stamping each produced batch with the next iteration id. It exclusively
// owns the wrapped source for its lifetime.
type DataIterator struct {
	impl            DataSource
	batchSize       int
	lastIterationID int
}

// NewDataIterator wraps impl. Each batch requests up to batchSize images.
// offset is the number of batches consumed by a prior run: the first batch
// produced carries iteration id offset+1, which preserves a resumed run's
// iteration numbering. The wrapped source does not yet resume its random
// sampling state.
func NewDataIterator(impl DataSource, batchSize, offset int) *DataIterator {
	return &DataIterator{
		impl:            impl,
		batchSize:       batchSize,
		lastIterationID: offset,
	}
}

// HasNext reports whether the wrapped source has at least one more
// example. Side-effect-free.
func (it *DataIterator) HasNext() bool {
	return it.impl.HasNext()
}

// Next requests up to batchSize images from the source and returns them as
// the next DataBatch. Must not be called when HasNext is false.
func (it *DataIterator) Next() (DataBatch, error) {
	it.lastIterationID++
	return DataBatch{
		IterationID: it.lastIterationID,
		Examples:    it.impl.Next(it.batchSize),
	}, nil
}

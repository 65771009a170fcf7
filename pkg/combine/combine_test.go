package combine

import "errors"

// sliceIterator yields ints from a slice, optionally failing at a given
// position.
type sliceIterator struct {
	values []int
	pos    int
	failAt int
}

func newSliceIterator(values ...int) *sliceIterator {
	return &sliceIterator{values: values, failAt: -1}
}

func (it *sliceIterator) HasNext() bool {
	return it.pos < len(it.values)
}

func (it *sliceIterator) Next() (int, error) {
	if it.failAt >= 0 && it.pos == it.failAt {
		return 0, errors.New("iterator failed")
	}
	v := it.values[it.pos]
	it.pos++
	return v, nil
}

// recorder captures everything delivered to it, with configurable demand.
type recorder[T any] struct {
	initial    Demand
	perValue   Demand
	sub        Subscription
	values     []T
	completed  bool
	completion Completion
}

func (r *recorder[T]) ReceiveSubscription(s Subscription) {
	r.sub = s
	if r.initial != DemandNone {
		s.Request(r.initial)
	}
}

func (r *recorder[T]) Receive(v T) Demand {
	r.values = append(r.values, v)
	return r.perValue
}

func (r *recorder[T]) ReceiveCompletion(c Completion) {
	r.completed = true
	r.completion = c
}

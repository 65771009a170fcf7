package combine

import "errors"

// ErrNoValue is returned by First when the stream finishes without
// producing a value.
var ErrNoValue = errors.New("combine: stream completed without a value")

// SinkHandlers routes stream events to callbacks. A nil OnValue consumes
// values with unlimited demand.
type SinkHandlers[T any] struct {
	OnValue      func(value T) Demand
	OnCompletion func(c Completion)
}

// Attach subscribes a callback sink with the given initial demand and
// returns its subscription. For synchronous publishers the whole stream is
// delivered before Attach returns.
func Attach[T any](p Publisher[T], initial Demand, h SinkHandlers[T]) Subscription {
	s := &sink[T]{initial: initial, h: h}
	p.Subscribe(s)
	return s.sub
}

type sink[T any] struct {
	initial Demand
	h       SinkHandlers[T]
	sub     Subscription
}

func (s *sink[T]) ReceiveSubscription(sub Subscription) {
	s.sub = sub
	sub.Request(s.initial)
}

func (s *sink[T]) Receive(value T) Demand {
	if s.h.OnValue == nil {
		return DemandUnlimited
	}
	return s.h.OnValue(value)
}

func (s *sink[T]) ReceiveCompletion(c Completion) {
	if s.h.OnCompletion != nil {
		s.h.OnCompletion(c)
	}
}

// Collect drives a synchronous publisher to completion with unlimited
// demand and returns every delivered value, plus the failure error if the
// stream did not finish cleanly.
func Collect[T any](p Publisher[T]) ([]T, error) {
	var (
		values []T
		err    error
	)
	Attach(p, DemandUnlimited, SinkHandlers[T]{
		OnValue: func(v T) Demand {
			values = append(values, v)
			return DemandNone
		},
		OnCompletion: func(c Completion) {
			err = c.Failure()
		},
	})
	return values, err
}

// First requests a single value from a synchronous publisher, cancels the
// subscription, and returns it. A stream that fails before producing a
// value yields its error; one that finishes empty yields ErrNoValue.
func First[T any](p Publisher[T]) (T, error) {
	var (
		value T
		got   bool
		err   error
	)
	s := &sink[T]{initial: DemandMax(1)}
	s.h = SinkHandlers[T]{
		OnValue: func(v T) Demand {
			if !got {
				value = v
				got = true
				s.sub.Cancel()
			}
			return DemandNone
		},
		OnCompletion: func(c Completion) {
			err = c.Failure()
		},
	}
	p.Subscribe(s)

	if err != nil {
		return value, err
	}
	if !got {
		return value, ErrNoValue
	}
	return value, nil
}

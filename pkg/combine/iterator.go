package combine

// Iterator is an exhaustible pull source of values.
type Iterator[T any] interface {
	// HasNext reports whether another value is available. Side-effect-free.
	HasNext() bool
	// Next produces the next value. Must only be called when HasNext
	// returned true.
	Next() (T, error)
}

// FromIterator wraps an iterator as a publisher. The iterator is advanced
// once per unit of demand; exhaustion finishes the stream and an iterator
// error fails it. The iterator is shared across subscriptions, so the
// publisher is effectively unicast: each value is seen by exactly one
// subscriber.
func FromIterator[T any](it Iterator[T]) Publisher[T] {
	return &iteratorPublisher[T]{it: it}
}

type iteratorPublisher[T any] struct {
	it Iterator[T]
}

func (p *iteratorPublisher[T]) Subscribe(s Subscriber[T]) {
	s.ReceiveSubscription(&iteratorSubscription[T]{it: p.it, sub: s})
}

type iteratorSubscription[T any] struct {
	it         Iterator[T]
	sub        Subscriber[T]
	pending    Demand
	delivering bool
	done       bool
}

func (s *iteratorSubscription[T]) Cancel() {
	s.done = true
}

func (s *iteratorSubscription[T]) Request(d Demand) {
	if s.done {
		return
	}
	s.pending = s.pending.Add(d)
	if s.delivering {
		// Reentrant Request from Receive; the outer loop picks it up.
		return
	}
	s.delivering = true
	defer func() { s.delivering = false }()

	for !s.done && s.pending != DemandNone {
		if !s.it.HasNext() {
			s.done = true
			s.sub.ReceiveCompletion(Finished())
			return
		}
		v, err := s.it.Next()
		if err != nil {
			s.done = true
			s.sub.ReceiveCompletion(Failed(err))
			return
		}
		s.pending = s.pending.decrement()
		s.pending = s.pending.Add(s.sub.Receive(v))
	}
}

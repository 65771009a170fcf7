package combine

// FromFunc returns a publisher that calls next once per unit of demand and
// emits the produced value. The stream never finishes on its own: it ends
// only when a subscriber cancels or next returns an error. Each
// subscription gets its own demand accounting, so the publisher may be
// shared across subscribers and outlive any one of them.
func FromFunc[T any](next func() (T, error)) Publisher[T] {
	return funcPublisher[T]{next: next}
}

type funcPublisher[T any] struct {
	next func() (T, error)
}

func (p funcPublisher[T]) Subscribe(s Subscriber[T]) {
	s.ReceiveSubscription(&funcSubscription[T]{next: p.next, sub: s})
}

type funcSubscription[T any] struct {
	next       func() (T, error)
	sub        Subscriber[T]
	pending    Demand
	delivering bool
	done       bool
}

func (s *funcSubscription[T]) Cancel() {
	s.done = true
}

func (s *funcSubscription[T]) Request(d Demand) {
	if s.done {
		return
	}
	s.pending = s.pending.Add(d)
	if s.delivering {
		return
	}
	s.delivering = true
	defer func() { s.delivering = false }()

	for !s.done && s.pending != DemandNone {
		v, err := s.next()
		if err != nil {
			s.done = true
			s.sub.ReceiveCompletion(Failed(err))
			return
		}
		s.pending = s.pending.decrement()
		s.pending = s.pending.Add(s.sub.Receive(v))
	}
}

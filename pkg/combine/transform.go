package combine

// Transform is a one-in-one-out stage, optionally stateful. Stateful
// transforms rely on the serial delivery contract: values arrive in order,
// never concurrently, so no internal locking is required.
type Transform[In, Out any] interface {
	Invoke(value In) (Out, error)
}

// TransformFunc adapts a function to the Transform interface.
type TransformFunc[In, Out any] func(In) (Out, error)

func (f TransformFunc[In, Out]) Invoke(value In) (Out, error) {
	return f(value)
}

// Map applies a transform to every value of the upstream publisher. Demand
// passes through unchanged since the stage is one-to-one. A transform error
// cancels the upstream subscription and fails the downstream stream.
func Map[In, Out any](upstream Publisher[In], t Transform[In, Out]) Publisher[Out] {
	return &mapPublisher[In, Out]{upstream: upstream, transform: t}
}

type mapPublisher[In, Out any] struct {
	upstream  Publisher[In]
	transform Transform[In, Out]
}

func (p *mapPublisher[In, Out]) Subscribe(s Subscriber[Out]) {
	p.upstream.Subscribe(&mapSubscriber[In, Out]{
		transform:  p.transform,
		downstream: s,
	})
}

type mapSubscriber[In, Out any] struct {
	transform  Transform[In, Out]
	downstream Subscriber[Out]
	upstream   Subscription
	failed     bool
}

func (s *mapSubscriber[In, Out]) ReceiveSubscription(sub Subscription) {
	s.upstream = sub
	// One-to-one stage: the downstream drives upstream demand directly.
	s.downstream.ReceiveSubscription(sub)
}

func (s *mapSubscriber[In, Out]) Receive(value In) Demand {
	if s.failed {
		return DemandNone
	}
	out, err := s.transform.Invoke(value)
	if err != nil {
		s.failed = true
		s.upstream.Cancel()
		s.downstream.ReceiveCompletion(Failed(err))
		return DemandNone
	}
	return s.downstream.Receive(out)
}

func (s *mapSubscriber[In, Out]) ReceiveCompletion(c Completion) {
	if s.failed {
		return
	}
	s.downstream.ReceiveCompletion(c)
}

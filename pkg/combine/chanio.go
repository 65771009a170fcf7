package combine

import "context"

// ToChan drains a publisher on a background goroutine, flattening values
// and any terminal failure into Result envelopes. The producing stage only
// advances when the consumer takes a value off the channel, so an
// unconsumed channel applies natural backpressure. The channel closes after
// the stream completes or ctx is cancelled; cancellation cancels the
// upstream subscription and produces no further envelopes.
func ToChan[T any](ctx context.Context, p Publisher[T]) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)
		p.Subscribe(&chanSink[T]{ctx: ctx, out: out})
	}()

	return out
}

type chanSink[T any] struct {
	ctx context.Context
	out chan<- Result[T]
	sub Subscription
}

func (s *chanSink[T]) ReceiveSubscription(sub Subscription) {
	s.sub = sub
	sub.Request(DemandUnlimited)
}

func (s *chanSink[T]) Receive(value T) Demand {
	select {
	case s.out <- Success(value):
		return DemandNone
	case <-s.ctx.Done():
		s.sub.Cancel()
		return DemandNone
	}
}

func (s *chanSink[T]) ReceiveCompletion(c Completion) {
	if !c.IsFailure() {
		return
	}
	select {
	case s.out <- Failure[T](c.Failure()):
	case <-s.ctx.Done():
	}
}

// FromChan adapts a channel of Result envelopes into a publisher. Each unit
// of demand takes one envelope off the channel on the requesting goroutine:
// a success is delivered as a value, a failure fails the stream, a closed
// channel finishes it, and ctx cancellation fails it with ctx.Err().
func FromChan[T any](ctx context.Context, ch <-chan Result[T]) Publisher[T] {
	return chanPublisher[T]{ctx: ctx, ch: ch}
}

type chanPublisher[T any] struct {
	ctx context.Context
	ch  <-chan Result[T]
}

func (p chanPublisher[T]) Subscribe(s Subscriber[T]) {
	s.ReceiveSubscription(&chanSubscription[T]{ctx: p.ctx, ch: p.ch, sub: s})
}

type chanSubscription[T any] struct {
	ctx        context.Context
	ch         <-chan Result[T]
	sub        Subscriber[T]
	pending    Demand
	delivering bool
	done       bool
}

func (s *chanSubscription[T]) Cancel() {
	s.done = true
}

func (s *chanSubscription[T]) Request(d Demand) {
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
		select {
		case r, ok := <-s.ch:
			if !ok {
				s.done = true
				s.sub.ReceiveCompletion(Finished())
				return
			}
			if r.Err() != nil {
				s.done = true
				s.sub.ReceiveCompletion(Failed(r.Err()))
				return
			}
			s.pending = s.pending.decrement()
			s.pending = s.pending.Add(s.sub.Receive(r.Value()))
		case <-s.ctx.Done():
			s.done = true
			s.sub.ReceiveCompletion(Failed(s.ctx.Err()))
			return
		}
	}
}

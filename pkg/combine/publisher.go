package combine

// Demand is the number of additional values a subscriber is prepared to
// receive. A negative value means unlimited.
type Demand int

const (
	DemandNone      Demand = 0
	DemandUnlimited Demand = -1
)

// DemandMax returns a bounded demand for n values.
func DemandMax(n int) Demand {
	if n < 0 {
		return DemandUnlimited
	}
	return Demand(n)
}

// IsUnlimited reports whether the demand is unbounded.
func (d Demand) IsUnlimited() bool {
	return d < 0
}

// Add combines two demands. Unlimited absorbs everything.
func (d Demand) Add(other Demand) Demand {
	if d.IsUnlimited() || other.IsUnlimited() {
		return DemandUnlimited
	}
	return d + other
}

// decrement consumes one unit of demand. Unlimited stays unlimited.
func (d Demand) decrement() Demand {
	if d.IsUnlimited() {
		return d
	}
	return d - 1
}

// Completion is the terminal event of a stream: either a clean finish or a
// failure carrying the error that terminated the stream.
type Completion struct {
	err error
}

// Finished returns a successful completion.
func Finished() Completion {
	return Completion{}
}

// Failed returns a completion carrying err.
func Failed(err error) Completion {
	return Completion{err: err}
}

// IsFailure reports whether the stream terminated with an error.
func (c Completion) IsFailure() bool {
	return c.err != nil
}

// Failure returns the terminating error, or nil for a clean finish.
func (c Completion) Failure() error {
	return c.err
}

// Subscription is a subscriber's handle on one attachment to a publisher.
// Request may be invoked from within Subscriber.Receive; implementations
// accumulate demand and run a single delivery loop.
type Subscription interface {
	// Request asks the publisher for up to d more values.
	Request(d Demand)
	// Cancel stops delivery. No values or completion arrive after Cancel
	// returns on the delivering goroutine.
	Cancel()
}

// Subscriber consumes a stream of values followed by exactly one
// Completion.
type Subscriber[T any] interface {
	// ReceiveSubscription is invoked once, before any value.
	ReceiveSubscription(s Subscription)
	// Receive consumes one value and returns additional demand.
	Receive(value T) Demand
	// ReceiveCompletion consumes the terminal event.
	ReceiveCompletion(c Completion)
}

// Publisher produces a stream of values for each attached subscriber.
type Publisher[T any] interface {
	Subscribe(s Subscriber[T])
}

package combine

import "sync"

// Subject is a multicast publisher fed imperatively via Send. Every
// subscriber receives every value sent after it attached, buffered per
// subscriber until demand covers it. Send, Complete and Subscribe are safe
// to call concurrently; delivery to a single subscriber remains serial.
type Subject[T any] struct {
	mu         sync.Mutex
	subs       []*subjectSubscription[T]
	done       bool
	completion Completion
}

// NewSubject returns an empty, open subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

func (s *Subject[T]) Subscribe(sub Subscriber[T]) {
	ss := &subjectSubscription[T]{parent: s, sub: sub}
	s.mu.Lock()
	done, completion := s.done, s.completion
	if !done {
		s.subs = append(s.subs, ss)
	}
	s.mu.Unlock()

	sub.ReceiveSubscription(ss)
	if done {
		sub.ReceiveCompletion(completion)
	}
}

// Send broadcasts one value to every current subscriber. Sending after
// Complete is a no-op.
func (s *Subject[T]) Send(value T) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	subs := append([]*subjectSubscription[T](nil), s.subs...)
	s.mu.Unlock()

	for _, ss := range subs {
		ss.deliver(value)
	}
}

// Complete terminates the subject. Buffered values still drain to each
// subscriber before its completion is delivered.
func (s *Subject[T]) Complete(c Completion) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	s.completion = c
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, ss := range subs {
		ss.complete(c)
	}
}

func (s *Subject[T]) remove(target *subjectSubscription[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ss := range s.subs {
		if ss == target {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

type subjectSubscription[T any] struct {
	parent *Subject[T]
	sub    Subscriber[T]

	mu           sync.Mutex
	buf          []T
	pending      Demand
	flushing     bool
	cancelled    bool
	terminal     bool
	terminalSent bool
	completion   Completion
}

func (ss *subjectSubscription[T]) Request(d Demand) {
	ss.mu.Lock()
	ss.pending = ss.pending.Add(d)
	ss.mu.Unlock()
	ss.flush()
}

func (ss *subjectSubscription[T]) Cancel() {
	ss.mu.Lock()
	ss.cancelled = true
	ss.buf = nil
	ss.mu.Unlock()
	ss.parent.remove(ss)
}

func (ss *subjectSubscription[T]) deliver(value T) {
	ss.mu.Lock()
	if ss.cancelled || ss.terminal {
		ss.mu.Unlock()
		return
	}
	ss.buf = append(ss.buf, value)
	ss.mu.Unlock()
	ss.flush()
}

func (ss *subjectSubscription[T]) complete(c Completion) {
	ss.mu.Lock()
	if ss.cancelled || ss.terminal {
		ss.mu.Unlock()
		return
	}
	ss.terminal = true
	ss.completion = c
	ss.mu.Unlock()
	ss.flush()
}

func (ss *subjectSubscription[T]) flush() {
	ss.mu.Lock()
	if ss.flushing {
		ss.mu.Unlock()
		return
	}
	ss.flushing = true

	for {
		if ss.cancelled {
			break
		}
		if len(ss.buf) > 0 && ss.pending != DemandNone {
			value := ss.buf[0]
			ss.buf = ss.buf[1:]
			ss.pending = ss.pending.decrement()
			ss.mu.Unlock()
			more := ss.sub.Receive(value)
			ss.mu.Lock()
			ss.pending = ss.pending.Add(more)
			continue
		}
		if len(ss.buf) == 0 && ss.terminal && !ss.terminalSent {
			ss.terminalSent = true
			c := ss.completion
			ss.mu.Unlock()
			ss.sub.ReceiveCompletion(c)
			ss.mu.Lock()
		}
		break
	}

	ss.flushing = false
	ss.mu.Unlock()
}

// Package combine provides demand-driven value streams: publishers that
// deliver values to subscribers serially, in production order, one at a
// time, and only when the subscriber has signalled demand.
//
// Core contracts:
// - Publisher/Subscriber/Subscription: attach, request demand, receive
// - Iterator/FromIterator: pull values from an exhaustible source
// - Transform/Map: apply a one-in-one-out stage, preserving order
// - FromFunc: produce one fresh value per unit of demand (never finishes)
// - Subject: multicast a produced stream to many subscribers
// - ToChan/FromChan: bridge publishers to channels of Result envelopes for
//   asynchronous production and consumption
// - Sinks: Collect, First, Attach for driving a stream to completion
//
// Unless stated otherwise, publishers deliver on the goroutine that calls
// Subscription.Request. Values never overlap within one subscription, and a
// terminal Completion is delivered exactly once, after the last value.
package combine

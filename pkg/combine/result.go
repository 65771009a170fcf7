package combine

import (
	"time"

	"github.com/google/uuid"
)

// Result is the value-or-error envelope used where a stream is flattened
// onto a channel and the terminal completion cannot travel out of band.
// Each envelope carries a unique id and creation timestamp for correlating
// values across goroutine boundaries.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
}

// Success wraps a produced value.
func Success[T any](value T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
	}
}

// Failure wraps a stream error.
func Failure[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

// Value returns the wrapped value; meaningful only when Err is nil.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the wrapped error, if any.
func (r Result[T]) Err() error {
	return r.err
}

// IsSuccess reports whether the envelope carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Id returns the envelope's unique identifier.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the envelope creation time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

package result

import (
	"fmt"

	"github.com/ib-77/somnon/pkg/somnon"
)

type variant uint8

const (
	okVariant variant = iota + 1
	errVariant
)

// Result holds either a success value of type T or an error value of type E.
type Result[T, E any] struct {
	value   T
	err     E
	variant variant
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:   v,
		variant: okVariant,
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:     e,
		variant: errVariant,
	}
}

// Try builds a Result from a (value, error) pair: Err when err is non-nil.
func Try[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) split() variant {
	if r.variant == 0 {
		panic(&somnon.Fault{Kind: somnon.ErrUnwrap, Message: "somnon: use of uninitialized Result"})
	}
	return r.variant
}

// IsZero reports whether r was built by neither Ok nor Err.
func (r Result[T, E]) IsZero() bool {
	return r.variant == 0
}

func (r Result[T, E]) IsOk() bool {
	return r.split() == okVariant
}

func (r Result[T, E]) IsErr() bool {
	return r.split() == errVariant
}

// Get returns the success value and true, or the zero T and false for Err.
func (r Result[T, E]) Get() (T, bool) {
	if r.split() == okVariant {
		return r.value, true
	}
	var zero T
	return zero, false
}

// ErrValue returns the error value and true, or the zero E and false for Ok.
func (r Result[T, E]) ErrValue() (E, bool) {
	if r.split() == errVariant {
		return r.err, true
	}
	var zero E
	return zero, false
}

// Cause returns the error value of an Err when E holds an error.
func (r Result[T, E]) Cause() error {
	if r.split() == errVariant {
		return somnon.AsError(r.err)
	}
	return nil
}

func (r Result[T, E]) Unwrap() T {
	return somnon.Unwrap[T](r)
}

func (r Result[T, E]) Expect(message string) T {
	return somnon.Expect[T](r, message)
}

func (r Result[T, E]) UnwrapOr(def T) T {
	return somnon.UnwrapOr[T](r, def)
}

func (r Result[T, E]) UnwrapOrElse(supplier func() T) T {
	return somnon.UnwrapOrElse[T](r, supplier)
}

// UnwrapErr returns the error value, panicking with a fault of kind
// somnon.ErrUnwrap when r is Ok.
func (r Result[T, E]) UnwrapErr() E {
	if e, ok := r.ErrValue(); ok {
		return e
	}
	panic(&somnon.Fault{Kind: somnon.ErrUnwrap, Message: fmt.Sprintf("called UnwrapErr on %v", r)})
}

// Or returns r if it is Ok, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.IsOk() {
		return r
	}
	return other
}

// OrElse returns r if it is Ok, otherwise calls onErr with the error value.
func (r Result[T, E]) OrElse(onErr func(E) Result[T, E]) Result[T, E] {
	if e, ok := r.ErrValue(); ok {
		return onErr(e)
	}
	return r
}

func (r Result[T, E]) String() string {
	switch r.variant {
	case okVariant:
		return fmt.Sprintf("Ok(%v)", r.value)
	case errVariant:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "Result(<zero>)"
	}
}

package option

import (
	"fmt"

	"github.com/ib-77/somnon/pkg/somnon"
)

// Option holds a value of type T or nothing. The value is only meaningful
// when present is set; Non always stores the zero T.
type Option[T any] struct {
	value   T
	present bool
}

func Som[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func Non[T any]() Option[T] {
	return Option[T]{}
}

// FromPair builds an Option from the comma-ok idiom.
func FromPair[T any](v T, ok bool) Option[T] {
	if ok {
		return Som(v)
	}
	return Non[T]()
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) IsSom() bool {
	return o.present
}

func (o Option[T]) IsNon() bool {
	return !o.present
}

func (o Option[T]) Unwrap() T {
	return somnon.Unwrap[T](o)
}

func (o Option[T]) Expect(message string) T {
	return somnon.Expect[T](o, message)
}

func (o Option[T]) UnwrapOr(def T) T {
	return somnon.UnwrapOr[T](o, def)
}

func (o Option[T]) UnwrapOrElse(supplier func() T) T {
	return somnon.UnwrapOrElse[T](o, supplier)
}

// Filter keeps the value only if predicate accepts it.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return Non[T]()
}

// Or returns o if it holds a value, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns o if it holds a value, otherwise the result of supplier.
func (o Option[T]) OrElse(supplier func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return supplier()
}

// Xor returns whichever of o and other holds a value, or Non when both or
// neither do.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.present && !other.present:
		return o
	case !o.present && other.present:
		return other
	default:
		return Non[T]()
	}
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Som(%v)", o.value)
	}
	return "Non"
}

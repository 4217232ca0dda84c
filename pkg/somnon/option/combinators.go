package option

import (
	"github.com/ib-77/somnon/pkg/somnon"
	"github.com/ib-77/somnon/pkg/somnon/result"
)

// Map applies transform to the held value. Non stays Non.
func Map[T, U any](o Option[T], transform func(T) U) Option[U] {
	return somnon.Dispatch[T](o, func(v T) Option[U] { return Som(transform(v)) }, Non[U])
}

func MapOr[T, U any](o Option[T], transform func(T) U, def U) U {
	return somnon.MapOr[T](o, transform, def)
}

func MapOrElse[T, U any](o Option[T], transform func(T) U, supplier func() U) U {
	return somnon.MapOrElse[T](o, transform, supplier)
}

// AndThen calls next with the held value and returns its Option without
// nesting. Non short-circuits.
func AndThen[T, U any](o Option[T], next func(T) Option[U]) Option[U] {
	return somnon.Dispatch[T](o, next, Non[U])
}

// And returns other when o holds a value, otherwise Non. The value of o is
// discarded.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.present {
		return other
	}
	return Non[U]()
}

// Zip pairs the values of a and b when both are present.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
}

// ZipWith combines the values of a and b when both are present.
func ZipWith[A, B, R any](a Option[A], b Option[B], combine func(A, B) R) Option[R] {
	if a.present && b.present {
		return Som(combine(a.value, b.value))
	}
	return Non[R]()
}

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.present {
		return o.value
	}
	return Non[T]()
}

// OkOr converts o into a Result, using err for Non.
func OkOr[T, E any](o Option[T], err E) result.Result[T, E] {
	if o.present {
		return result.Ok[T, E](o.value)
	}
	return result.Err[T](err)
}

// OkOrElse is OkOr with the error built by supplier, only for Non.
func OkOrElse[T, E any](o Option[T], supplier func() E) result.Result[T, E] {
	if o.present {
		return result.Ok[T, E](o.value)
	}
	return result.Err[T](supplier())
}

// Transpose turns an optional Result into a Result of an option:
// Som(Ok(v)) is Ok(Som(v)), Som(Err(e)) is Err(e) and Non is Ok(Non).
// It panics with a fault of kind somnon.ErrTranspose when the held Result
// is the zero Result.
func Transpose[T, E any](o Option[result.Result[T, E]]) result.Result[Option[T], E] {
	if !o.present {
		return result.Ok[Option[T], E](Non[T]())
	}
	if o.value.IsZero() {
		panic(&somnon.Fault{Kind: somnon.ErrTranspose})
	}
	return result.Map(o.value, Som[T])
}

// FromOk returns the success value of r, discarding the error.
func FromOk[T, E any](r result.Result[T, E]) Option[T] {
	return FromPair(r.Get())
}

// FromErr returns the error value of r, discarding the success value.
func FromErr[T, E any](r result.Result[T, E]) Option[E] {
	return FromPair(r.ErrValue())
}

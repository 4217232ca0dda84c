package result

import "github.com/ib-77/somnon/pkg/somnon"

// Map applies transform to the value of an Ok. An Err is returned with its
// error value unchanged and transform is not called.
func Map[T, U, E any](r Result[T, E], transform func(T) U) Result[U, E] {
	return somnon.Dispatch[T](r,
		func(v T) Result[U, E] { return Ok[U, E](transform(v)) },
		func() Result[U, E] { return Err[U](r.err) })
}

// MapErr applies transform to the error value of an Err.
func MapErr[T, E, F any](r Result[T, E], transform func(E) F) Result[T, F] {
	if e, ok := r.ErrValue(); ok {
		return Err[T](transform(e))
	}
	return Ok[T, F](r.value)
}

func MapOr[T, U, E any](r Result[T, E], transform func(T) U, def U) U {
	return somnon.MapOr[T](r, transform, def)
}

func MapOrElse[T, U, E any](r Result[T, E], transform func(T) U, supplier func() U) U {
	return somnon.MapOrElse[T](r, transform, supplier)
}

// AndThen calls next with the value of an Ok and returns its Result.
// An Err short-circuits.
func AndThen[T, U, E any](r Result[T, E], next func(T) Result[U, E]) Result[U, E] {
	return somnon.Dispatch[T](r, next, func() Result[U, E] { return Err[U](r.err) })
}

// Package result provides Result[T, E], a container holding either a success
// value (Ok) or an error value (Err).
//
// Highlights:
// - Ok/Err: construct a Result; Try lifts Go's (T, error) pair
// - IsOk/IsErr/Get/ErrValue: inspect the variant
// - Unwrap/Expect/UnwrapErr: extract a payload, faulting on the wrong variant
// - UnwrapOr/UnwrapOrElse: extract with a default
// - Map/MapErr/MapOr/MapOrElse: transform a payload, the other one is kept
// - AndThen/Or/OrElse: chain computations that may fail
//
// The zero Result was built by neither Ok nor Err. It is not a failure: any
// operation that needs its variant panics with a fault of kind
// somnon.ErrUnwrap. Use IsZero to detect it.
package result

// Package somnon contains the dispatch core shared by the option and result
// containers. It knows nothing about either family; it works on anything that
// can report whether it holds a present value.
//
// Highlights:
// - Maybe: the case split both families implement
// - Dispatch: pick a branch by variant, the building block for every combinator
// - Unwrap/Expect: extract the held value or fault with ErrUnwrap
// - UnwrapOr/UnwrapOrElse: extract with an eager or lazy default
// - MapOr/MapOrElse: transform the held value or fall back to a default
// - Fault/Recover/Catch: the fault taxonomy and helpers to turn faults into errors
//
// See packages option and result for the concrete containers.
package somnon

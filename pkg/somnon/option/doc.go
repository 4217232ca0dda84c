// Package option provides Option[T], a container holding either a value (Som)
// or nothing (Non). The zero Option is Non.
//
// Methods cover operations that keep the element type; package functions
// cover the ones that change it.
//
// Key operations:
// - Som/Non/FromPair: construct an Option
// - IsSom/IsNon/Get: inspect the variant
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse: extract the value
// - Map/MapOr/MapOrElse/Filter/Flatten: transform the value
// - And/AndThen/Or/OrElse/Xor/Zip/ZipWith: combine options
// - OkOr/OkOrElse/Transpose/FromOk/FromErr: move between option and result
package option

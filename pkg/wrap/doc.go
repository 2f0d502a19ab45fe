// Package wrap defines Try[T], a value that is either a Success holding a T
// or a Failure holding an error, together with the library errors.
//
// Methods that keep the value type live on Try itself (Recover, RecoverWith,
// Filter, ForEach, ToOption, GetOrElse, OrElse). Type-changing combinators
// (Map, FlatMap, Flatten) and for-comprehensions are free functions in
// package solo, since Go methods cannot declare type parameters.
package wrap

// Package maybe provides Option[T], an optional value, and free-function
// combinators over it.
//
// Highlights:
// - Some/None/FromPtr/FromPair: construct an Option
// - Map/FlatMap/Filter/Flatten: transform without nesting
// - ForEach: side effect when present
// - Recover: unwrap with a fallback
// - ForComp2/ForComp3 (and the If variants): run a block when every option
//   is present and the optional filter accepts
// - Yield2/Yield3 (and the If variants): same gating, returning Option[R]
package maybe

// Package solo contains single-value, synchronous combinators over
// wrap.Try[T] that change the value type, plus for-comprehensions.
//
// Highlights:
// - Map/FlatMap/Flatten: transform a Try without nesting
// - Lift: call a function (Out, error) and turn the error into a failure
// - Validate/AndValidate/ValidateAll/FailOnError: fail on invalid input
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - ForComp2/ForComp3 and YieldN (with If variants): joint unwrap of
//   several trys, optionally gated by a filter
//
// A failure always carries its original error through these functions.
// The only error they create is wrap.ErrFilterFailed.
package solo

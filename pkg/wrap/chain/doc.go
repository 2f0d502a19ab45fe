// Package chain provides a fluent wrapper around wrap.Try[T] built on solo
// primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Try or a value
// - Then: switch to a new Try[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Filter/Recover/RecoverWith: same-type steps delegated to wrap.Try
// - Ensure: run side effects without changing the result
// - Or/And: pick among alternative chains
// - Finally: collapse the chain into a final value via handlers
package chain

package chain

import (
	"github.com/ib-77/wrappers/pkg/wrap"
	"github.com/ib-77/wrappers/pkg/wrap/solo"
)

// Chain wraps a wrap.Try to enable fluent chaining
type Chain[T any] struct {
	result wrap.Try[T]
}

// Start creates a new chain from a wrap.Try
func Start[T any](result wrap.Try[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: wrap.Success(value)}
}

// Result returns the underlying wrap.Try
func (c *Chain[T]) Result() wrap.Try[T] {
	return c.result
}

// Then chains a function that returns wrap.Try[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) wrap.Try[U]) *Chain[U] {
	return &Chain[U]{result: solo.FlatMap(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: solo.Lift(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Then composes a same-type function that already returns wrap.Try[T]
func (c *Chain[T]) Then(onSuccess func(T) wrap.Try[T]) *Chain[T] {
	return Then(c, onSuccess)
}

// ThenTry composes a same-type function that returns (T, error)
func (c *Chain[T]) ThenTry(try func(T) (T, error)) *Chain[T] {
	return ThenTry(c, try)
}

// Map transforms the successful value to a new value of the same type
func (c *Chain[T]) Map(onSuccess func(T) T) *Chain[T] {
	return Map(c, onSuccess)
}

// RepeatUntil applies onSuccess at least once and keeps going while the
// chain succeeds and until reports true.
func (c *Chain[T]) RepeatUntil(onSuccess func(T) wrap.Try[T], until func(T) bool) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.result.IsFailure() || !until(c.result.Value()) {
			return c
		}
	}
}

// While applies onSuccess as long as the chain succeeds and while reports true
func (c *Chain[T]) While(onSuccess func(T) wrap.Try[T], while func(T) bool) *Chain[T] {
	for !c.result.IsFailure() && while(c.result.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c *Chain[T]) Filter(predicate func(T) bool) *Chain[T] {
	return &Chain[T]{result: c.result.Filter(predicate)}
}

func (c *Chain[T]) Recover(onFailure func(error) T) *Chain[T] {
	return &Chain[T]{result: c.result.Recover(onFailure)}
}

func (c *Chain[T]) RecoverWith(onFailure func(error) wrap.Try[T]) *Chain[T] {
	return &Chain[T]{result: c.result.RecoverWith(onFailure)}
}

// Ensure triggers side effects without changing the result. Nil callbacks
// are skipped.
func (c *Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) *Chain[T] {
	if c.result.IsFailure() {
		if onFailure != nil {
			onFailure(c.result.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.result.Value())
	}
	return c
}

// Or returns the first successful chain, or c when none succeeded. Nil
// alternatives are skipped.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt != nil && alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failing chain, or the last chain when all succeeded.
// Nil chains are skipped.
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	last := c
	for _, ch := range append([]*Chain[T]{c}, required...) {
		if ch == nil {
			continue
		}
		if ch.result.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}

// Finally collapses the chain into a value of the chain's own type
func (c *Chain[T]) Finally(onSuccess func(T) T, onFailure func(error) T) T {
	return Finally(c, onSuccess, onFailure)
}

package wrap

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/wrappers/pkg/wrap/maybe"
)

// Try is either a Success holding a value or a Failure holding an error.
// The zero value is a Failure carrying ErrEmptyTry.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Try[T] {
	return Try[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a Failure. A nil err is replaced by ErrNilFailure.
func Fail[T any](err error) Try[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Try[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of converts the (value, error) convention into a Try
func Of[T any](v T, err error) Try[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// FailFrom carries the failure of another Try over to a new value type,
// keeping its error, id and creation time.
func FailFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		err:       from.Err(),
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (t Try[T]) Value() T {
	return t.value
}

func (t Try[T]) Err() error {
	if !t.isSuccess && t.err == nil {
		return ErrEmptyTry
	}
	return t.err
}

// Get returns the value and error in the (value, error) convention
func (t Try[T]) Get() (T, error) {
	if !t.isSuccess {
		var zero T
		return zero, t.Err()
	}
	return t.value, nil
}

func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

func (t Try[T]) IsFailure() bool {
	return !t.isSuccess
}

func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Try[T]) Id() uuid.UUID {
	return t.id
}

// Recover turns a Failure into a Success using onFailure. A Success is
// returned unchanged.
func (t Try[T]) Recover(onFailure func(err error) T) Try[T] {
	if t.isSuccess {
		return t
	}
	return Success(onFailure(t.Err()))
}

// RecoverWith returns whatever onFailure produces for a Failure
func (t Try[T]) RecoverWith(onFailure func(err error) Try[T]) Try[T] {
	if t.isSuccess {
		return t
	}
	return onFailure(t.Err())
}

// Filter fails with ErrFilterFailed when predicate rejects the value.
// Failures pass through and predicate is not called.
func (t Try[T]) Filter(predicate func(v T) bool) Try[T] {
	if !t.isSuccess {
		return t
	}
	if predicate(t.value) {
		return t
	}
	return Fail[T](ErrFilterFailed)
}

func (t Try[T]) ForEach(onSuccess func(v T)) {
	if t.isSuccess {
		onSuccess(t.value)
	}
}

func (t Try[T]) ToOption() maybe.Option[T] {
	if t.isSuccess {
		return maybe.Some(t.value)
	}
	return maybe.None[T]()
}

func (t Try[T]) GetOrElse(defaultValue T) T {
	if t.isSuccess {
		return t.value
	}
	return defaultValue
}

// OrElse returns alternative as is when t is a Failure
func (t Try[T]) OrElse(alternative Try[T]) Try[T] {
	if t.isSuccess {
		return t
	}
	return alternative
}

func (t Try[T]) String() string {
	if t.isSuccess {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.Err())
}

package solo

import (
	"errors"

	"github.com/ib-77/wrappers/pkg/wrap"
)

func Succeed[T any](input T) wrap.Try[T] {
	return wrap.Success(input)
}

func Fail[T any](err error) wrap.Try[T] {
	return wrap.Fail[T](err)
}

// Map applies onSuccess to a successful value. A failure keeps its error.
func Map[In any, Out any](input wrap.Try[In], onSuccess func(r In) Out) wrap.Try[Out] {
	if input.IsSuccess() {
		return wrap.Success(onSuccess(input.Value()))
	}
	return wrap.FailFrom[In, Out](input)
}

// FlatMap returns what onSuccess produces for a successful value
func FlatMap[In any, Out any](input wrap.Try[In], onSuccess func(r In) wrap.Try[Out]) wrap.Try[Out] {
	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return wrap.FailFrom[In, Out](input)
}

// Flatten removes one level of nesting. The inner Try of an outer
// failure is never looked at.
func Flatten[T any](input wrap.Try[wrap.Try[T]]) wrap.Try[T] {
	if input.IsSuccess() {
		return input.Value()
	}
	return wrap.FailFrom[wrap.Try[T], T](input)
}

// Lift calls a (value, error) function on a successful value
func Lift[In any, Out any](input wrap.Try[In], onTryExecute func(r In) (Out, error)) wrap.Try[Out] {
	if input.IsSuccess() {
		out, err := onTryExecute(input.Value())
		if err != nil {
			return wrap.Fail[Out](err)
		}
		return wrap.Success(out)
	}
	return wrap.FailFrom[In, Out](input)
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) wrap.Try[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input wrap.Try[T], validate func(in T) (valid bool, errMsg string)) wrap.Try[T] {
	if input.IsSuccess() {
		if isValid, errMsg := validate(input.Value()); !isValid {
			return wrap.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against the input. With breakOnError the
// first failure is returned, otherwise all failures are joined.
func ValidateAll[T any](input wrap.Try[T], breakOnError bool,
	validators ...func(in T) (valid bool, errMsg string)) wrap.Try[T] {

	if input.IsFailure() {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if valid, errMsg := validate(input.Value()); !valid {
			if breakOnError {
				return wrap.Fail[T](errors.New(errMsg))
			}
			errs = append(errs, errors.New(errMsg))
		}
	}

	if len(errs) > 0 {
		return wrap.Fail[T](errors.Join(errs...))
	}
	return input
}

func FailOnError[T any](input wrap.Try[T], maybeErr func(in T) error) wrap.Try[T] {
	if input.IsSuccess() {
		if err := maybeErr(input.Value()); err != nil {
			return wrap.Fail[T](err)
		}
	}
	return input
}

func Tee[T any](input wrap.Try[T], onSuccess func(r T)) wrap.Try[T] {
	input.ForEach(onSuccess)
	return input
}

func DoubleTee[T any](input wrap.Try[T], onSuccess func(r T), onFailure func(err error)) wrap.Try[T] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	} else {
		onFailure(input.Err())
	}
	return input
}

// Finally reduces the Try to a plain value
func Finally[In, Out any](input wrap.Try[In],
	onSuccess func(r In) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}

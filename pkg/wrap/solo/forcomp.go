package solo

import "github.com/ib-77/wrappers/pkg/wrap"

// ForComp2 calls apply when both trys succeed
func ForComp2[T1, T2 any](t1 wrap.Try[T1], t2 wrap.Try[T2], apply func(T1, T2)) {
	ForComp2If(t1, t2, nil, apply)
}

// ForComp2If is ForComp2 gated by filter. filter runs once and only when
// both trys succeed. A nil filter accepts everything.
func ForComp2If[T1, T2 any](t1 wrap.Try[T1], t2 wrap.Try[T2],
	filter func(T1, T2) bool,
	apply func(T1, T2)) {

	if t1.IsFailure() || t2.IsFailure() {
		return
	}
	if filter != nil && !filter(t1.Value(), t2.Value()) {
		return
	}
	apply(t1.Value(), t2.Value())
}

func Yield2[T1, T2, R any](t1 wrap.Try[T1], t2 wrap.Try[T2], yield func(T1, T2) R) wrap.Try[R] {
	return Yield2If(t1, t2, nil, yield)
}

// Yield2If returns the first failing operand's error, ErrFilterFailed when
// filter rejects, or Success(yield(...)).
func Yield2If[T1, T2, R any](t1 wrap.Try[T1], t2 wrap.Try[T2],
	filter func(T1, T2) bool,
	yield func(T1, T2) R) wrap.Try[R] {

	if t1.IsFailure() {
		return wrap.FailFrom[T1, R](t1)
	}
	if t2.IsFailure() {
		return wrap.FailFrom[T2, R](t2)
	}
	if filter != nil && !filter(t1.Value(), t2.Value()) {
		return wrap.Fail[R](wrap.ErrFilterFailed)
	}
	return wrap.Success(yield(t1.Value(), t2.Value()))
}

func ForComp3[T1, T2, T3 any](t1 wrap.Try[T1], t2 wrap.Try[T2], t3 wrap.Try[T3], apply func(T1, T2, T3)) {
	ForComp3If(t1, t2, t3, nil, apply)
}

func ForComp3If[T1, T2, T3 any](t1 wrap.Try[T1], t2 wrap.Try[T2], t3 wrap.Try[T3],
	filter func(T1, T2, T3) bool,
	apply func(T1, T2, T3)) {

	if t1.IsFailure() || t2.IsFailure() || t3.IsFailure() {
		return
	}
	if filter != nil && !filter(t1.Value(), t2.Value(), t3.Value()) {
		return
	}
	apply(t1.Value(), t2.Value(), t3.Value())
}

func Yield3[T1, T2, T3, R any](t1 wrap.Try[T1], t2 wrap.Try[T2], t3 wrap.Try[T3],
	yield func(T1, T2, T3) R) wrap.Try[R] {
	return Yield3If(t1, t2, t3, nil, yield)
}

func Yield3If[T1, T2, T3, R any](t1 wrap.Try[T1], t2 wrap.Try[T2], t3 wrap.Try[T3],
	filter func(T1, T2, T3) bool,
	yield func(T1, T2, T3) R) wrap.Try[R] {

	if t1.IsFailure() {
		return wrap.FailFrom[T1, R](t1)
	}
	if t2.IsFailure() {
		return wrap.FailFrom[T2, R](t2)
	}
	if t3.IsFailure() {
		return wrap.FailFrom[T3, R](t3)
	}
	if filter != nil && !filter(t1.Value(), t2.Value(), t3.Value()) {
		return wrap.Fail[R](wrap.ErrFilterFailed)
	}
	return wrap.Success(yield(t1.Value(), t2.Value(), t3.Value()))
}

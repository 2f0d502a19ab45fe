package maybe

// ForComp2 calls apply with both values when both options are present
func ForComp2[T1, T2 any](o1 Option[T1], o2 Option[T2], apply func(T1, T2)) {
	ForComp2If(o1, o2, nil, apply)
}

// ForComp2If is ForComp2 gated by filter. filter runs once, only when
// both options are present. A nil filter accepts everything.
func ForComp2If[T1, T2 any](o1 Option[T1], o2 Option[T2],
	filter func(T1, T2) bool,
	apply func(T1, T2)) {

	if !o1.present || !o2.present {
		return
	}
	if filter != nil && !filter(o1.value, o2.value) {
		return
	}
	apply(o1.value, o2.value)
}

func Yield2[T1, T2, R any](o1 Option[T1], o2 Option[T2], yield func(T1, T2) R) Option[R] {
	return Yield2If(o1, o2, nil, yield)
}

func Yield2If[T1, T2, R any](o1 Option[T1], o2 Option[T2],
	filter func(T1, T2) bool,
	yield func(T1, T2) R) Option[R] {

	if !o1.present || !o2.present {
		return None[R]()
	}
	if filter != nil && !filter(o1.value, o2.value) {
		return None[R]()
	}
	return Some(yield(o1.value, o2.value))
}

func ForComp3[T1, T2, T3 any](o1 Option[T1], o2 Option[T2], o3 Option[T3], apply func(T1, T2, T3)) {
	ForComp3If(o1, o2, o3, nil, apply)
}

func ForComp3If[T1, T2, T3 any](o1 Option[T1], o2 Option[T2], o3 Option[T3],
	filter func(T1, T2, T3) bool,
	apply func(T1, T2, T3)) {

	if !o1.present || !o2.present || !o3.present {
		return
	}
	if filter != nil && !filter(o1.value, o2.value, o3.value) {
		return
	}
	apply(o1.value, o2.value, o3.value)
}

func Yield3[T1, T2, T3, R any](o1 Option[T1], o2 Option[T2], o3 Option[T3],
	yield func(T1, T2, T3) R) Option[R] {
	return Yield3If(o1, o2, o3, nil, yield)
}

func Yield3If[T1, T2, T3, R any](o1 Option[T1], o2 Option[T2], o3 Option[T3],
	filter func(T1, T2, T3) bool,
	yield func(T1, T2, T3) R) Option[R] {

	if !o1.present || !o2.present || !o3.present {
		return None[R]()
	}
	if filter != nil && !filter(o1.value, o2.value, o3.value) {
		return None[R]()
	}
	return Some(yield(o1.value, o2.value, o3.value))
}

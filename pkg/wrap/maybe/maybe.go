package maybe

func Map[T, M any](input Option[T], onSome func(T) M) Option[M] {
	if input.present {
		return Some(onSome(input.value))
	}
	return None[M]()
}

func FlatMap[T, M any](input Option[T], onSome func(T) Option[M]) Option[M] {
	if input.present {
		return onSome(input.value)
	}
	return None[M]()
}

func ForEach[T any](input Option[T], onSome func(T)) {
	if input.present {
		onSome(input.value)
	}
}

func Filter[T any](input Option[T], predicate func(T) bool) Option[T] {
	if input.present && predicate(input.value) {
		return input
	}
	return None[T]()
}

func Flatten[T any](input Option[Option[T]]) Option[T] {
	if input.present {
		return input.value
	}
	return None[T]()
}

// Recover returns the held value, or defaultValue when absent
func Recover[T any](input Option[T], defaultValue T) T {
	if input.present {
		return input.value
	}
	return defaultValue
}

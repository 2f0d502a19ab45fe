package box

// Box holds exactly one value and never changes after construction
type Box[T any] struct {
	value T
}

func New[T any](value T) Box[T] {
	return Box[T]{value: value}
}

func (b Box[T]) Value() T {
	return b.value
}

// Map applies onValue to the held value and boxes the result
func Map[T, M any](b Box[T], onValue func(T) M) Box[M] {
	return New(onValue(b.value))
}

// FlatMap applies onValue and returns its box as is
func FlatMap[T, M any](b Box[T], onValue func(T) Box[M]) Box[M] {
	return onValue(b.value)
}

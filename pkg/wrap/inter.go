package wrap

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// Id identifies the Try that produced the value
	Id() uuid.UUID
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the computation failed
	Err() error
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
	// IsFailure returns true if the computation failed
	IsFailure() bool
}

var _ WithError[int] = Try[int]{}

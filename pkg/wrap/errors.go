package wrap

import "fmt"

const Domain = "Wrappers"

const (
	CodeFilterFailed = iota + 1
	CodeEmptyTry
	CodeNilFailure
)

var (
	ErrFilterFailed = NewError(Domain, CodeFilterFailed, "Filter failed")
	ErrEmptyTry     = NewError(Domain, CodeEmptyTry, "Try was never initialised")
	ErrNilFailure   = NewError(Domain, CodeNilFailure, "Failure created with a nil error")
)

// Error is an error identified by a domain and a code
type Error struct {
	Domain  string
	Code    int
	Message string
}

func NewError(domain string, code int, message string) *Error {
	return &Error{Domain: domain, Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s(%d): %s", e.Domain, e.Code, e.Message)
}

// Is matches any *Error with the same domain and code
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok || other == nil {
		return false
	}
	return e.Domain == other.Domain && e.Code == other.Code
}

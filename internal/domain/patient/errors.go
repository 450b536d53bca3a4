package patient

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a missing or empty required parameter. It is a
// caller bug, not a retryable condition; callers wrap it with context via %w.
var ErrInvalidArgument = errors.New("invalid argument")

// AlreadyExistsError is returned when a create would collide with an existing
// record on the (family, given, dob) natural key.
type AlreadyExistsError struct {
	Family string
	Given  string
	Dob    Date
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("Patient %s %s, born the %s already exists.", e.Family, e.Given, e.Dob)
}

// NotFoundError is returned when an update or delete targets an id that does
// not exist in the store.
type NotFoundError struct {
	Family string
	Given  string
	Dob    Date
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Patient %s %s born the %s does not exist.", e.Family, e.Given, e.Dob)
}

// StorageError wraps a failure from the backing store. It is surfaced to the
// caller unchanged; retrying is the caller's decision.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("patient storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

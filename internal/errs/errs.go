// Package errs holds the error taxonomy shared by mindwell components.
package errs

import "fmt"

// ValidationError reports malformed caller input. It is always returned to
// the caller and never coerced away.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Invalid is shorthand for building a *ValidationError.
func Invalid(field string, value any, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// RemoteError wraps a failure of an external capability (classification or
// chat completion).
type RemoteError struct {
	Capability string // "classify", "complete"
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Capability, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// StorageError represents a failure reading or writing the persisted store.
type StorageError struct {
	Key string
	Op  string // "get", "set", "delete", "keys"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// CorruptValueError reports a stored value that is not valid JSON for its key.
type CorruptValueError struct {
	Key string
	Err error
}

func (e *CorruptValueError) Error() string {
	return fmt.Sprintf("corrupt value for %s: %v", e.Key, e.Err)
}

func (e *CorruptValueError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a missing record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

package domain

import (
	"errors"
	"fmt"
)

// NotFoundError means the requested entity, or a required parent referenced
// by external id, does not resolve under the current tenant scope. A row that
// exists under another tenant produces the same error as one that does not
// exist at all.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// NewNotFound returns a NotFoundError for the named entity type.
func NewNotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// InvalidArgumentError means a supplied value violates a stated invariant.
// Field names the offending input; Reason explains the violated bound.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewInvalidArgument returns an InvalidArgumentError for the given field.
func NewInvalidArgument(field, reason string) error {
	return &InvalidArgumentError{Field: field, Reason: reason}
}

// ConflictError means the operation lost a race or collided with existing
// state, e.g. a concurrent offer creation consumed the remaining allocation.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NewConflict returns a ConflictError with the given reason.
func NewConflict(reason string) error {
	return &ConflictError{Reason: reason}
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidArgument checks if the error is a validation error.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

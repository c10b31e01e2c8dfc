package models

import "errors"

var (
	// ErrAccessDenied is returned when reading the write-only password attribute.
	ErrAccessDenied = errors.New("password is not a readable attribute")
	// ErrUniquenessViolation wraps store errors for a duplicate email or username.
	ErrUniquenessViolation = errors.New("email or username already taken")
	// ErrAttributeResolution is returned when a related entity does not exist.
	ErrAttributeResolution = errors.New("related record not found")
	// ErrPreconditionViolation is returned when an operation needs rows that are not there.
	ErrPreconditionViolation = errors.New("precondition violated")
	// ErrDerivedField is returned when an update writes rendered HTML without its raw source.
	ErrDerivedField = errors.New("rendered html is derived from the raw field")
)

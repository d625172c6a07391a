package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// ValidationError names the request field that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a natural key already held by another record.
// Holder names that record so the user can resolve the clash.
type ConflictError struct {
	Resource string
	Key      string
	Holder   string
}

func (e *ConflictError) Error() string {
	if e.Holder == "" {
		return fmt.Sprintf("%s %s already exists", e.Resource, e.Key)
	}
	return fmt.Sprintf("%s %s is already used by %s", e.Resource, e.Key, e.Holder)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

func notFound(what, key string) error {
	if key == "" {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s %s %w", what, key, ErrNotFound)
}

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInstallationNotFound = errors.New("نصب یافت نشد")
	ErrOrderNotFound        = errors.New("سفارش یافت نشد")
	ErrValidation           = errors.New("validation failed")
)

// FieldError rejects a single request field. It matches ErrValidation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error { return []error{ErrValidation, e.Err} }

func invalidField(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

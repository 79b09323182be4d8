package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserProfileNotFound = errors.New("user profile not found")
	ErrEmailAlreadyExists  = errors.New("user with specified email already exists")

	ErrEmailRequired    = errors.New("email is mandatory")
	ErrEmailInvalid     = errors.New("email should be valid")
	ErrEmailTooLong     = errors.New("email is too long")
	ErrPasswordRequired = errors.New("password is mandatory")
	ErrPasswordLength   = errors.New("password length is out of bounds")
	ErrNameInvalid      = errors.New("name must contain only letters and spaces")
	ErrNameTooLong      = errors.New("name is too long")

	ErrNoFieldsUpdated     = errors.New("no fields updated")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrPasswordsDoNotMatch = errors.New("new passwords do not match")
)

// FieldError ties a validation failure to the request field it concerns.
// Callers discriminate with errors.Is/errors.As, never by message text.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

func newFieldError(field string, err error) error {
	return FieldError{Field: field, Err: err}
}

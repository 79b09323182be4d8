package service

import (
	"fmt"
	"regexp"
)

const (
	emailMaxLength     = 100
	firstNameMaxLength = 50
	lastNameMaxLength  = 100
)

var (
	emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,4}$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z ]+$`)
)

type PasswordPolicy struct {
	Name      string
	MinLength int
	MaxLength int
}

var (
	PasswordPolicyStandard = PasswordPolicy{Name: "standard", MinLength: 8, MaxLength: 20}
	PasswordPolicyLegacy   = PasswordPolicy{Name: "legacy", MinLength: 6, MaxLength: 15}
)

func PasswordPolicyByName(name string) (PasswordPolicy, bool) {
	switch name {
	case PasswordPolicyStandard.Name:
		return PasswordPolicyStandard, true
	case PasswordPolicyLegacy.Name:
		return PasswordPolicyLegacy, true
	default:
		return PasswordPolicy{}, false
	}
}

// Validator checks request fields against the profile constraints.
// The credentials endpoint keeps its own password policy for clients
// that still rely on the shorter historical bounds.
type Validator struct {
	passwordPolicy            PasswordPolicy
	credentialsPasswordPolicy PasswordPolicy
}

func NewValidator(passwordPolicy, credentialsPasswordPolicy PasswordPolicy) Validator {
	return Validator{
		passwordPolicy:            passwordPolicy,
		credentialsPasswordPolicy: credentialsPasswordPolicy,
	}
}

func (v Validator) ValidateEmail(email string) error {
	if email == "" {
		return newFieldError("email", ErrEmailRequired)
	}
	if !emailPattern.MatchString(email) {
		return newFieldError("email", ErrEmailInvalid)
	}
	if len(email) > emailMaxLength {
		return newFieldError("email", fmt.Errorf("%w: must be at most %d characters", ErrEmailTooLong, emailMaxLength))
	}
	return nil
}

func (v Validator) ValidatePassword(password string) error {
	return v.validatePassword(password, v.passwordPolicy)
}

func (v Validator) ValidateCredentialsPassword(password string) error {
	return v.validatePassword(password, v.credentialsPasswordPolicy)
}

func (v Validator) validatePassword(password string, policy PasswordPolicy) error {
	if password == "" {
		return newFieldError("password", ErrPasswordRequired)
	}
	if len(password) < policy.MinLength || len(password) > policy.MaxLength {
		return newFieldError("password", fmt.Errorf(
			"%w: must be between %d and %d characters long",
			ErrPasswordLength, policy.MinLength, policy.MaxLength,
		))
	}
	return nil
}

func (v Validator) ValidateFirstName(name string) error {
	return v.validateName("firstName", name, firstNameMaxLength)
}

func (v Validator) ValidateLastName(name string) error {
	return v.validateName("lastName", name, lastNameMaxLength)
}

func (v Validator) validateName(field, name string, maxLength int) error {
	if !namePattern.MatchString(name) {
		return newFieldError(field, ErrNameInvalid)
	}
	if len(name) > maxLength {
		return newFieldError(field, fmt.Errorf("%w: must be at most %d characters", ErrNameTooLong, maxLength))
	}
	return nil
}

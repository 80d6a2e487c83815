package application

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error categories. Every error returned by a service either wraps one of
// these or is an unexpected failure.
var (
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("authentication error")
	ErrForbidden  = errors.New("authorization error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrUpload     = errors.New("upload error")
)

type serviceError struct {
	kind error
	msg  string
	err  error
}

func (e *serviceError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *serviceError) Is(target error) bool {
	return target == e.kind
}

func (e *serviceError) Unwrap() error {
	return e.err
}

func newError(kind error, msg string) error {
	return &serviceError{kind: kind, msg: msg}
}

func validationErrorf(format string, args ...any) error {
	return newError(ErrValidation, fmt.Sprintf(format, args...))
}

func uploadError(err error) error {
	return &serviceError{kind: ErrUpload, msg: "avatar upload failed", err: err}
}

var (
	ErrInvalidCredentials  = newError(ErrAuth, "invalid credentials")
	ErrAdminRequired       = newError(ErrForbidden, "admin access required")
	ErrNotAssigned         = newError(ErrForbidden, "you are not assigned to this project")
	ErrUserNotFound        = newError(ErrNotFound, "user not found")
	ErrProjectNotFound     = newError(ErrNotFound, "project not found")
	ErrTicketNotFound      = newError(ErrNotFound, "ticket not found")
	ErrEmailTaken          = newError(ErrConflict, "email is already in use")
	ErrUsernameTaken       = newError(ErrConflict, "username is already in use")
	ErrAlreadyAssigned     = newError(ErrConflict, "user is already assigned to this project")
	ErrSelfDelete          = newError(ErrValidation, "admins cannot delete their own account")
	ErrInvalidRole         = newError(ErrValidation, "invalid role provided")
	ErrUnsupportedImage    = newError(ErrValidation, "unsupported file type, allowed: jpg, jpeg, png, gif")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

// notFound maps a missing record to target and passes every other error through.
func notFound(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// conflict maps a unique-key violation to target and passes every other error through.
func conflict(err error, target error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return target
	}
	return err
}

package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError reports a lookup whose target row is absent. The message
// carries the missing key so callers can surface it as-is.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// RepositoryError wraps a persistence-layer failure such as a constraint
// violation or a broken connection.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *RepositoryError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func ErrUserNotFoundByID(id uuid.UUID) error {
	return &NotFoundError{Msg: fmt.Sprintf("User with ID '%s' does not exist", id)}
}

func ErrUserNotFoundByEmail(email string) error {
	return &NotFoundError{Msg: fmt.Sprintf("User with email '%s' does not exist", email)}
}

func ErrProfileNotFound(userID uuid.UUID) error {
	return &NotFoundError{Msg: fmt.Sprintf("Profile with User ID %s does not exist", userID)}
}

func ErrProfileUpdateNotFound(userID uuid.UUID) error {
	return &NotFoundError{Msg: fmt.Sprintf("Cannot update - Profile with User ID %s does not exist", userID)}
}

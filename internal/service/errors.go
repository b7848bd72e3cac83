package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors returned by LibraryService.
// Callers check for specific conditions with errors.Is(); invalid-argument
// failures additionally match domain.ErrValidation as a class.
var (
	// ErrUserExists indicates a registration attempt for an ID that is
	// already registered.
	ErrUserExists = errors.New("user already exists")

	// ErrBookExists indicates the catalog already holds a book with the ISBN.
	ErrBookExists = errors.New("book already exists")

	// ErrBookNotFound indicates no book with the given ISBN is in the catalog.
	ErrBookNotFound = errors.New("book not found")

	// ErrUserNotFound indicates the user ID is not registered.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookAlreadyBorrowed indicates the book is currently on loan.
	ErrBookAlreadyBorrowed = errors.New("book is already borrowed")

	// ErrBookNotBorrowed indicates a return attempt for a book that is not on loan.
	ErrBookNotBorrowed = errors.New("book was not borrowed")

	// ErrNoReviews indicates the review backend holds no reviews for the book.
	ErrNoReviews = errors.New("no reviews found")

	// ErrReviewServiceUnavailable indicates the review backend failed. The
	// raw backend error is never surfaced, only this translation.
	ErrReviewServiceUnavailable = errors.New("review service unavailable")

	// ErrNotificationFailed indicates every delivery attempt was rejected by
	// the user's notification channel.
	ErrNotificationFailed = errors.New("notification failed")
)

// ServiceError wraps unexpected gateway failures with the operation that hit
// them, so consumers can differentiate failure sources with errors.As
// instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g. "register_user")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError creates a ServiceError for the given operation.
func newServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

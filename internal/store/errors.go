package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. a second user with the same ID).
	ErrDuplicate = errors.New("entity already exists")

	// ErrConflict is returned when an operation contradicts the stored
	// borrow state (borrowing a loaned book, returning an available one).
	ErrConflict = errors.New("conflicting state")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrBookNotFound indicates that the requested book does not exist in the store.
	ErrBookNotFound = fmt.Errorf("%w: book", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUserExists indicates that a user with the given ID is already registered.
	ErrUserExists = fmt.Errorf("%w: user", ErrDuplicate)

	// ErrBookExists indicates that a book with the given ISBN is already in the catalog.
	ErrBookExists = fmt.Errorf("%w: book", ErrDuplicate)

	// Borrow-state conflicts

	// ErrBookBorrowed indicates the store already holds a borrow record for the book.
	ErrBookBorrowed = fmt.Errorf("%w: book already borrowed", ErrConflict)

	// ErrBookNotBorrowed indicates the store holds no borrow record for the book.
	ErrBookNotBorrowed = fmt.Errorf("%w: book not borrowed", ErrConflict)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

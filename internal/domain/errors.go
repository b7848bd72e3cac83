package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error for every caller-input failure. Specific
// validation errors wrap it so callers can branch on the whole class with
// errors.Is(err, domain.ErrValidation) or on the exact cause.
var ErrValidation = errors.New("validation failed")

// Specific validation errors, one per rejectable input.
var (
	// ErrInvalidUser is returned when a user argument is absent.
	ErrInvalidUser = fmt.Errorf("%w: invalid user", ErrValidation)

	// ErrInvalidUserID is returned when a user ID is not exactly 12 decimal digits.
	ErrInvalidUserID = fmt.Errorf("%w: invalid user ID", ErrValidation)

	// ErrInvalidUserName is returned when a user's display name is empty.
	ErrInvalidUserName = fmt.Errorf("%w: invalid user name", ErrValidation)

	// ErrMissingNotifier is returned when a user has no notification channel.
	ErrMissingNotifier = fmt.Errorf("%w: invalid notification service", ErrValidation)

	// ErrInvalidBook is returned when a book argument is absent.
	ErrInvalidBook = fmt.Errorf("%w: invalid book", ErrValidation)

	// ErrInvalidISBN is returned when an ISBN fails the ISBN-13 format or checksum.
	ErrInvalidISBN = fmt.Errorf("%w: invalid ISBN", ErrValidation)

	// ErrInvalidTitle is returned when a book title is empty.
	ErrInvalidTitle = fmt.Errorf("%w: invalid title", ErrValidation)

	// ErrInvalidAuthor is returned when an author name fails the name grammar.
	ErrInvalidAuthor = fmt.Errorf("%w: invalid author", ErrValidation)

	// ErrInvalidBorrowState is returned when a book enters the catalog
	// already flagged as borrowed.
	ErrInvalidBorrowState = fmt.Errorf("%w: book with invalid borrowed state", ErrValidation)
)

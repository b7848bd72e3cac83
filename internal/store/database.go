package store

import (
	"context"

	"github.com/kestrelab/librarian-api/internal/domain"
)

// DatabaseService defines the persistence gateway for users, books, and
// borrow records. Every call is atomic and immediately consistent from the
// caller's point of view; no call leaves a half-updated entity behind.
type DatabaseService interface {
	// GetUserByID retrieves a registered user.
	// Returns ErrUserNotFound if no user with that ID is registered.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// RegisterUser saves a new user under the given ID.
	// Returns ErrUserExists if the ID is already taken.
	RegisterUser(ctx context.Context, id string, user *domain.User) error

	// GetBookByISBN retrieves a catalog entry.
	// Returns ErrBookNotFound if no book with that ISBN exists.
	GetBookByISBN(ctx context.Context, isbn string) (*domain.Book, error)

	// AddBook adds a new book to the catalog under the given ISBN.
	// Returns ErrBookExists if the ISBN is already in the catalog.
	AddBook(ctx context.Context, isbn string, book *domain.Book) error

	// BorrowBook records that the book is on loan to the user.
	// Returns ErrBookNotFound, ErrUserNotFound, or ErrBookBorrowed if the
	// record cannot be created.
	BorrowBook(ctx context.Context, isbn, userID string) error

	// ReturnBook removes the borrow record for the book.
	// Returns ErrBookNotFound or ErrBookNotBorrowed if there is nothing to remove.
	ReturnBook(ctx context.Context, isbn string) error
}

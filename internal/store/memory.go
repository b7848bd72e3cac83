package store

import (
	"context"
	"sync"

	"github.com/kestrelab/librarian-api/internal/domain"
)

// Verify interface compliance at compile time
var _ DatabaseService = (*MemoryStore)(nil)

// MemoryStore is a map-backed DatabaseService. It backs the composition root
// and integration-style tests; it is not a persistence layer. A single mutex
// keeps each call atomic.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
	books map[string]*domain.Book
	loans map[string]string // ISBN -> user ID
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*domain.User),
		books: make(map[string]*domain.Book),
		loans: make(map[string]string),
	}
}

// GetUserByID implements DatabaseService.
func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// RegisterUser implements DatabaseService.
func (s *MemoryStore) RegisterUser(_ context.Context, id string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; ok {
		return ErrUserExists
	}
	s.users[id] = user
	return nil
}

// GetBookByISBN implements DatabaseService.
func (s *MemoryStore) GetBookByISBN(_ context.Context, isbn string) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// AddBook implements DatabaseService.
func (s *MemoryStore) AddBook(_ context.Context, isbn string, book *domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[isbn]; ok {
		return ErrBookExists
	}
	s.books[isbn] = book
	return nil
}

// BorrowBook implements DatabaseService.
func (s *MemoryStore) BorrowBook(_ context.Context, isbn, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[isbn]; !ok {
		return ErrBookNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return ErrUserNotFound
	}
	if _, ok := s.loans[isbn]; ok {
		return ErrBookBorrowed
	}
	s.loans[isbn] = userID
	return nil
}

// ReturnBook implements DatabaseService.
func (s *MemoryStore) ReturnBook(_ context.Context, isbn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[isbn]; !ok {
		return ErrBookNotFound
	}
	if _, ok := s.loans[isbn]; !ok {
		return ErrBookNotBorrowed
	}
	delete(s.loans, isbn)
	return nil
}

// Borrower reports which user, if any, currently holds the book. Test helper.
func (s *MemoryStore) Borrower(isbn string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.loans[isbn]
	return userID, ok
}

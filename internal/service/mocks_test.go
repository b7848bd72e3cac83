package service

import (
	"context"

	"github.com/kestrelab/librarian-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockDatabaseService mocks the store.DatabaseService interface
type MockDatabaseService struct {
	mock.Mock
}

func (m *MockDatabaseService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockDatabaseService) RegisterUser(ctx context.Context, id string, user *domain.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockDatabaseService) GetBookByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockDatabaseService) AddBook(ctx context.Context, isbn string, book *domain.Book) error {
	args := m.Called(ctx, isbn, book)
	return args.Error(0)
}

func (m *MockDatabaseService) BorrowBook(ctx context.Context, isbn, userID string) error {
	args := m.Called(ctx, isbn, userID)
	return args.Error(0)
}

func (m *MockDatabaseService) ReturnBook(ctx context.Context, isbn string) error {
	args := m.Called(ctx, isbn)
	return args.Error(0)
}

// MockReviewService mocks the review.Service interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) GetReviewsForBook(ctx context.Context, isbn string) ([]string, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReviewService) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockNotifier mocks the notification.Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

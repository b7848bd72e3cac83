package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kestrelab/librarian-api/internal/domain"
	"github.com/kestrelab/librarian-api/internal/platform/logger"
	"github.com/kestrelab/librarian-api/internal/review"
	"github.com/kestrelab/librarian-api/internal/store"
)

// defaultNotifyAttempts bounds the notification retry loop when the caller
// does not configure a limit.
const defaultNotifyAttempts = 5

// LibraryService orchestrates users, books, and review notifications.
// Every operation validates its inputs before touching any gateway; a
// validation failure matches domain.ErrValidation and guarantees no gateway
// was called.
type LibraryService interface {
	// RegisterUser registers a new user.
	// Returns a domain validation error for a nil or malformed user, and
	// ErrUserExists when the ID is already registered.
	RegisterUser(ctx context.Context, user *domain.User) error

	// AddBook adds a new, unborrowed book to the catalog.
	// Returns a domain validation error for a nil or malformed book (a book
	// flagged as borrowed on entry is malformed), and ErrBookExists when the
	// ISBN is already in the catalog.
	AddBook(ctx context.Context, book *domain.Book) error

	// GetBookByISBN retrieves an available book on behalf of a user.
	// Returns ErrBookNotFound or ErrBookAlreadyBorrowed when the book cannot
	// be handed out. On success it also notifies the user with the book's
	// reviews as a best-effort side effect: every failure of that side
	// effect, of any kind, is swallowed and the book is returned regardless.
	GetBookByISBN(ctx context.Context, isbn, userID string) (*domain.Book, error)

	// BorrowBook marks the book as borrowed by the user and records the loan.
	// The entity flag and the store's borrow record change together or not
	// at all.
	BorrowBook(ctx context.Context, isbn, userID string) error

	// ReturnBook marks a borrowed book as available and removes the loan record.
	ReturnBook(ctx context.Context, isbn string) error

	// NotifyUserWithBookReviews sends the user every review of the book as a
	// single message, retrying delivery up to the configured attempt bound.
	// The review session is released exactly once on every exit path.
	// Returns ErrNoReviews, ErrReviewServiceUnavailable, or
	// ErrNotificationFailed for the respective workflow failures.
	NotifyUserWithBookReviews(ctx context.Context, isbn, userID string) error
}

// Verify interface compliance at compile time
var _ LibraryService = (*libraryServiceImpl)(nil)

// libraryServiceImpl implements the LibraryService interface.
type libraryServiceImpl struct {
	db             store.DatabaseService
	reviews        review.Service
	notifyAttempts int
	logger         *slog.Logger
}

// NewLibraryService creates a new LibraryService implementation.
// notifyAttempts bounds the notification retry loop; values below 1 fall
// back to the default of 5.
func NewLibraryService(
	db store.DatabaseService,
	reviews review.Service,
	notifyAttempts int,
	log *slog.Logger,
) LibraryService {
	if db == nil {
		panic("db cannot be nil")
	}
	if reviews == nil {
		panic("reviews cannot be nil")
	}
	if notifyAttempts < 1 {
		notifyAttempts = defaultNotifyAttempts
	}
	if log == nil {
		log = slog.Default()
	}

	return &libraryServiceImpl{
		db:             db,
		reviews:        reviews,
		notifyAttempts: notifyAttempts,
		logger:         log.With(slog.String("component", "library_service")),
	}
}

// RegisterUser implements LibraryService.RegisterUser.
func (s *libraryServiceImpl) RegisterUser(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user == nil {
		return domain.ErrInvalidUser
	}
	if err := user.Validate(); err != nil {
		return err
	}

	_, err := s.db.GetUserByID(ctx, user.ID)
	switch {
	case err == nil:
		log.Warn("attempted to register an existing user",
			slog.String("user_id", user.ID))
		return ErrUserExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Error("failed to look up user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID))
		return newServiceError("register_user", "failed to look up user", err)
	}

	if err := s.db.RegisterUser(ctx, user.ID, user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return ErrUserExists
		}
		log.Error("failed to register user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID))
		return newServiceError("register_user", "failed to register user", err)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("name", user.Name))
	return nil
}

// AddBook implements LibraryService.AddBook.
func (s *libraryServiceImpl) AddBook(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if book == nil {
		return domain.ErrInvalidBook
	}
	if err := book.Validate(); err != nil {
		return err
	}
	if book.Borrowed {
		// A book must enter the catalog available.
		return domain.ErrInvalidBorrowState
	}

	_, err := s.db.GetBookByISBN(ctx, book.ISBN)
	switch {
	case err == nil:
		log.Warn("attempted to add an existing book",
			slog.String("isbn", book.ISBN))
		return ErrBookExists
	case !errors.Is(err, store.ErrBookNotFound):
		log.Error("failed to look up book",
			slog.String("error", err.Error()),
			slog.String("isbn", book.ISBN))
		return newServiceError("add_book", "failed to look up book", err)
	}

	if err := s.db.AddBook(ctx, book.ISBN, book); err != nil {
		if errors.Is(err, store.ErrBookExists) {
			return ErrBookExists
		}
		log.Error("failed to add book",
			slog.String("error", err.Error()),
			slog.String("isbn", book.ISBN))
		return newServiceError("add_book", "failed to add book", err)
	}

	log.Info("book added",
		slog.String("isbn", book.ISBN),
		slog.String("title", book.Title))
	return nil
}

// GetBookByISBN implements LibraryService.GetBookByISBN.
func (s *libraryServiceImpl) GetBookByISBN(
	ctx context.Context,
	isbn, userID string,
) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.IsISBNValid(isbn) {
		return nil, domain.ErrInvalidISBN
	}
	if !domain.IsValidUserID(userID) {
		return nil, domain.ErrInvalidUserID
	}

	book, err := s.db.GetBookByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		log.Error("failed to look up book",
			slog.String("error", err.Error()),
			slog.String("isbn", isbn))
		return nil, newServiceError("get_book", "failed to look up book", err)
	}
	if book.Borrowed {
		return nil, ErrBookAlreadyBorrowed
	}

	// Best-effort side effect: the caller gets the book no matter what
	// happens here, so any failure is logged and dropped.
	if err := s.NotifyUserWithBookReviews(ctx, isbn, userID); err != nil {
		log.Warn("best-effort review notification failed",
			slog.String("error", err.Error()),
			slog.String("isbn", isbn),
			slog.String("user_id", userID))
	}

	return book, nil
}

// BorrowBook implements LibraryService.BorrowBook.
func (s *libraryServiceImpl) BorrowBook(ctx context.Context, isbn, userID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.IsISBNValid(isbn) {
		return domain.ErrInvalidISBN
	}

	book, err := s.db.GetBookByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return ErrBookNotFound
		}
		log.Error("failed to look up book",
			slog.String("error", err.Error()),
			slog.String("isbn", isbn))
		return newServiceError("borrow_book", "failed to look up book", err)
	}

	if !domain.IsValidUserID(userID) {
		return domain.ErrInvalidUserID
	}

	if _, err := s.db.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to look up user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return newServiceError("borrow_book", "failed to look up user", err)
	}

	if book.Borrowed {
		return ErrBookAlreadyBorrowed
	}

	// Record the loan first; the entity flag only flips once the record is
	// in place, so a gateway failure leaves no half-updated state.
	if err := s.db.BorrowBook(ctx, isbn, userID); err != nil {
		log.Error("failed to record loan",
			slog.String("error", err.Error()),
			slog.String("isbn", isbn),
			slog.String("user_id", userID))
		return newServiceError("borrow_book", "failed to record loan", err)
	}
	book.Borrow()

	log.Info("book borrowed",
		slog.String("isbn", isbn),
		slog.String("user_id", userID))
	return nil
}

// ReturnBook implements LibraryService.ReturnBook.
func (s *libraryServiceImpl) ReturnBook(ctx context.Context, isbn string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.IsISBNValid(isbn) {
		return domain.ErrInvalidISBN
	}

	book, err := s.db.GetBookByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return ErrBookNotFound
		}
		log.Error("failed to look up book",
			slog.String("error", err.Error()),
			slog.String("isbn", isbn))
		return newServiceError("return_book", "failed to look up book", err)
	}

	if !book.Borrowed {
		return ErrBookNotBorrowed
	}

	if err := s.db.ReturnBook(ctx, isbn); err != nil {
		log.Error("failed to remove loan record",
			slog.String("error", err.Error()),
			slog.String("isbn", isbn))
		return newServiceError("return_book", "failed to remove loan record", err)
	}
	book.Return()

	log.Info("book returned", slog.String("isbn", isbn))
	return nil
}

// NotifyUserWithBookReviews implements LibraryService.NotifyUserWithBookReviews.
func (s *libraryServiceImpl) NotifyUserWithBookReviews(
	ctx context.Context,
	isbn, userID string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.IsISBNValid(isbn) {
		return domain.ErrInvalidISBN
	}
	if !domain.IsValidUserID(userID) {
		return domain.ErrInvalidUserID
	}

	book, err := s.db.GetBookByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return ErrBookNotFound
		}
		log.Error("failed to look up book",
			slog.String("error", err.Error()),
			slog.String("isbn", isbn))
		return newServiceError("notify_reviews", "failed to look up book", err)
	}

	user, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to look up user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return newServiceError("notify_reviews", "failed to look up user", err)
	}
	if user.Notifier == nil {
		return domain.ErrMissingNotifier
	}

	// The review session is in use from here on; release it exactly once on
	// every exit path below.
	defer func() {
		if cerr := s.reviews.Close(); cerr != nil {
			log.Warn("failed to close review session",
				slog.String("error", cerr.Error()),
				slog.String("isbn", isbn))
		}
	}()

	reviews, err := s.reviews.GetReviewsForBook(ctx, isbn)
	if err != nil {
		// The raw backend error never escapes; callers only see the
		// translated unavailability.
		log.Error("review backend failed",
			slog.String("error", err.Error()),
			slog.String("isbn", isbn))
		return fmt.Errorf("%w: %s", ErrReviewServiceUnavailable, err)
	}
	if len(reviews) == 0 {
		return ErrNoReviews
	}

	message := formatReviewMessage(book.Title, reviews)

	for attempt := 1; attempt <= s.notifyAttempts; attempt++ {
		if err := user.Notifier.Send(ctx, message); err != nil {
			log.Warn("notification attempt failed",
				slog.String("error", err.Error()),
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", s.notifyAttempts),
				slog.String("user_id", userID))
			continue
		}

		log.Info("user notified with book reviews",
			slog.String("isbn", isbn),
			slog.String("user_id", userID),
			slog.Int("reviews", len(reviews)))
		return nil
	}

	return fmt.Errorf("%w: %d attempts", ErrNotificationFailed, s.notifyAttempts)
}

// formatReviewMessage composes the single notification message for a book's
// reviews: a header naming the title, then each review on its own line.
func formatReviewMessage(title string, reviews []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reviews for '%s':", title)
	for _, r := range reviews {
		b.WriteString("\n")
		b.WriteString(r)
	}
	return b.String()
}

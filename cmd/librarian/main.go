// Command librarian wires the library service to its in-process gateway
// implementations and runs a short scripted exercise of the operations. It
// is the development composition root; real deployments supply their own
// database, review, and notification backends.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kestrelab/librarian-api/internal/config"
	"github.com/kestrelab/librarian-api/internal/domain"
	"github.com/kestrelab/librarian-api/internal/notification"
	"github.com/kestrelab/librarian-api/internal/platform/logger"
	"github.com/kestrelab/librarian-api/internal/review"
	"github.com/kestrelab/librarian-api/internal/service"
	"github.com/kestrelab/librarian-api/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "librarian: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	log.Info("configuration loaded",
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Int("notification_max_attempts", cfg.Notification.MaxAttempts))

	const (
		isbn   = "9780306406157"
		userID = "123456789012"
	)

	db := store.NewMemoryStore()
	reviews := review.NewStaticSource(map[string][]string{
		isbn: {"Great book", "Loved it"},
	})
	library := service.NewLibraryService(db, reviews, cfg.Notification.MaxAttempts, log)

	ctx := context.Background()

	user, err := domain.NewUser(userID, "Alice", notification.NewSlogNotifier(userID, log))
	if err != nil {
		return err
	}
	if err := library.RegisterUser(ctx, user); err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	book, err := domain.NewBook(isbn, "Introduction to Error Analysis", "John R. Taylor")
	if err != nil {
		return err
	}
	if err := library.AddBook(ctx, book); err != nil {
		return fmt.Errorf("add book: %w", err)
	}

	if _, err := library.GetBookByISBN(ctx, isbn, userID); err != nil {
		return fmt.Errorf("get book: %w", err)
	}

	if err := library.BorrowBook(ctx, isbn, userID); err != nil {
		return fmt.Errorf("borrow book: %w", err)
	}
	if err := library.ReturnBook(ctx, isbn); err != nil {
		return fmt.Errorf("return book: %w", err)
	}

	log.Info("scripted exercise complete", slog.String("isbn", isbn))
	return nil
}

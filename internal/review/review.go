// Package review defines the gateway to the external book-review backend.
// The core reads review text through this interface and releases the session
// when it is done; it never writes reviews.
package review

import (
	"context"
	"errors"
)

// Common review gateway errors.
var (
	// ErrUnavailable indicates the review backend could not serve the
	// request. Implementations wrap this so callers can errors.Is on it.
	ErrUnavailable = errors.New("review backend unavailable")

	// ErrClosed is returned when a session is used after Close.
	ErrClosed = errors.New("review session closed")
)

// Service is a session with the review backend. A session must be closed
// exactly once; Close releases whatever connection or handle the
// implementation holds.
type Service interface {
	// GetReviewsForBook returns the reviews recorded for the given ISBN, in
	// backend order. An empty slice means no reviews exist. Returns an error
	// wrapping ErrUnavailable when the backend cannot be reached.
	GetReviewsForBook(ctx context.Context, isbn string) ([]string, error)

	// Close releases the session.
	Close() error
}

package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Verify interface compliance at compile time
var _ Notifier = (*SlogNotifier)(nil)

// SlogNotifier is the development transport: it writes each delivery to the
// structured log instead of a real channel. Every delivery gets a unique
// delivery ID so retries of the same message remain distinguishable in logs.
type SlogNotifier struct {
	userID string
	logger *slog.Logger
}

// NewSlogNotifier creates a Notifier that logs deliveries for the given user.
func NewSlogNotifier(userID string, logger *slog.Logger) *SlogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogNotifier{
		userID: userID,
		logger: logger.With(slog.String("component", "slog_notifier")),
	}
}

// Send implements Notifier. It never fails.
func (n *SlogNotifier) Send(ctx context.Context, message string) error {
	n.logger.InfoContext(ctx, "notification delivered",
		slog.String("delivery_id", uuid.New().String()),
		slog.String("user_id", n.userID),
		slog.String("message", message))
	return nil
}

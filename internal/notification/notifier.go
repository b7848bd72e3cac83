// Package notification defines the outbound notification capability used to
// deliver messages to library users. Each user owns a Notifier; the core
// never knows which transport sits behind it.
package notification

import (
	"context"
	"errors"
)

// ErrDeliveryFailed is returned by a Notifier when a message could not be
// handed to the underlying transport. Callers may retry; the Notifier itself
// never retries.
var ErrDeliveryFailed = errors.New("notification delivery failed")

// Notifier delivers a single free-text message to one user.
type Notifier interface {
	// Send delivers the message. Returns an error wrapping ErrDeliveryFailed
	// when the transport rejects the delivery.
	Send(ctx context.Context, message string) error
}

package domain

import (
	"github.com/kestrelab/librarian-api/internal/notification"
)

// User represents a library patron. Identity is a 12-digit numeric string
// assigned externally; it never changes after registration. Each user owns
// the notification channel used to reach them.
type User struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Notifier notification.Notifier `json:"-"`
}

// NewUser creates a User and validates it.
// Returns an error if validation fails.
func NewUser(id, name string, notifier notification.Notifier) (*User, error) {
	user := &User{
		ID:       id,
		Name:     name,
		Notifier: notifier,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if !IsValidUserID(u.ID) {
		return ErrInvalidUserID
	}

	if u.Name == "" {
		return ErrInvalidUserName
	}

	if u.Notifier == nil {
		return ErrMissingNotifier
	}

	return nil
}

package domain

import (
	"context"
	"errors"
	"testing"
)

// stubNotifier is a minimal notification channel for entity tests.
type stubNotifier struct{}

func (stubNotifier) Send(_ context.Context, _ string) error { return nil }

func TestNewUser(t *testing.T) {
	user, err := NewUser("123456789012", "Alice", stubNotifier{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID != "123456789012" {
		t.Errorf("Expected ID 123456789012, got %s", user.ID)
	}
	if user.Name != "Alice" {
		t.Errorf("Expected name Alice, got %s", user.Name)
	}
	if user.Notifier == nil {
		t.Error("Expected a notifier, got nil")
	}

	// Invalid ID
	_, err = NewUser("123ABC", "Alice", stubNotifier{})
	if !errors.Is(err, ErrInvalidUserID) {
		t.Errorf("Expected error %v, got %v", ErrInvalidUserID, err)
	}

	// Empty name
	_, err = NewUser("123456789012", "", stubNotifier{})
	if !errors.Is(err, ErrInvalidUserName) {
		t.Errorf("Expected error %v, got %v", ErrInvalidUserName, err)
	}

	// Missing notifier
	_, err = NewUser("123456789012", "Alice", nil)
	if !errors.Is(err, ErrMissingNotifier) {
		t.Errorf("Expected error %v, got %v", ErrMissingNotifier, err)
	}
}

func TestUserValidate_ErrorsMatchValidationClass(t *testing.T) {
	user := &User{ID: "bad", Name: "Alice", Notifier: stubNotifier{}}

	err := user.Validate()
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation-class error, got %v", err)
	}
}

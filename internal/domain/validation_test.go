package domain

import "testing"

func TestIsValidUserID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"123456789012", true},
		{"000000000000", true},
		{"12345678901", false},    // 11 digits
		{"1234567890123", false},  // 13 digits
		{"12345678901a", false},   // contains letter
		{"abcdefghijkl", false},   // not digits
		{"            12", false}, // spaces and digits
		{" 23456789012", false},   // leading space
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidUserID(tt.id); got != tt.want {
			t.Errorf("IsValidUserID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsISBNValid(t *testing.T) {
	tests := []struct {
		isbn string
		want bool
	}{
		{"9780306406157", true},     // valid ISBN-13
		{"978-0-306-40615-7", true}, // hyphens are stripped
		{"9780136019701", true},     // another valid checksum
		{"9780306406158", false},    // wrong check digit
		{"978030640615", false},     // 12 digits
		{"97803064061570", false},   // 14 digits
		{"978030640615a", false},    // non-digit
		{"abcdefghijklm", false},    // not digits
		{"123", false},
		{"", false},
		{"-------------", false}, // only hyphens
	}

	for _, tt := range tests {
		if got := IsISBNValid(tt.isbn); got != tt.want {
			t.Errorf("IsISBNValid(%q) = %v, want %v", tt.isbn, got, tt.want)
		}
	}
}

func TestIsAuthorValid(t *testing.T) {
	valid := []string{
		"John",
		"Mary-Jane",
		"O'Connor",
		"J.R.R. Tolkien",
		"George R R Martin",
		"Anne-Marie O'Neil Jr",
	}
	for _, name := range valid {
		if !IsAuthorValid(name) {
			t.Errorf("IsAuthorValid(%q) = false, want true", name)
		}
	}

	invalid := []string{
		"",
		"-John",
		"'John",
		".John",
		" John",
		"John-",
		"John'",
		"John.",
		"John ",
		"John123",
		"Mary@Jane",
		"Alice!",
		"Mary--Jane",
		"O''Connor",
		"John..Doe",
		"Mary  Jane",
	}
	for _, name := range invalid {
		if IsAuthorValid(name) {
			t.Errorf("IsAuthorValid(%q) = true, want false", name)
		}
	}
}

package domain

// Book represents a catalog entry. The Borrowed flag is the entity half of
// the borrow state; the database gateway keeps the matching borrow record,
// and the two only change together through the library service.
type Book struct {
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Borrowed bool   `json:"borrowed"`
}

// NewBook creates an unborrowed Book and validates it.
// Returns an error if validation fails.
func NewBook(isbn, title, author string) (*Book, error) {
	book := &Book{
		ISBN:   isbn,
		Title:  title,
		Author: author,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
// Returns an error if any field fails validation. The Borrowed flag is not
// part of field validation; whether a given state is acceptable depends on
// the operation and is enforced by the service.
func (b *Book) Validate() error {
	if !IsISBNValid(b.ISBN) {
		return ErrInvalidISBN
	}

	if b.Title == "" {
		return ErrInvalidTitle
	}

	if !IsAuthorValid(b.Author) {
		return ErrInvalidAuthor
	}

	return nil
}

// Borrow marks the book as borrowed. Guarding against double-borrow is the
// service's job; the entity just records the transition.
func (b *Book) Borrow() {
	b.Borrowed = true
}

// Return marks the book as available again.
func (b *Book) Return() {
	b.Borrowed = false
}

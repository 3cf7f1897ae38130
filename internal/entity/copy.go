package entity

import "fmt"

// BookRef points at a Book by its internal ID. It does not own the book:
// once the book is deleted the ref is stale but keeps the title it was
// created with.
type BookRef struct {
	BookID string `json:"book_id" validate:"required"`
	Title  string `json:"title"`
}

// BookCopy is a single loanable instance of a Book.
type BookCopy struct {
	ID   string  `json:"id" validate:"required"`
	Book BookRef `json:"book"`
}

// String shows the copy with the title held by its ref.
func (c BookCopy) String() string {
	return fmt.Sprintf("BookCopy [ID: %s, Book: %s]", c.ID, c.Book.Title)
}

package entity

import "fmt"

// Book is a catalogue entry. ISBN is not unique across books.
type Book struct {
	ID     string `json:"id" validate:"required"`
	ISBN   string `json:"isbn" validate:"required,isbn"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Genre  string `json:"genre" validate:"required"`
}

// Ref returns a reference to b suitable for storing in a BookCopy.
func (b Book) Ref() BookRef {
	return BookRef{BookID: b.ID, Title: b.Title}
}

// String renders b in the catalogue listing format.
func (b Book) String() string {
	return fmt.Sprintf("Book [ISBN: %s, Title: %s, Author: %s, Genre: %s]", b.ISBN, b.Title, b.Author, b.Genre)
}

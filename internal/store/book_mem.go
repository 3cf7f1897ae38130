package store

import (
	"context"
	"strings"

	"bookmenu/internal/entity"
)

func (m *Memory) AddBook(b entity.Book) {
	m.books = append(m.books, b)
}

// Books returns a copy of the book collection.
func (m *Memory) Books() []entity.Book {
	return append([]entity.Book(nil), m.books...)
}

func (m *Memory) FindBooksByISBN(ctx context.Context, isbn string) ([]entity.Book, error) {
	return findAll(ctx, m.books, func(b entity.Book) bool { return b.ISBN == isbn })
}

func (m *Memory) FindBooksByTitle(ctx context.Context, title string) ([]entity.Book, error) {
	return findAll(ctx, m.books, func(b entity.Book) bool { return strings.Contains(b.Title, title) })
}

func (m *Memory) DeleteFirstBookByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	return removeFirst(ctx, &m.books, func(b entity.Book) bool { return b.ISBN == isbn })
}

func (m *Memory) DeleteFirstBookByTitle(ctx context.Context, title string) (entity.Book, error) {
	return removeFirst(ctx, &m.books, func(b entity.Book) bool { return b.Title == title })
}

// ResolveBook looks up the book a copy points at. ok is false when the
// book has been deleted since the copy was created.
func (m *Memory) ResolveBook(ctx context.Context, ref entity.BookRef) (entity.Book, bool) {
	books, err := findAll(ctx, m.books, func(b entity.Book) bool { return b.ID == ref.BookID })
	if err != nil || len(books) == 0 {
		return entity.Book{}, false
	}
	return books[0], true
}

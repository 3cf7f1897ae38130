package library

import (
	"context"
	"fmt"
	"log/slog"

	"bookmenu/internal/entity"
)

// Service provides the library operations on top of the repositories.
type Service struct {
	books     BookRepository
	copies    CopyRepository
	customers CustomerRepository
	log       *slog.Logger
}

// NewService creates a new library service. A nil logger discards output.
func NewService(books BookRepository, copies CopyRepository, customers CustomerRepository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{books: books, copies: copies, customers: customers, log: log}
}

func (s *Service) SearchBooksByISBN(ctx context.Context, isbn string) ([]entity.Book, error) {
	books, err := s.books.FindBooksByISBN(ctx, isbn)
	if err != nil {
		return nil, fmt.Errorf("search books by isbn: %w", err)
	}
	s.log.DebugContext(ctx, "search books by isbn", "isbn", isbn, "matches", len(books))
	return books, nil
}

func (s *Service) SearchBooksByTitle(ctx context.Context, title string) ([]entity.Book, error) {
	books, err := s.books.FindBooksByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("search books by title: %w", err)
	}
	s.log.DebugContext(ctx, "search books by title", "title", title, "matches", len(books))
	return books, nil
}

func (s *Service) DeleteBookByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	book, err := s.books.DeleteFirstBookByISBN(ctx, isbn)
	if err != nil {
		return entity.Book{}, fmt.Errorf("delete book by isbn %q: %w", isbn, err)
	}
	s.log.DebugContext(ctx, "deleted book", "id", book.ID, "isbn", book.ISBN, "title", book.Title)
	return book, nil
}

// DeleteBookByTitle requires the full title; a substring that would match
// in SearchBooksByTitle does not delete anything.
func (s *Service) DeleteBookByTitle(ctx context.Context, title string) (entity.Book, error) {
	book, err := s.books.DeleteFirstBookByTitle(ctx, title)
	if err != nil {
		return entity.Book{}, fmt.Errorf("delete book by title %q: %w", title, err)
	}
	s.log.DebugContext(ctx, "deleted book", "id", book.ID, "isbn", book.ISBN, "title", book.Title)
	return book, nil
}

func (s *Service) SearchCopiesByID(ctx context.Context, id string) ([]entity.BookCopy, error) {
	copies, err := s.copies.FindCopiesByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("search copies by id: %w", err)
	}
	s.log.DebugContext(ctx, "search copies by id", "id", id, "matches", len(copies))
	for _, c := range copies {
		if _, ok := s.books.ResolveBook(ctx, c.Book); !ok {
			s.log.DebugContext(ctx, "copy references a deleted book", "copy", c.ID, "book_id", c.Book.BookID)
		}
	}
	return copies, nil
}

func (s *Service) DeleteCopyByID(ctx context.Context, id string) (entity.BookCopy, error) {
	c, err := s.copies.DeleteFirstCopyByID(ctx, id)
	if err != nil {
		return entity.BookCopy{}, fmt.Errorf("delete copy %q: %w", id, err)
	}
	s.log.DebugContext(ctx, "deleted copy", "id", c.ID)
	return c, nil
}

func (s *Service) SearchCustomersByID(ctx context.Context, id string) ([]entity.Customer, error) {
	customers, err := s.customers.FindCustomersByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("search customers by id: %w", err)
	}
	s.log.DebugContext(ctx, "search customers by id", "id", id, "matches", len(customers))
	return customers, nil
}

func (s *Service) DeleteCustomerByID(ctx context.Context, id string) (entity.Customer, error) {
	c, err := s.customers.DeleteFirstCustomerByID(ctx, id)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("delete customer %q: %w", id, err)
	}
	s.log.DebugContext(ctx, "deleted customer", "id", c.ID)
	return c, nil
}

package library

import (
	"context"

	"bookmenu/internal/entity"
)

//go:generate mockgen -destination=mocks/mock_ports.go -package=mocks bookmenu/internal/library BookRepository,CopyRepository,CustomerRepository

// BookRepository defines the contract for book storage.
type BookRepository interface {
	// Books whose ISBN equals isbn, in insertion order.
	FindBooksByISBN(ctx context.Context, isbn string) ([]entity.Book, error)
	// Books whose title contains title, in insertion order.
	FindBooksByTitle(ctx context.Context, title string) ([]entity.Book, error)
	// Looks up the book ref points at; false once that book is deleted.
	ResolveBook(ctx context.Context, ref entity.BookRef) (entity.Book, bool)
	// Removes the first book whose ISBN equals isbn.
	DeleteFirstBookByISBN(ctx context.Context, isbn string) (entity.Book, error)
	// Removes the first book whose title equals title.
	DeleteFirstBookByTitle(ctx context.Context, title string) (entity.Book, error)
}

// CopyRepository defines the contract for book copy storage.
type CopyRepository interface {
	FindCopiesByID(ctx context.Context, id string) ([]entity.BookCopy, error)
	DeleteFirstCopyByID(ctx context.Context, id string) (entity.BookCopy, error)
}

// CustomerRepository defines the contract for customer storage.
type CustomerRepository interface {
	FindCustomersByID(ctx context.Context, id string) ([]entity.Customer, error)
	DeleteFirstCustomerByID(ctx context.Context, id string) (entity.Customer, error)
}

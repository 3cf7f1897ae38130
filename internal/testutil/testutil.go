package testutil

import (
	"testing"

	"bookmenu/internal/entity"
	"bookmenu/internal/library"
	"bookmenu/internal/store"
)

// TestBook is a valid book for mocked repositories
var TestBook = entity.Book{
	ID:     "book-hobbit",
	ISBN:   "978-0-8212-2312-3",
	Title:  "The Hobbit",
	Author: "J.R.R. Tolkien",
	Genre:  "Fantasy",
}

// TestCopy references TestBook
var TestCopy = entity.BookCopy{ID: "bc5", Book: TestBook.Ref()}

// TestCustomer is a valid customer for mocked repositories
var TestCustomer = entity.Customer{ID: "c1", Name: "John Doe"}

// SeededMemory returns a store filled with the sample data.
func SeededMemory(t testing.TB) *store.Memory {
	t.Helper()
	m := store.NewMemory()
	if err := store.Seed(m); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return m
}

// SeededService returns a service backed by SeededMemory together with the
// store itself so tests can inspect it.
func SeededService(t testing.TB) (*library.Service, *store.Memory) {
	t.Helper()
	m := SeededMemory(t)
	return library.NewService(m, m, m, nil), m
}

// Package store implements the library repositories in memory.
package store

import (
	"context"
	"slices"

	"bookmenu/internal/entity"
	"bookmenu/internal/library"
)

// Memory owns the three ordered collections. Insertion order is the scan
// order for every lookup and delete. Keys are not unique: lookups are
// linear scans and deletes remove only the first match.
//
// Memory is not safe for concurrent use.
type Memory struct {
	books     []entity.Book
	copies    []entity.BookCopy
	customers []entity.Customer
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Counts() (books, copies, customers int) {
	return len(m.books), len(m.copies), len(m.customers)
}

// findAll returns every element of items for which match holds, in order.
func findAll[T any](ctx context.Context, items []T, match func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []T
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// removeFirst deletes the first element of *items for which match holds.
func removeFirst[T any](ctx context.Context, items *[]T, match func(T) bool) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	i := slices.IndexFunc(*items, match)
	if i < 0 {
		return zero, library.ErrNotFound
	}
	removed := (*items)[i]
	*items = slices.Delete(*items, i, i+1)
	return removed, nil
}

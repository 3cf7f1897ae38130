package console

import (
	"context"
	"errors"
	"fmt"

	"bookmenu/internal/library"
)

func showMatches[T fmt.Stringer](m *Menu, header, miss string, items []T) error {
	if len(items) == 0 {
		return m.render.NotFound(m.out, miss)
	}
	list := make([]fmt.Stringer, len(items))
	for i, it := range items {
		list[i] = it
	}
	return m.render.Matches(m.out, header, list)
}

func (m *Menu) showDeleted(err error, ok, miss string) error {
	if errors.Is(err, library.ErrNotFound) {
		return m.render.NotFound(m.out, miss)
	}
	if err != nil {
		return err
	}
	return m.render.Deleted(m.out, ok)
}

func (m *Menu) searchBooksByISBN(ctx context.Context) error {
	isbn, err := m.in.Token("Enter the ISBN: ")
	if err != nil {
		return err
	}
	books, err := m.svc.SearchBooksByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	return showMatches(m, "Matching books:", "No books found with the given ISBN.", books)
}

func (m *Menu) deleteBookByISBN(ctx context.Context) error {
	isbn, err := m.in.Token("Enter the ISBN: ")
	if err != nil {
		return err
	}
	_, err = m.svc.DeleteBookByISBN(ctx, isbn)
	return m.showDeleted(err, "Book deleted successfully.", "No book found with the given ISBN.")
}

func (m *Menu) searchBooksByTitle(ctx context.Context) error {
	title, err := m.in.Token("Enter the title: ")
	if err != nil {
		return err
	}
	books, err := m.svc.SearchBooksByTitle(ctx, title)
	if err != nil {
		return err
	}
	return showMatches(m, "Matching books:", "No books found with the given title.", books)
}

// Titles are read as a single token, so only one-word titles can be deleted
// from the console.
func (m *Menu) deleteBookByTitle(ctx context.Context) error {
	title, err := m.in.Token("Enter the title: ")
	if err != nil {
		return err
	}
	_, err = m.svc.DeleteBookByTitle(ctx, title)
	return m.showDeleted(err, "Book deleted successfully.", "No book found with the given title.")
}

func (m *Menu) searchCopiesByID(ctx context.Context) error {
	id, err := m.in.Token("Enter the ID: ")
	if err != nil {
		return err
	}
	copies, err := m.svc.SearchCopiesByID(ctx, id)
	if err != nil {
		return err
	}
	return showMatches(m, "Matching book copies:", "No book copies found with the given ID.", copies)
}

func (m *Menu) deleteCopyByID(ctx context.Context) error {
	id, err := m.in.Token("Enter the ID: ")
	if err != nil {
		return err
	}
	_, err = m.svc.DeleteCopyByID(ctx, id)
	return m.showDeleted(err, "Book copy deleted successfully.", "No book copy found with the given ID.")
}

func (m *Menu) searchCustomersByID(ctx context.Context) error {
	id, err := m.in.Token("Enter the ID: ")
	if err != nil {
		return err
	}
	customers, err := m.svc.SearchCustomersByID(ctx, id)
	if err != nil {
		return err
	}
	return showMatches(m, "Matching customers:", "No customers found with the given ID.", customers)
}

func (m *Menu) deleteCustomerByID(ctx context.Context) error {
	id, err := m.in.Token("Enter the ID: ")
	if err != nil {
		return err
	}
	_, err = m.svc.DeleteCustomerByID(ctx, id)
	return m.showDeleted(err, "Customer deleted successfully.", "No customer found with the given ID.")
}

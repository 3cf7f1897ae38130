package store

import (
	"errors"
	"fmt"

	"bookmenu/internal/entity"

	"github.com/google/uuid"
)

var sampleCustomers = []entity.Customer{
	{ID: "c1", Name: "John Doe"},
	{ID: "c2", Name: "Max Mustermann"},
	{ID: "c3", Name: "Jane Smith"},
	{ID: "c4", Name: "Emily Johnson"},
	{ID: "c5", Name: "Michael Brown"},
}

// Two books intentionally share 978-0-8212-2312-3.
var sampleBooks = []entity.Book{
	{ISBN: "978-3-7306-0000-9", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Novel"},
	{ISBN: "978-0-8212-2312-3", Title: "Im Westen nichts Neues", Author: "Erich Maria Remarque", Genre: "Novel"},
	{ISBN: "978-8-4397-0315-0", Title: "Kujo", Author: "Stephen King", Genre: "Horror"},
	{ISBN: "978-0-8212-2312-3", Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy"},
	{ISBN: "978-0-3991-2896-7", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction"},
	{ISBN: "978-0-2978-5938-3", Title: "Gone Girl", Author: "Gillian Flynn", Genre: "Thriller"},
	{ISBN: "978-0-3120-2282-2", Title: "The Silence of the Lambs", Author: "Thomas Harris", Genre: "Thriller"},
}

// Copies reference books by their position in sampleBooks.
var sampleCopies = []struct {
	id   string
	book int
}{
	{"bc1", 0},
	{"bc2", 1},
	{"bc3", 1},
	{"bc4", 2},
	{"bc5", 3},
	{"bc6", 4},
	{"bc7", 6},
	{"bc8", 1},
}

// Seed fills m with the fixed sample data. It must run once, on an empty
// store, before any lookup.
func Seed(m *Memory) error {
	for _, c := range sampleCustomers {
		if err := check(c); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.ID, err)
		}
		m.AddCustomer(c)
	}

	books := make([]entity.Book, len(sampleBooks))
	for i, b := range sampleBooks {
		b.ID = uuid.NewString()
		if err := check(b); err != nil {
			return fmt.Errorf("seed book %q: %w", b.Title, err)
		}
		books[i] = b
		m.AddBook(b)
	}

	for _, sc := range sampleCopies {
		c := entity.BookCopy{ID: sc.id, Book: books[sc.book].Ref()}
		if err := check(c); err != nil {
			return fmt.Errorf("seed copy %s: %w", c.ID, err)
		}
		m.AddCopy(c)
	}
	return nil
}

func check(v interface{}) error {
	verrs := entity.Validate(v)
	if len(verrs) == 0 {
		return nil
	}
	errs := make([]error, len(verrs))
	for i, e := range verrs {
		errs[i] = e
	}
	return errors.Join(errs...)
}

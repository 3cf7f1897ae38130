package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"bookmenu/internal/config"
	"bookmenu/internal/store"
	"bookmenu/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mainBanner      = "Main Menu:\n| 1: Books | 2: Book Copies | 3: Customers |\n"
	booksBanner     = "Books Menu:\n| 1: Search by ISBN | 2: Delete by ISBN | 3: Search by Title | 4: Delete by Title |\n"
	copiesBanner    = "Book Copies Menu:\n| 1: Search by ID | 2: Delete by ID |\n"
	customersBanner = "Customers Menu:\n| 1: Search by ID | 2: Delete by ID |\n"
	choicePrompt    = "Enter your choice: "
)

func runMenu(t *testing.T, input string, output config.Output) (string, *store.Memory) {
	t.Helper()
	svc, mem := testutil.SeededService(t)
	var out bytes.Buffer
	m := NewMenu(svc, NewInput(strings.NewReader(input), &out), &out, NewRenderer(output), nil)
	require.NoError(t, m.Run(context.Background()))
	return out.String(), mem
}

func TestMenu_Run(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "search books by isbn with duplicates",
			input: "1 1 978-0-8212-2312-3",
			want: mainBanner + choicePrompt + booksBanner + choicePrompt + "Enter the ISBN: " +
				"Matching books:\n" +
				"Book [ISBN: 978-0-8212-2312-3, Title: Im Westen nichts Neues, Author: Erich Maria Remarque, Genre: Novel]\n" +
				"Book [ISBN: 978-0-8212-2312-3, Title: The Hobbit, Author: J.R.R. Tolkien, Genre: Fantasy]\n",
		},
		{
			name:  "search books by isbn not found",
			input: "1\n1\n000\n",
			want:  mainBanner + choicePrompt + booksBanner + choicePrompt + "Enter the ISBN: No books found with the given ISBN.\n",
		},
		{
			name:  "delete book by isbn",
			input: "1 2 978-0-3991-2896-7",
			want:  mainBanner + choicePrompt + booksBanner + choicePrompt + "Enter the ISBN: Book deleted successfully.\n",
		},
		{
			name:  "delete book by isbn not found",
			input: "1 2 nope",
			want:  mainBanner + choicePrompt + booksBanner + choicePrompt + "Enter the ISBN: No book found with the given ISBN.\n",
		},
		{
			name:  "search books by title substring",
			input: "1 3 Hobbit",
			want: mainBanner + choicePrompt + booksBanner + choicePrompt + "Enter the title: " +
				"Matching books:\n" +
				"Book [ISBN: 978-0-8212-2312-3, Title: The Hobbit, Author: J.R.R. Tolkien, Genre: Fantasy]\n",
		},
		{
			name:  "search books by title not found",
			input: "1 3 Zzz",
			want:  mainBanner + choicePrompt + booksBanner + choicePrompt + "Enter the title: No books found with the given title.\n",
		},
		{
			name:  "delete book by title substring fails",
			input: "1 4 Hobbit",
			want:  mainBanner + choicePrompt + booksBanner + choicePrompt + "Enter the title: No book found with the given title.\n",
		},
		{
			name:  "delete book by exact title",
			input: "1 4 Kujo",
			want:  mainBanner + choicePrompt + booksBanner + choicePrompt + "Enter the title: Book deleted successfully.\n",
		},
		{
			name:  "search copy",
			input: "2 1 bc7",
			want: mainBanner + choicePrompt + copiesBanner + choicePrompt + "Enter the ID: " +
				"Matching book copies:\nBookCopy [ID: bc7, Book: The Silence of the Lambs]\n",
		},
		{
			name:  "search copy not found",
			input: "2 1 bc9",
			want:  mainBanner + choicePrompt + copiesBanner + choicePrompt + "Enter the ID: No book copies found with the given ID.\n",
		},
		{
			name:  "delete copy",
			input: "2 2 bc1",
			want:  mainBanner + choicePrompt + copiesBanner + choicePrompt + "Enter the ID: Book copy deleted successfully.\n",
		},
		{
			name:  "delete copy not found",
			input: "2 2 bc9",
			want:  mainBanner + choicePrompt + copiesBanner + choicePrompt + "Enter the ID: No book copy found with the given ID.\n",
		},
		{
			name:  "search customer",
			input: "3 1 c2",
			want: mainBanner + choicePrompt + customersBanner + choicePrompt + "Enter the ID: " +
				"Matching customers:\nCustomer [ID: c2, Name: Max Mustermann]\n",
		},
		{
			name:  "search customer not found",
			input: "3 1 C2",
			want:  mainBanner + choicePrompt + customersBanner + choicePrompt + "Enter the ID: No customers found with the given ID.\n",
		},
		{
			name:  "delete customer",
			input: "3 2 c5",
			want:  mainBanner + choicePrompt + customersBanner + choicePrompt + "Enter the ID: Customer deleted successfully.\n",
		},
		{
			name:  "delete customer not found",
			input: "3 2 c6",
			want:  mainBanner + choicePrompt + customersBanner + choicePrompt + "Enter the ID: No customer found with the given ID.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := runMenu(t, tt.input, config.OutputText)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMenu_Run_RepromptsOnBadChoice(t *testing.T) {
	got, _ := runMenu(t, "0 five 3\n5 4 -1 2 c1", config.OutputText)

	want := mainBanner +
		choicePrompt + "Invalid choice. Please enter a number between 1 and 3.\n" +
		choicePrompt + "Invalid choice. Please enter a number between 1 and 3.\n" +
		choicePrompt + customersBanner +
		choicePrompt + "Invalid choice. Please enter a number between 1 and 2.\n" +
		choicePrompt + "Invalid choice. Please enter a number between 1 and 2.\n" +
		choicePrompt + "Invalid choice. Please enter a number between 1 and 2.\n" +
		choicePrompt + "Enter the ID: Customer deleted successfully.\n"
	assert.Equal(t, want, got)
}

func TestMenu_Run_BooksMenuBounds(t *testing.T) {
	got, _ := runMenu(t, "1 0 5 4 Dune", config.OutputText)

	want := mainBanner + choicePrompt + booksBanner +
		choicePrompt + "Invalid choice. Please enter a number between 1 and 4.\n" +
		choicePrompt + "Invalid choice. Please enter a number between 1 and 4.\n" +
		choicePrompt + "Enter the title: Book deleted successfully.\n"
	assert.Equal(t, want, got)
}

func TestMenu_Run_OnlyOneAction(t *testing.T) {
	got, mem := runMenu(t, "3 2 c1 3 2 c2", config.OutputText)

	assert.Equal(t, 1, strings.Count(got, "Customer deleted successfully."))
	_, _, customers := mem.Counts()
	assert.Equal(t, 4, customers)
}

func TestMenu_Run_DeleteUpdatesStore(t *testing.T) {
	_, mem := runMenu(t, "1 2 978-0-8212-2312-3", config.OutputText)

	books := mem.Books()
	require.Len(t, books, 6)
	for _, b := range books {
		assert.NotEqual(t, "Im Westen nichts Neues", b.Title)
	}
	_, copies, _ := mem.Counts()
	assert.Equal(t, 8, copies)
}

func TestMenu_Run_EndOfInput(t *testing.T) {
	for _, input := range []string{"", "1", "1 1", "abc"} {
		t.Run(input, func(t *testing.T) {
			got, mem := runMenu(t, input, config.OutputText)
			assert.True(t, strings.HasPrefix(got, mainBanner))
			books, copies, customers := mem.Counts()
			assert.Equal(t, []int{7, 8, 5}, []int{books, copies, customers})
		})
	}
}

func TestMenu_Run_JSONOutput(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		got, _ := runMenu(t, "3 1 c4", config.OutputJSON)
		prefix := mainBanner + choicePrompt + customersBanner + choicePrompt + "Enter the ID: "
		require.True(t, strings.HasPrefix(got, prefix))
		assert.JSONEq(t, `{"found":true,"matches":[{"id":"c4","name":"Emily Johnson"}]}`, strings.TrimPrefix(got, prefix))
	})

	t.Run("deleted", func(t *testing.T) {
		got, _ := runMenu(t, "2 2 bc3", config.OutputJSON)
		prefix := mainBanner + choicePrompt + copiesBanner + choicePrompt + "Enter the ID: "
		assert.JSONEq(t, `{"found":true,"deleted":true,"message":"Book copy deleted successfully."}`, strings.TrimPrefix(got, prefix))
	})

	t.Run("not found", func(t *testing.T) {
		got, _ := runMenu(t, "1 1 x", config.OutputJSON)
		prefix := mainBanner + choicePrompt + booksBanner + choicePrompt + "Enter the ISBN: "
		assert.JSONEq(t, `{"found":false,"message":"No books found with the given ISBN."}`, strings.TrimPrefix(got, prefix))
	})
}

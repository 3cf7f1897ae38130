package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"bookmenu/internal/entity"
)

// Input reads whitespace-delimited tokens, printing a prompt before each.
type Input struct {
	sc  *bufio.Scanner
	out io.Writer
}

func NewInput(r io.Reader, out io.Writer) *Input {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Input{sc: sc, out: out}
}

// Token prints prompt and returns the next token. It returns io.EOF once
// the input is exhausted.
func (in *Input) Token(prompt string) (string, error) {
	fmt.Fprint(in.out, prompt)
	if !in.sc.Scan() {
		if err := in.sc.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return in.sc.Text(), nil
}

// Choice keeps prompting until the user enters an integer in [1, max].
// Non-numeric tokens are rejected the same way as out-of-range numbers.
func (in *Input) Choice(max int) (int, error) {
	rule := fmt.Sprintf("gte=1,lte=%d", max)
	for {
		tok, err := in.Token("Enter your choice: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err == nil && entity.Validator().Var(n, rule) == nil {
			return n, nil
		}
		fmt.Fprintf(in.out, "Invalid choice. Please enter a number between 1 and %d.\n", max)
	}
}

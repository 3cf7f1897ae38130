// Package console implements the interactive menu: one main menu choice,
// one submenu choice, one operation, then the run ends.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"bookmenu/internal/library"
)

type action func(ctx context.Context) error

type option struct {
	label string
	run   action
}

type menu struct {
	title   string
	options []option
}

func (mn menu) banner() string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, o := range mn.options {
		fmt.Fprintf(&sb, " %d: %s |", i+1, o.label)
	}
	return sb.String()
}

// Menu drives a single interactive session against a library service.
type Menu struct {
	svc    *library.Service
	in     *Input
	out    io.Writer
	render Renderer
	log    *slog.Logger
}

func NewMenu(svc *library.Service, in *Input, out io.Writer, render Renderer, log *slog.Logger) *Menu {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Menu{svc: svc, in: in, out: out, render: render, log: log}
}

// Run performs exactly one top-level action. Running out of input ends the
// session without error.
func (m *Menu) Run(ctx context.Context) error {
	top := menu{title: "Main Menu:", options: []option{
		{"Books", m.submenu(m.booksMenu())},
		{"Book Copies", m.submenu(m.copiesMenu())},
		{"Customers", m.submenu(m.customersMenu())},
	}}

	err := m.dispatch(ctx, top)
	if errors.Is(err, io.EOF) {
		m.log.DebugContext(ctx, "input closed before the operation completed")
		return nil
	}
	return err
}

func (m *Menu) submenu(mn menu) action {
	return func(ctx context.Context) error { return m.dispatch(ctx, mn) }
}

func (m *Menu) dispatch(ctx context.Context, mn menu) error {
	fmt.Fprintln(m.out, mn.title)
	fmt.Fprintln(m.out, mn.banner())

	choice, err := m.in.Choice(len(mn.options))
	if err != nil {
		return err
	}
	m.log.DebugContext(ctx, "menu choice", "menu", mn.title, "choice", choice)

	if choice < 1 || choice > len(mn.options) {
		fmt.Fprintln(m.out, "Invalid choice.")
		return nil
	}
	return mn.options[choice-1].run(ctx)
}

func (m *Menu) booksMenu() menu {
	return menu{title: "Books Menu:", options: []option{
		{"Search by ISBN", m.searchBooksByISBN},
		{"Delete by ISBN", m.deleteBookByISBN},
		{"Search by Title", m.searchBooksByTitle},
		{"Delete by Title", m.deleteBookByTitle},
	}}
}

func (m *Menu) copiesMenu() menu {
	return menu{title: "Book Copies Menu:", options: []option{
		{"Search by ID", m.searchCopiesByID},
		{"Delete by ID", m.deleteCopyByID},
	}}
}

func (m *Menu) customersMenu() menu {
	return menu{title: "Customers Menu:", options: []option{
		{"Search by ID", m.searchCustomersByID},
		{"Delete by ID", m.deleteCustomerByID},
	}}
}

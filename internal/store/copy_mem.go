package store

import (
	"context"

	"bookmenu/internal/entity"
)

func (m *Memory) AddCopy(c entity.BookCopy) {
	m.copies = append(m.copies, c)
}

func (m *Memory) Copies() []entity.BookCopy {
	return append([]entity.BookCopy(nil), m.copies...)
}

func (m *Memory) FindCopiesByID(ctx context.Context, id string) ([]entity.BookCopy, error) {
	return findAll(ctx, m.copies, func(c entity.BookCopy) bool { return c.ID == id })
}

func (m *Memory) DeleteFirstCopyByID(ctx context.Context, id string) (entity.BookCopy, error) {
	return removeFirst(ctx, &m.copies, func(c entity.BookCopy) bool { return c.ID == id })
}

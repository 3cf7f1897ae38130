package store

import (
	"context"

	"bookmenu/internal/entity"
)

func (m *Memory) AddCustomer(c entity.Customer) {
	m.customers = append(m.customers, c)
}

func (m *Memory) Customers() []entity.Customer {
	return append([]entity.Customer(nil), m.customers...)
}

func (m *Memory) FindCustomersByID(ctx context.Context, id string) ([]entity.Customer, error) {
	return findAll(ctx, m.customers, func(c entity.Customer) bool { return c.ID == id })
}

func (m *Memory) DeleteFirstCustomerByID(ctx context.Context, id string) (entity.Customer, error) {
	return removeFirst(ctx, &m.customers, func(c entity.Customer) bool { return c.ID == id })
}

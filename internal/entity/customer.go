package entity

import "fmt"

// Customer is a library patron.
type Customer struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// String renders c as "Customer [ID: ..., Name: ...]".
func (c Customer) String() string {
	return fmt.Sprintf("Customer [ID: %s, Name: %s]", c.ID, c.Name)
}

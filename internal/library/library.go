// Package library holds the search and delete operations over books, book
// copies and customers.
//
// Searches are exact on ISBN and IDs and substring-based on titles. Deletes
// are always exact and remove only the first match in insertion order.
package library

import "errors"

// ErrNotFound is returned when no record matches a delete key.
var ErrNotFound = errors.New("not found")

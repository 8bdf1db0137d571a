// Package repository declares the backend services the API facades forward to.
// Implementations live in subpackages (e.g. postgres) and contain no business logic.
package repository

import "errors"

// ErrInvalidInput marks a backend rejection caused by the caller's data, such as a
// malformed origin or an unknown grant type. Services map it to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

// ErrConflict marks a write rejected because the record already exists.
var ErrConflict = errors.New("already exists")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

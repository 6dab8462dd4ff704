// Package repo defines the generic read-only repository contract between
// HTTP handlers and the dataset store.
package repo

import "context"

// Page carries one page of rows plus the total count matching the query,
// so clients can paginate without a second round trip.
type Page[T any] struct {
	Rows  []T
	Total int
}

// Reader is a read-only repository over rows of type T keyed by ID,
// queried with params of type Q. Mutation is deliberately absent: the
// dataset is immutable for the process lifetime.
type Reader[T any, ID comparable, Q any] interface {
	Get(ctx context.Context, id ID) (T, error)
	List(ctx context.Context, q Q) (Page[T], error)
}

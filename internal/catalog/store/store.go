// Package store provides an interface for product storage operations.
package store

import "context"

// Product represents a product entity in the store.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}

// Fields carries every writable product attribute. The ID is never part of
// it: the store assigns IDs on create and preserves them on replace.
type Fields struct {
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations.
type ProductStore interface {
	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// Create adds a new product with a freshly assigned unique ID, appended
	// after all existing products. Returns the stored record.
	Create(ctx context.Context, fields Fields) (*Product, error)

	// Replace overwrites every field except the ID, keeping the product's
	// position in the collection.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Replace(ctx context.Context, id string, fields Fields) (*Product, error)

	// DeleteByID removes a product by its ID without disturbing the order of
	// the remaining products.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}

package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	cerrors "github.com/uibrahim/product-api/internal/catalog/errors"
)

// inMemory implements ProductStore using a mutex-guarded slice. A slice
// rather than a map, because listing must preserve insertion order.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
}

// NewInMemoryStore creates an empty in-memory ProductStore.
func NewInMemoryStore() ProductStore {
	return &inMemory{}
}

// NewSeededStore creates an in-memory ProductStore preloaded with the sample
// catalog the API ships with.
func NewSeededStore() ProductStore {
	return &inMemory{
		products: []Product{
			{
				ID:          "1",
				Name:        "Laptop",
				Description: "High-performance laptop with 16GB RAM",
				Price:       1200,
				Category:    "electronics",
				InStock:     true,
			},
			{
				ID:          "2",
				Name:        "Smartphone",
				Description: "Latest model with 128GB storage",
				Price:       800,
				Category:    "electronics",
				InStock:     true,
			},
			{
				ID:          "3",
				Name:        "Coffee Maker",
				Description: "Programmable coffee maker with timer",
				Price:       50,
				Category:    "kitchen",
				InStock:     false,
			},
		},
	}
}

// FindAll returns a copy of the collection in insertion order.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, cerrors.ErrProductNotFound
}

// Create appends a new product with a freshly generated UUID. Random UUIDs
// keep IDs unique across the process lifetime, so a deleted ID never
// resurrects.
func (s *inMemory) Create(_ context.Context, fields Fields) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:          uuid.NewString(),
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Category:    fields.Category,
		InStock:     fields.InStock,
	}
	s.products = append(s.products, product)
	return &product, nil
}

// Replace overwrites all fields except the ID, in place.
func (s *inMemory) Replace(_ context.Context, id string, fields Fields) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = Product{
				ID:          id,
				Name:        fields.Name,
				Description: fields.Description,
				Price:       fields.Price,
				Category:    fields.Category,
				InStock:     fields.InStock,
			}
			updated := s.products[i]
			return &updated, nil
		}
	}
	return nil, cerrors.ErrProductNotFound
}

// DeleteByID removes a product by its ID.
func (s *inMemory) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return cerrors.ErrProductNotFound
}

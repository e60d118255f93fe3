// Package service implements the catalog business logic: DTO mapping,
// input validation contracts and the list query engine.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cerrors "github.com/uibrahim/product-api/internal/catalog/errors"
	"github.com/uibrahim/product-api/internal/catalog/store"
)

// Default paging values applied when a query parameter is absent or unusable.
const (
	DefaultPage  = 1
	DefaultLimit = 5
)

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// ProductInputDto carries the writable fields for create and full-replace
// update. Price and InStock are pointers so validation checks presence, not
// truthiness: a price of 0 and inStock=false are legitimate values, only a
// missing field fails the required rule.
type ProductInputDto struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price"       validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	InStock     *bool    `json:"inStock"     validate:"required"`
}

// ListQuery holds the resolved listing parameters.
type ListQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// ProductPage is the listing response: Total counts the products left after
// filtering but before pagination; Data is the requested slice.
type ProductPage struct {
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Data  []ProductDto `json:"data"`
}

// CatalogService defines the methods for managing the product catalog.
type CatalogService interface {
	// List applies category/search filtering and pagination, in that order.
	List(ctx context.Context, query ListQuery) (*ProductPage, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*ProductDto, error)

	// Create adds a new product and returns it with its generated ID.
	Create(ctx context.Context, input ProductInputDto) (*ProductDto, error)

	// Replace overwrites all fields of an existing product, preserving the ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Replace(ctx context.Context, id string, input ProductInputDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}

// Service implements CatalogService on top of a ProductStore.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new catalog service with the provided store.
func NewService(repo store.ProductStore) *Service {
	return &Service{repository: repo}
}

// List fetches the full collection and runs it through the query engine.
func (s *Service) List(ctx context.Context, query ListQuery) (*ProductPage, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	if query.Page < 1 {
		query.Page = DefaultPage
	}
	if query.Limit < 1 {
		query.Limit = DefaultLimit
	}

	filtered := filterByCategory(products, query.Category)
	filtered = filterBySearch(filtered, query.Search)

	page := &ProductPage{
		Total: len(filtered),
		Page:  query.Page,
		Limit: query.Limit,
		Data:  toDtoList(paginate(filtered, query.Page, query.Limit)),
	}
	return page, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id string) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return toDto(product), nil
}

// Create stores a new product and returns it with its assigned ID.
func (s *Service) Create(ctx context.Context, input ProductInputDto) (*ProductDto, error) {
	created, err := s.repository.Create(ctx, toFields(input))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDto(created), nil
}

// Replace overwrites all fields of an existing product.
func (s *Service) Replace(ctx context.Context, id string, input ProductInputDto) (*ProductDto, error) {
	updated, err := s.repository.Replace(ctx, id, toFields(input))
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	return toDto(updated), nil
}

// DeleteByID removes a product by its ID.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	return s.repository.DeleteByID(ctx, id)
}

// filterByCategory keeps products whose category equals the given one
// exactly. An empty category keeps everything.
func filterByCategory(products []store.Product, category string) []store.Product {
	if category == "" {
		return products
	}
	result := make([]store.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

// filterBySearch keeps products whose name contains the term,
// case-insensitively. An empty term keeps everything.
func filterBySearch(products []store.Product, term string) []store.Product {
	if term == "" {
		return products
	}
	lowered := strings.ToLower(term)
	result := make([]store.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), lowered) {
			result = append(result, p)
		}
	}
	return result
}

// paginate slices out page number page of size limit. Pages past the end
// yield an empty slice.
func paginate(products []store.Product, page, limit int) []store.Product {
	start := (page - 1) * limit
	if start >= len(products) {
		return nil
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// toFields converts a validated input DTO to store fields.
func toFields(input ProductInputDto) store.Fields {
	return store.Fields{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Category:    input.Category,
		InStock:     *input.InStock,
	}
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		InStock:     product.InStock,
	}
}

// toDtoList converts a slice of store products, never returning nil so the
// listing marshals as [] rather than null.
func toDtoList(products []store.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, p := range products {
		dtos[i] = *toDto(&p)
	}
	return dtos
}

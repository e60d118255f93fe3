package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cerrors "github.com/uibrahim/product-api/internal/catalog/errors"
	"github.com/uibrahim/product-api/internal/catalog/store"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products []store.Product
	product  store.Product
	error    error
}

func (m *mockProductStore) FindAll(_ context.Context) ([]store.Product, error) {
	return m.products, m.error
}

func (m *mockProductStore) FindByID(_ context.Context, _ string) (*store.Product, error) {
	return &m.product, m.error
}

func (m *mockProductStore) Create(_ context.Context, _ store.Fields) (*store.Product, error) {
	return &m.product, m.error
}

func (m *mockProductStore) Replace(_ context.Context, _ string, _ store.Fields) (*store.Product, error) {
	return &m.product, m.error
}

func (m *mockProductStore) DeleteByID(_ context.Context, _ string) error {
	return m.error
}

// catalog mirrors the seed data the API ships with.
func catalog() []store.Product {
	return []store.Product{
		{ID: "1", Name: "Laptop", Description: "High-performance laptop with 16GB RAM", Price: 1200, Category: "electronics", InStock: true},
		{ID: "2", Name: "Smartphone", Description: "Latest model with 128GB storage", Price: 800, Category: "electronics", InStock: true},
		{ID: "3", Name: "Coffee Maker", Description: "Programmable coffee maker with timer", Price: 50, Category: "kitchen", InStock: false},
	}
}

func Test_CatalogService_List(t *testing.T) {
	testCases := []struct {
		name          string
		query         ListQuery
		expectedTotal int
		expectedPage  int
		expectedLimit int
		expectedIDs   []string
	}{
		{
			name:          "no filters, defaults applied",
			query:         ListQuery{},
			expectedTotal: 3,
			expectedPage:  1,
			expectedLimit: 5,
			expectedIDs:   []string{"1", "2", "3"},
		},
		{
			name:          "category filter is exact match",
			query:         ListQuery{Category: "electronics", Page: 1, Limit: 5},
			expectedTotal: 2,
			expectedPage:  1,
			expectedLimit: 5,
			expectedIDs:   []string{"1", "2"},
		},
		{
			name:          "category filter is case-sensitive",
			query:         ListQuery{Category: "Electronics", Page: 1, Limit: 5},
			expectedTotal: 0,
			expectedPage:  1,
			expectedLimit: 5,
			expectedIDs:   []string{},
		},
		{
			name:          "search is case-insensitive substring on name",
			query:         ListQuery{Search: "LAP", Page: 1, Limit: 5},
			expectedTotal: 1,
			expectedPage:  1,
			expectedLimit: 5,
			expectedIDs:   []string{"1"},
		},
		{
			name:          "search and category combine",
			query:         ListQuery{Category: "electronics", Search: "phone", Page: 1, Limit: 5},
			expectedTotal: 1,
			expectedPage:  1,
			expectedLimit: 5,
			expectedIDs:   []string{"2"},
		},
		{
			name:          "second page of size two holds the third item",
			query:         ListQuery{Page: 2, Limit: 2},
			expectedTotal: 3,
			expectedPage:  2,
			expectedLimit: 2,
			expectedIDs:   []string{"3"},
		},
		{
			name:          "page past the end yields empty data, total unchanged",
			query:         ListQuery{Page: 5, Limit: 2},
			expectedTotal: 3,
			expectedPage:  5,
			expectedLimit: 2,
			expectedIDs:   []string{},
		},
		{
			name:          "non-positive page and limit fall back to defaults",
			query:         ListQuery{Page: -2, Limit: 0},
			expectedTotal: 3,
			expectedPage:  1,
			expectedLimit: 5,
			expectedIDs:   []string{"1", "2", "3"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(&mockProductStore{products: catalog()})
			// when
			page, err := service.List(context.Background(), tc.query)
			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTotal, page.Total, "total counts post-filter, pre-pagination")
			assert.Equal(t, tc.expectedPage, page.Page)
			assert.Equal(t, tc.expectedLimit, page.Limit)
			require.LessOrEqual(t, len(page.Data), page.Limit)
			ids := make([]string, 0, len(page.Data))
			for _, p := range page.Data {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func Test_CatalogService_List_StoreError(t *testing.T) {
	ErrStore := errors.New("store error")
	service := NewService(&mockProductStore{error: ErrStore})

	page, err := service.List(context.Background(), ListQuery{})

	assert.ErrorIs(t, err, ErrStore)
	assert.Nil(t, page)
}

func Test_CatalogService_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		productID   string
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product found",
			mockStore: &mockProductStore{
				product: store.Product{ID: "1", Name: "Laptop", Price: 1200, Category: "electronics", InStock: true},
			},
			productID: "1",
			expected:  &ProductDto{ID: "1", Name: "Laptop", Price: 1200, Category: "electronics", InStock: true},
		},
		{
			name: "Error - product not found",
			mockStore: &mockProductStore{
				error: cerrors.ErrProductNotFound,
			},
			productID:   "999",
			expectError: cerrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindByID(context.Background(), tc.productID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_CatalogService_Create_MapsPresentFalsyValues(t *testing.T) {
	// given: price 0 and inStock false are present, legitimate values
	price := 0.0
	inStock := false
	stored := store.Product{ID: "abc", Name: "Freebie", Description: "Costs nothing", Price: 0, Category: "misc", InStock: false}
	service := NewService(&mockProductStore{product: stored})

	// when
	created, err := service.Create(context.Background(), ProductInputDto{
		Name:        "Freebie",
		Description: "Costs nothing",
		Price:       &price,
		Category:    "misc",
		InStock:     &inStock,
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, float64(0), created.Price)
	assert.False(t, created.InStock)
	assert.Equal(t, "abc", created.ID)
}

func Test_CatalogService_Replace_NotFound(t *testing.T) {
	price := 1.0
	inStock := true
	service := NewService(&mockProductStore{error: cerrors.ErrProductNotFound})

	updated, err := service.Replace(context.Background(), "999", ProductInputDto{
		Name:        "Ghost",
		Description: "Does not exist",
		Price:       &price,
		Category:    "misc",
		InStock:     &inStock,
	})

	assert.ErrorIs(t, err, cerrors.ErrProductNotFound)
	assert.Nil(t, updated)
}

func Test_CatalogService_DeleteByID(t *testing.T) {
	service := NewService(&mockProductStore{error: cerrors.ErrProductNotFound})
	assert.ErrorIs(t, service.DeleteByID(context.Background(), "999"), cerrors.ErrProductNotFound)

	service = NewService(&mockProductStore{})
	assert.NoError(t, service.DeleteByID(context.Background(), "1"))
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cerrors "github.com/uibrahim/product-api/internal/catalog/errors"
)

func seededFields(name string) Fields {
	return Fields{
		Name:        name,
		Description: "some description",
		Price:       10,
		Category:    "misc",
		InStock:     true,
	}
}

func Test_InMemory_FindAll_PreservesInsertionOrder(t *testing.T) {
	// given
	s := NewSeededStore()
	ctx := context.Background()

	// when
	list, err := s.FindAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, "Laptop", list[0].Name)
	assert.Equal(t, "Coffee Maker", list[2].Name)
}

func Test_InMemory_Create_AppendsWithUniqueIDs(t *testing.T) {
	// given
	s := NewSeededStore()
	ctx := context.Background()
	seen := map[string]bool{"1": true, "2": true, "3": true}

	// when: create, delete, create again; every ID must stay unique across
	// the store's lifetime, including IDs of deleted records
	first, err := s.Create(ctx, seededFields("Kettle"))
	require.NoError(t, err)
	require.NoError(t, s.DeleteByID(ctx, first.ID))
	second, err := s.Create(ctx, seededFields("Toaster"))
	require.NoError(t, err)

	// then
	assert.False(t, seen[first.ID], "created ID must not collide with seed IDs")
	assert.False(t, seen[second.ID], "created ID must not collide with seed IDs")
	assert.NotEqual(t, first.ID, second.ID, "a deleted ID must never resurrect")

	list, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, list[len(list)-1].ID, "new products are appended at the end")
}

func Test_InMemory_FindByID(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	found, err := s.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Smartphone", found.Name)

	_, err = s.FindByID(ctx, "999")
	assert.ErrorIs(t, err, cerrors.ErrProductNotFound)
}

func Test_InMemory_Replace(t *testing.T) {
	// given
	s := NewSeededStore()
	ctx := context.Background()

	// when
	updated, err := s.Replace(ctx, "2", Fields{
		Name:        "Feature Phone",
		Description: "Calls and texts only",
		Price:       0,
		Category:    "electronics",
		InStock:     false,
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, "2", updated.ID, "replace preserves the ID")
	assert.Equal(t, "Feature Phone", updated.Name)
	assert.Equal(t, float64(0), updated.Price)
	assert.False(t, updated.InStock)

	list, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Feature Phone", list[1].Name, "replace preserves the position")

	_, err = s.Replace(ctx, "999", seededFields("Ghost"))
	assert.ErrorIs(t, err, cerrors.ErrProductNotFound)
}

func Test_InMemory_DeleteByID(t *testing.T) {
	// given
	s := NewSeededStore()
	ctx := context.Background()

	// when
	err := s.DeleteByID(ctx, "2")

	// then
	require.NoError(t, err)
	list, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{"1", "3"}, []string{list[0].ID, list[1].ID}, "delete keeps the order of the rest")

	// second delete of the same ID must fail, not succeed silently
	assert.ErrorIs(t, s.DeleteByID(ctx, "2"), cerrors.ErrProductNotFound)
}

package service

import (
	"testing"

	"devicehub/internal/app/catalog/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestFilterStore_DefaultState(t *testing.T) {
	store := NewFilterStore()

	filters := store.Get()

	assert.Equal(t, entity.DefaultFilters(), filters)
	assert.Equal(t, entity.SortByName, filters.SortBy)
	assert.Equal(t, entity.SortOrderAsc, filters.SortOrder)
	assert.Empty(t, filters.SearchTerm)
}

func TestFilterStore_PartialMergePreservesUntouchedFields(t *testing.T) {
	store := NewFilterStore()
	store.Set(&entity.UpdateFiltersRequest{
		SearchTerm: strPtr("macbook"),
		Brand:      strPtr("Apple"),
	})

	// Обновляем только сортировку
	result := store.Set(&entity.UpdateFiltersRequest{
		SortBy:    strPtr(entity.SortByPrice),
		SortOrder: strPtr(entity.SortOrderDesc),
	})

	assert.Equal(t, "macbook", result.SearchTerm)
	assert.Equal(t, "Apple", result.Brand)
	assert.Equal(t, entity.SortByPrice, result.SortBy)
	assert.Equal(t, entity.SortOrderDesc, result.SortOrder)
}

func TestFilterStore_ExplicitEmptyStringClearsField(t *testing.T) {
	store := NewFilterStore()
	store.Set(&entity.UpdateFiltersRequest{Brand: strPtr("Apple")})

	result := store.Set(&entity.UpdateFiltersRequest{Brand: strPtr("")})

	assert.Empty(t, result.Brand)
}

func TestFilterStore_AcceptsUnknownBrand(t *testing.T) {
	store := NewFilterStore()

	result := store.Set(&entity.UpdateFiltersRequest{Brand: strPtr("NoSuchBrand")})

	assert.Equal(t, "NoSuchBrand", result.Brand)
}

func TestFilterStore_ResetRestoresDefaults(t *testing.T) {
	store := NewFilterStore()
	store.Set(&entity.UpdateFiltersRequest{
		SearchTerm: strPtr("laptop"),
		Category:   strPtr(entity.CategoryLaptop),
		SortBy:     strPtr(entity.SortByRating),
	})

	result := store.Reset()

	assert.Equal(t, entity.DefaultFilters(), result)
	assert.Equal(t, entity.DefaultFilters(), store.Get())
}

package service

import (
	"context"
	"fmt"
	"testing"

	"stylehub/internal/catalog"
	"stylehub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]model.Product{
		{ID: "P001", Name: "Classic Cotton Tee", Brand: "UrbanThread", Price: 499, Category: "men"},
		{ID: "P002", Name: "Floral Wrap Dress", Brand: "Meadow", Price: 1799, Category: "women"},
		{ID: "P003", Name: "Canvas Low-Top Sneakers", Brand: "Strider", Price: 999, Category: "footwear"},
	})
}

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	service := NewProductService(testCatalog(), logger)

	tests := []struct {
		name          string
		filter        catalog.Filter
		expectedCount int
		expectedFirst string
	}{
		{
			name:          "No filter returns everything",
			filter:        catalog.Filter{},
			expectedCount: 3,
			expectedFirst: "P001",
		},
		{
			name:          "Category filter",
			filter:        catalog.Filter{Categories: []string{"women"}},
			expectedCount: 1,
			expectedFirst: "P002",
		},
		{
			name:          "Search filter",
			filter:        catalog.Filter{Search: "sneakers"},
			expectedCount: 1,
			expectedFirst: "P003",
		},
		{
			name:          "Limit is applied",
			filter:        catalog.Filter{Limit: 2},
			expectedCount: 2,
			expectedFirst: "P001",
		},
		{
			name:          "Negative offset defaults to zero",
			filter:        catalog.Filter{Offset: -5},
			expectedCount: 3,
			expectedFirst: "P001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := service.List(ctx, tt.filter)

			require.NoError(t, err)
			require.Len(t, products, tt.expectedCount)
			if tt.expectedCount > 0 {
				assert.Equal(t, tt.expectedFirst, products[0].ID)
			}
		})
	}
}

func TestProductService_List_ClampsLimit(t *testing.T) {
	// Build a catalogue larger than the maximum page size.
	products := make([]model.Product, 150)
	for i := range products {
		products[i] = model.Product{ID: fmt.Sprintf("P%03d", i)}
	}
	service := NewProductService(catalog.New(products), zerolog.Nop())

	got, err := service.List(context.Background(), catalog.Filter{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, got, 100)

	got, err = service.List(context.Background(), catalog.Filter{Limit: 0})
	require.NoError(t, err)
	assert.Len(t, got, 20)
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	service := NewProductService(testCatalog(), logger)

	tests := []struct {
		name        string
		productID   string
		expectError bool
	}{
		{name: "Success", productID: "P001"},
		{name: "Product not found", productID: "P999", expectError: true},
		{name: "Empty product ID", productID: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := service.GetByID(ctx, tt.productID)

			if tt.expectError {
				require.ErrorIs(t, err, model.ErrProductNotFound)
				assert.Nil(t, product)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.productID, product.ID)
			}
		})
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stylehub/internal/catalog"
	"stylehub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, filter catalog.Filter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: "P001", Name: "Classic Cotton Tee", Brand: "UrbanThread", Price: 499, Category: "men"},
		{ID: "P002", Name: "Floral Wrap Dress", Brand: "Meadow", Price: 1799, Category: "women"},
	}

	t.Run("Success without filters", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("List", mock.Anything, catalog.Filter{}).Return(testProducts, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Filters parsed from query parameters", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		expected := catalog.Filter{
			Categories: []string{"men", "women"},
			Brands:     []string{"Meadow"},
			Sizes:      []string{"S", "M"},
			Colors:     []string{"White"},
			Search:     "tee",
			Limit:      5,
			Offset:     10,
		}
		mockService.On("List", mock.Anything, expected).Return([]model.Product{}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/api/products?category=men,women&brand=Meadow&size=S&size=M&color=White&search=tee&limit=5&offset=10", nil)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Service error", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		product := &model.Product{ID: "P001", Name: "Classic Cotton Tee", Price: 499}
		mockService.On("GetByID", mock.Anything, "P001").Return(product, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/products/P001", nil)
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "P001", got.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		mockService.On("GetByID", mock.Anything, "P999").Return(nil, model.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/products/P999", nil)
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeProductNotFound, resp.Error)
		assert.Equal(t, "Product not found", resp.Message)
	})

	t.Run("Missing ID", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/products/", nil)
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

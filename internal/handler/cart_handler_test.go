package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylehub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, sessionID string) (*model.CartView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartView), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID, productID, size string, quantity int) (*model.CartView, error) {
	args := m.Called(ctx, sessionID, productID, size, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartView), args.Error(1)
}

func (m *MockCartService) UpdateItem(ctx context.Context, sessionID, productID, size string, quantity int) (*model.CartView, error) {
	args := m.Called(ctx, sessionID, productID, size, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartView), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID, productID, size string) (*model.CartView, error) {
	args := m.Called(ctx, sessionID, productID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartView), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func testCartView() *model.CartView {
	items := []model.CartItem{
		{ProductID: "P001", Name: "Classic Cotton Tee", Price: 499, Quantity: 2, SelectedSize: "M"},
	}
	return &model.CartView{
		Items:  items,
		Count:  2,
		Totals: model.ComputeTotals(998),
	}
}

func TestCartHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		mockService.On("Get", mock.Anything, "sess-1").Return(testCartView(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got model.CartView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, 998.0, got.Totals.Subtotal)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing session id", func(t *testing.T) {
		handler := NewCartHandler(new(MockCartService), logger)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()
		handler.Get(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		handler := NewCartHandler(new(MockCartService), logger)

		req := httptest.NewRequest(http.MethodPost, "/api/cart", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Get(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestCartHandler_Items(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Add item", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		mockService.On("AddItem", mock.Anything, "sess-1", "P001", "M", 2).Return(testCartView(), nil)

		body := `{"productId":"P001","size":"M","quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body))
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Items(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Update item", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		mockService.On("UpdateItem", mock.Anything, "sess-1", "P001", "M", 5).Return(testCartView(), nil)

		body := `{"productId":"P001","size":"M","quantity":5}`
		req := httptest.NewRequest(http.MethodPut, "/api/cart/items", strings.NewReader(body))
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Items(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Remove item", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		empty := &model.CartView{Items: []model.CartItem{}, Totals: model.ComputeTotals(0)}
		mockService.On("RemoveItem", mock.Anything, "sess-1", "P001", "M").Return(empty, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/cart/items?productId=P001&size=M", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Items(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Add unknown product", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		mockService.On("AddItem", mock.Anything, "sess-1", "P999", "", 1).
			Return(nil, model.ErrProductNotFound)

		body := `{"productId":"P999","quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body))
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Items(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Update missing line", func(t *testing.T) {
		mockService := new(MockCartService)
		handler := NewCartHandler(mockService, logger)

		mockService.On("UpdateItem", mock.Anything, "sess-1", "P001", "", 2).
			Return(nil, model.ErrItemNotFound)

		body := `{"productId":"P001","quantity":2}`
		req := httptest.NewRequest(http.MethodPut, "/api/cart/items", strings.NewReader(body))
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Items(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeItemNotFound, resp.Error)
	})

	t.Run("Missing product ID", func(t *testing.T) {
		handler := NewCartHandler(new(MockCartService), logger)

		body := `{"quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body))
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Items(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Delete without product ID", func(t *testing.T) {
		handler := NewCartHandler(new(MockCartService), logger)

		req := httptest.NewRequest(http.MethodDelete, "/api/cart/items", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Items(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid body", func(t *testing.T) {
		handler := NewCartHandler(new(MockCartService), logger)

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader("not json"))
		req.Header.Set("X-Session-ID", "sess-1")
		rec := httptest.NewRecorder()
		handler.Items(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

package service

import (
	"context"
	"fmt"

	"stylehub/internal/model"
	"stylehub/internal/session"

	"github.com/rs/zerolog"
)

// cartService implements CartService over the session store. Totals are
// recomputed on every read and mutation so they always reflect the
// current cart contents.
type cartService struct {
	store    session.Store
	products ProductService
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store session.Store, products ProductService, logger zerolog.Logger) CartService {
	return &cartService{
		store:    store,
		products: products,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

func view(items []model.CartItem) *model.CartView {
	if items == nil {
		items = []model.CartItem{}
	}
	return &model.CartView{
		Items:  items,
		Count:  model.CartCount(items),
		Totals: model.ComputeTotals(model.CartSubtotal(items)),
	}
}

func (s *cartService) Get(ctx context.Context, sessionID string) (*model.CartView, error) {
	items, err := s.store.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return view(items), nil
}

// AddItem adds a product to the cart, merging with an existing line for
// the same product and size. Item price and display fields are copied
// from the catalogue at add time.
func (s *cartService) AddItem(ctx context.Context, sessionID, productID, size string, quantity int) (*model.CartView, error) {
	if quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	merged := false
	for i := range items {
		if items[i].ProductID == productID && items[i].SelectedSize == size {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, model.CartItem{
			ProductID:    product.ID,
			Name:         product.Name,
			Brand:        product.Brand,
			Image:        product.Image,
			Price:        product.Price,
			Quantity:     quantity,
			SelectedSize: size,
		})
	}

	if err := s.store.SaveCart(ctx, sessionID, items); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("product_id", productID).
		Int("quantity", quantity).
		Msg("item added to cart")

	return view(items), nil
}

// UpdateItem sets the quantity of an existing cart line.
func (s *cartService) UpdateItem(ctx context.Context, sessionID, productID, size string, quantity int) (*model.CartView, error) {
	if quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	items, err := s.store.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	for i := range items {
		if items[i].ProductID == productID && items[i].SelectedSize == size {
			items[i].Quantity = quantity
			if err := s.store.SaveCart(ctx, sessionID, items); err != nil {
				return nil, fmt.Errorf("failed to save cart: %w", err)
			}
			return view(items), nil
		}
	}

	return nil, model.ErrItemNotFound
}

// RemoveItem removes a cart line.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, productID, size string) (*model.CartView, error) {
	items, err := s.store.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	for i := range items {
		if items[i].ProductID == productID && items[i].SelectedSize == size {
			items = append(items[:i], items[i+1:]...)
			if err := s.store.SaveCart(ctx, sessionID, items); err != nil {
				return nil, fmt.Errorf("failed to save cart: %w", err)
			}
			return view(items), nil
		}
	}

	return nil, model.ErrItemNotFound
}

// Clear empties the session's cart.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.ClearCart(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

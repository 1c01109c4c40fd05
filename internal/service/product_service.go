package service

import (
	"context"

	"stylehub/internal/catalog"
	"stylehub/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService over the in-memory catalogue.
type productService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(cat *catalog.Catalog, logger zerolog.Logger) ProductService {
	return &productService{
		catalog: cat,
		logger:  logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products matching the filter, with clamped pagination.
func (s *productService) List(ctx context.Context, filter catalog.Filter) ([]model.Product, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	products := s.catalog.List(filter)

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", filter.Limit).
		Int("offset", filter.Offset).
		Msg("listed products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, ok := s.catalog.Get(id)
	if !ok {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return &product, nil
}

package catalog

import (
	"context"
	"strings"

	"stylehub/internal/model"
)

// Loader defines the interface for loading the gzipped product
// catalogue file.
type Loader interface {
	// Load reads a gzipped JSON catalogue file and returns its products.
	Load(ctx context.Context, filePath string) ([]model.Product, error)
}

// Catalog is the in-memory product catalogue. It is immutable after
// construction, so lookups need no locking.
type Catalog struct {
	products []model.Product
	byID     map[string]model.Product
}

// New builds a catalogue from the loaded product list.
func New(products []model.Product) *Catalog {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Size returns the number of products in the catalogue.
func (c *Catalog) Size() int {
	return len(c.products)
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// List returns the products matching the filter, in catalogue order,
// honouring limit/offset pagination.
func (c *Catalog) List(f Filter) []model.Product {
	matched := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}

	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []model.Product{}
	}
	matched = matched[offset:]

	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched
}

// Filter narrows a product listing. Within one attribute the selected
// values are alternatives; across attributes all must match.
type Filter struct {
	Categories []string
	Brands     []string
	Sizes      []string
	Colors     []string
	Search     string
	Limit      int
	Offset     int
}

// Matches reports whether the product satisfies every populated
// attribute of the filter. Comparisons are case-insensitive.
func (f Filter) Matches(p model.Product) bool {
	if len(f.Categories) > 0 && !containsFold(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !containsFold(f.Brands, p.Brand) {
		return false
	}
	if len(f.Sizes) > 0 && !intersectsFold(f.Sizes, p.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !intersectsFold(f.Colors, p.Colors) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(p.Name + " " + p.Brand + " " + p.Category)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

func intersectsFold(wanted, available []string) bool {
	for _, w := range wanted {
		if containsFold(available, w) {
			return true
		}
	}
	return false
}

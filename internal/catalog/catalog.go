package catalog

import (
	"errors"
	"strings"

	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is the fixed, read-only product list. It is built once at
// startup and never mutated, so reads need no locking.
type Catalog struct {
	products []domain.Product
	byID     map[int64]domain.Product
}

func New() *Catalog {
	return NewWithProducts(defaultProducts())
}

func NewWithProducts(products []domain.Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[int64]domain.Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

// All returns the full catalog in display order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id int64) (domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Find narrows the catalog by category and search query, preserving
// display order. CategoryAll (or empty) matches every category. The query
// is a case-insensitive substring match on the product name; empty matches
// everything.
func (c *Catalog) Find(category domain.Category, query string) []domain.Product {
	query = strings.ToLower(query)

	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && category != domain.CategoryAll && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterByCategory narrows the catalog to a single category.
func (c *Catalog) FilterByCategory(category domain.Category) []domain.Product {
	return c.Find(category, "")
}

// Search matches product names against a free-text query.
func (c *Catalog) Search(query string) []domain.Product {
	return c.Find(domain.CategoryAll, query)
}

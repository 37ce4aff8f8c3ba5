package cart

import (
	"sync"

	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

// Cart aggregates items for a single browsing session. Items keep their
// first-insertion order; adding a product already in the cart merges into
// the existing entry instead of appending a duplicate.
//
// Every operation is a total function over the current item sequence:
// there are no error returns at this layer. Safe for concurrent use.
type Cart struct {
	mu    sync.RWMutex
	items []domain.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of the product into the cart. An existing entry
// for the product has its quantity incremented in place; otherwise a new
// item is appended at the end. No upper bound is enforced.
func (c *Cart) Add(p domain.Product, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, domain.NewCartItem(p, quantity))
}

// UpdateQuantity replaces the quantity of the matching item. The caller is
// expected to enforce any floor; a missing product ID is a no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the matching item, preserving the order of the rest.
// No-op when absent.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a snapshot copy of the cart contents.
func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalCount is the sum of all item quantities, recomputed on every call.
func (c *Cart) TotalCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Len is the number of distinct products in the cart.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

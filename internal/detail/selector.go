package detail

import (
	"sync"

	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

// Selector is the quantity picker on the product detail view. Each open
// of the view gets a fresh selector starting at one; the quantity can
// grow without bound but never drops below one.
type Selector struct {
	mu       sync.Mutex
	product  domain.Product
	quantity int
}

func NewSelector(p domain.Product) *Selector {
	return &Selector{product: p, quantity: 1}
}

func (s *Selector) Product() domain.Product {
	return s.product
}

func (s *Selector) Quantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantity
}

func (s *Selector) Increment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantity++
}

// Decrement lowers the quantity, flooring at one.
func (s *Selector) Decrement() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quantity > 1 {
		s.quantity--
	}
}

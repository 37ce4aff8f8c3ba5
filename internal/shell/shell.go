package shell

import (
	"context"
	"errors"
	"sync"

	"github.com/acehidan/otastaionary-ecommence/internal/cart"
	"github.com/acehidan/otastaionary-ecommence/internal/catalog"
	"github.com/acehidan/otastaionary-ecommence/internal/checkout"
	"github.com/acehidan/otastaionary-ecommence/internal/detail"
	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrNoSelection = errors.New("no product is selected")
	ErrNoCheckout  = errors.New("no checkout in progress")
)

// Shell is the composition root for one browsing session. It owns the
// cart, the selected-product state, the cart panel flag and the active
// checkout, and wires them together: the storefront views only ever talk
// to their shell.
type Shell struct {
	catalog *catalog.Catalog
	cart    *cart.Cart

	mu             sync.Mutex
	selected       *detail.Selector
	cartOpen       bool
	checkout       *checkout.Session
	cancelCheckout context.CancelFunc

	checkoutCfg checkout.Config
	ctx         context.Context
	cancel      context.CancelFunc
}

func New(cat *catalog.Catalog, cfg checkout.Config) *Shell {
	ctx, cancel := context.WithCancel(context.Background())
	return &Shell{
		catalog:     cat,
		cart:        cart.New(),
		checkoutCfg: cfg,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (s *Shell) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Shell) Cart() *cart.Cart {
	return s.cart
}

// AddToCart merges the product into the cart and dismisses the detail
// view if one is open.
func (s *Shell) AddToCart(p domain.Product, quantity int) {
	s.cart.Add(p, quantity)

	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// AddSelectedToCart forwards the detail view's product and chosen
// quantity to the cart, closing the view.
func (s *Shell) AddSelectedToCart() error {
	s.mu.Lock()
	sel := s.selected
	s.mu.Unlock()

	if sel == nil {
		return ErrNoSelection
	}
	s.AddToCart(sel.Product(), sel.Quantity())
	return nil
}

// ViewDetails opens the detail view for a catalog product with a fresh
// quantity selector.
func (s *Shell) ViewDetails(productID int64) error {
	p, err := s.catalog.Get(productID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.selected = detail.NewSelector(p)
	s.mu.Unlock()
	return nil
}

// Selected returns the open detail view's selector, or nil.
func (s *Shell) Selected() *detail.Selector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *Shell) CloseDetails() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

func (s *Shell) OpenCart() {
	s.mu.Lock()
	s.cartOpen = true
	s.mu.Unlock()
}

func (s *Shell) CloseCart() {
	s.mu.Lock()
	s.cartOpen = false
	s.mu.Unlock()
}

func (s *Shell) CartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartOpen
}

// UpdateCartQuantity and RemoveFromCart relay the cart panel controls.
func (s *Shell) UpdateCartQuantity(productID int64, quantity int) {
	s.cart.UpdateQuantity(productID, quantity)
}

func (s *Shell) RemoveFromCart(productID int64) {
	s.cart.Remove(productID)
}

// BeginCheckout opens a checkout over the current cart. The checkout runs
// under a context cancelled by CancelCheckout or Close, so an abandoned
// order never fires its completion callback. Calling BeginCheckout while
// a checkout is already open returns the open session.
func (s *Shell) BeginCheckout() (*checkout.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout != nil {
		return s.checkout, nil
	}
	if s.cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	ctx, cancel := context.WithCancel(s.ctx)
	s.checkout = checkout.NewSession(ctx, s.cart, s.checkoutCfg, s.onOrderComplete)
	s.cancelCheckout = cancel
	return s.checkout, nil
}

// Checkout returns the open checkout session, or nil.
func (s *Shell) Checkout() *checkout.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout
}

// CancelCheckout abandons the open checkout, discarding its form state
// and cancelling any in-flight order processing.
func (s *Shell) CancelCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout == nil {
		return ErrNoCheckout
	}
	s.cancelCheckout()
	s.checkout = nil
	s.cancelCheckout = nil
	return nil
}

// onOrderComplete is the checkout completion callback: the host clears
// the cart and closes the checkout surface.
func (s *Shell) onOrderComplete() {
	s.cart.Clear()

	s.mu.Lock()
	if s.cancelCheckout != nil {
		s.cancelCheckout()
		s.cancelCheckout = nil
	}
	s.checkout = nil
	s.mu.Unlock()
}

// Close tears the session down, cancelling any checkout in flight.
func (s *Shell) Close() {
	s.cancel()
}

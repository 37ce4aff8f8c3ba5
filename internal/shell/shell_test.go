package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/acehidan/otastaionary-ecommence/internal/catalog"
	"github.com/acehidan/otastaionary-ecommence/internal/checkout"
	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fastCheckout() checkout.Config {
	return checkout.Config{
		ProcessingDelay:   5 * time.Millisecond,
		ConfirmationDelay: 5 * time.Millisecond,
	}
}

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	sh := New(catalog.New(), fastCheckout())
	t.Cleanup(sh.Close)
	return sh
}

func mustProduct(t *testing.T, sh *Shell, id int64) domain.Product {
	t.Helper()
	p, err := sh.Catalog().Get(id)
	require.NoError(t, err)
	return p
}

func TestShell_AddToCart_ClosesDetailView(t *testing.T) {
	sh := newTestShell(t)

	require.NoError(t, sh.ViewDetails(1))
	require.NotNil(t, sh.Selected())

	sh.AddToCart(mustProduct(t, sh, 2), 1)
	assert.Nil(t, sh.Selected(), "adding to cart must dismiss the detail view")
}

func TestShell_ViewDetails_UnknownProduct(t *testing.T) {
	sh := newTestShell(t)
	assert.ErrorIs(t, sh.ViewDetails(999), catalog.ErrProductNotFound)
}

func TestShell_ViewDetails_FreshSelectorPerOpen(t *testing.T) {
	sh := newTestShell(t)

	require.NoError(t, sh.ViewDetails(1))
	sh.Selected().Increment()
	sh.Selected().Increment()
	assert.Equal(t, 3, sh.Selected().Quantity())

	// Reopening resets the quantity to one
	require.NoError(t, sh.ViewDetails(1))
	assert.Equal(t, 1, sh.Selected().Quantity())
}

func TestShell_AddSelectedToCart(t *testing.T) {
	sh := newTestShell(t)

	require.NoError(t, sh.ViewDetails(1))
	sh.Selected().Increment()
	sh.Selected().Increment()

	require.NoError(t, sh.AddSelectedToCart())

	items := sh.Cart().Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Nil(t, sh.Selected())

	assert.ErrorIs(t, sh.AddSelectedToCart(), ErrNoSelection)
}

func TestShell_CartPanelFlag(t *testing.T) {
	sh := newTestShell(t)

	assert.False(t, sh.CartOpen())
	sh.OpenCart()
	assert.True(t, sh.CartOpen())
	sh.CloseCart()
	assert.False(t, sh.CartOpen())
}

func TestShell_BeginCheckout_EmptyCart(t *testing.T) {
	sh := newTestShell(t)

	_, err := sh.BeginCheckout()
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestShell_BeginCheckout_ReturnsOpenSession(t *testing.T) {
	sh := newTestShell(t)
	sh.AddToCart(mustProduct(t, sh, 1), 1)

	first, err := sh.BeginCheckout()
	require.NoError(t, err)

	second, err := sh.BeginCheckout()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func advanceToReview(t *testing.T, s *checkout.Session) {
	t.Helper()
	require.NoError(t, s.SetCustomerInfo(domain.CustomerInfo{
		FirstName: "Aye",
		LastName:  "Chan",
		Email:     "aye@example.com",
		Address:   "12 Strand Road",
		City:      "Yangon",
		State:     "YGN",
		ZipCode:   "11181",
	}))
	require.NoError(t, s.Continue())
	require.NoError(t, s.SetPaymentInfo(domain.PaymentInfo{
		CardNumber: "4111 1111 1111 1111",
		ExpiryDate: "12/30",
		CVV:        "123",
		CardName:   "Aye Chan",
	}))
	require.NoError(t, s.Continue())
}

func TestShell_OrderCompletionClearsCartAndCheckout(t *testing.T) {
	sh := newTestShell(t)
	sh.AddToCart(mustProduct(t, sh, 1), 2)

	session, err := sh.BeginCheckout()
	require.NoError(t, err)
	advanceToReview(t, session)

	require.NoError(t, session.PlaceOrder())
	session.Wait()

	assert.Equal(t, checkout.StatusCompleted, session.Status())
	assert.Equal(t, 0, sh.Cart().Len(), "completed order must clear the cart")
	assert.Nil(t, sh.Checkout(), "completed order must close the checkout")
}

func TestShell_CancelCheckout_MidProcessing(t *testing.T) {
	sh := New(catalog.New(), checkout.Config{
		ProcessingDelay:   50 * time.Millisecond,
		ConfirmationDelay: 50 * time.Millisecond,
	})
	t.Cleanup(sh.Close)

	sh.AddToCart(mustProduct(t, sh, 1), 2)
	session, err := sh.BeginCheckout()
	require.NoError(t, err)
	advanceToReview(t, session)
	require.NoError(t, session.PlaceOrder())

	require.NoError(t, sh.CancelCheckout())
	session.Wait()

	// The abandoned order never completes and never clears the cart
	assert.Equal(t, checkout.StatusProcessing, session.Status())
	assert.Equal(t, 1, sh.Cart().Len())
	assert.Nil(t, sh.Checkout())
}

func TestShell_CancelCheckout_NoneOpen(t *testing.T) {
	sh := newTestShell(t)
	assert.ErrorIs(t, sh.CancelCheckout(), ErrNoCheckout)
}

func TestShell_Close_CancelsInFlightOrder(t *testing.T) {
	sh := New(catalog.New(), checkout.Config{
		ProcessingDelay:   50 * time.Millisecond,
		ConfirmationDelay: 50 * time.Millisecond,
	})

	sh.AddToCart(mustProduct(t, sh, 1), 2)
	session, err := sh.BeginCheckout()
	require.NoError(t, err)
	advanceToReview(t, session)
	require.NoError(t, session.PlaceOrder())

	sh.Close()
	session.Wait()

	assert.Equal(t, checkout.StatusProcessing, session.Status())
	assert.Equal(t, 1, sh.Cart().Len())
}

package domain

// CartItem is the cart projection of a product plus the purchase quantity.
// Identity is the product ID: a cart never holds two items for the same
// product.
type CartItem struct {
	ProductID int64
	Name      string
	Price     Money
	Image     string
	Quantity  int
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}

// NewCartItem projects a product into a cart item with the given quantity.
func NewCartItem(p Product, quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	}
}

package domain

// DefaultCountry pre-fills the shipping form.
const DefaultCountry = "United States"

// CustomerInfo holds the shipping form fields. All fields are free text;
// only presence is validated.
type CustomerInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// Complete reports whether every required shipping field is filled in.
// Phone and country are optional. Whitespace-only values count as filled,
// matching the storefront's original behavior.
func (c CustomerInfo) Complete() bool {
	return c.FirstName != "" &&
		c.LastName != "" &&
		c.Email != "" &&
		c.Address != "" &&
		c.City != "" &&
		c.State != "" &&
		c.ZipCode != ""
}

// PaymentInfo holds the payment form fields. Never persisted or
// transmitted anywhere; no Luhn or expiry validation.
type PaymentInfo struct {
	CardNumber string
	ExpiryDate string
	CVV        string
	CardName   string
}

// Complete reports whether every payment field is filled in.
func (p PaymentInfo) Complete() bool {
	return p.CardNumber != "" &&
		p.ExpiryDate != "" &&
		p.CVV != "" &&
		p.CardName != ""
}

package http

import (
	"github.com/acehidan/otastaionary-ecommence/internal/checkout"
	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

type ProductDTO struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           string  `json:"price"`
	OriginalPrice   string  `json:"original_price,omitempty"`
	DiscountPercent int     `json:"discount_percent,omitempty"`
	Currency        string  `json:"currency"`
	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
	IsNew           bool    `json:"is_new"`
	IsSale          bool    `json:"is_sale"`
}

func toProductDTO(p domain.Product) ProductDTO {
	dto := ProductDTO{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price.String(),
		DiscountPercent: p.DiscountPercent(),
		Currency:        p.Price.Currency.String(),
		Rating:          p.Rating,
		Reviews:         p.Reviews,
		Image:           p.Image,
		Category:        p.Category.String(),
		IsNew:           p.IsNew,
		IsSale:          p.IsSale,
	}
	if p.OriginalPrice != nil {
		dto.OriginalPrice = p.OriginalPrice.String()
	}
	return dto
}

func toProductDTOs(products []domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

type CartItemDTO struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartDTO struct {
	Items      []CartItemDTO `json:"items"`
	TotalItems int           `json:"total_items"`
}

func toCartDTO(items []domain.CartItem, totalItems int) CartDTO {
	dto := CartDTO{
		Items:      make([]CartItemDTO, 0, len(items)),
		TotalItems: totalItems,
	}
	for _, item := range items {
		dto.Items = append(dto.Items, CartItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price.String(),
			Image:     item.Image,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().String(),
		})
	}
	return dto
}

type CustomerInfoDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

func (d CustomerInfoDTO) toDomain() domain.CustomerInfo {
	return domain.CustomerInfo{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		City:      d.City,
		State:     d.State,
		ZipCode:   d.ZipCode,
		Country:   d.Country,
	}
}

type PaymentInfoDTO struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	CardName   string `json:"card_name"`
}

func (d PaymentInfoDTO) toDomain() domain.PaymentInfo {
	return domain.PaymentInfo{
		CardNumber: d.CardNumber,
		ExpiryDate: d.ExpiryDate,
		CVV:        d.CVV,
		CardName:   d.CardName,
	}
}

type CheckoutStateDTO struct {
	Step             int    `json:"step"`
	StepName         string `json:"step_name"`
	Status           string `json:"status"`
	CanContinue      bool   `json:"can_continue"`
	ShippingComplete bool   `json:"shipping_complete"`
	PaymentComplete  bool   `json:"payment_complete"`
}

func toCheckoutStateDTO(s *checkout.Session) CheckoutStateDTO {
	step := s.Step()
	return CheckoutStateDTO{
		Step:             int(step),
		StepName:         step.String(),
		Status:           s.Status().String(),
		CanContinue:      s.StepValid(step),
		ShippingComplete: s.StepValid(checkout.StepShipping),
		PaymentComplete:  s.StepValid(checkout.StepPayment),
	}
}

type SummaryDTO struct {
	Subtotal     string `json:"subtotal"`
	Shipping     string `json:"shipping"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`
	FreeShipping bool   `json:"free_shipping"`
	Currency     string `json:"currency"`
}

func toSummaryDTO(s checkout.Summary) SummaryDTO {
	return SummaryDTO{
		Subtotal:     s.Subtotal.String(),
		Shipping:     s.Shipping.String(),
		Tax:          s.Tax.String(),
		Total:        s.Total.String(),
		FreeShipping: s.FreeShipping,
		Currency:     s.Total.Currency.String(),
	}
}

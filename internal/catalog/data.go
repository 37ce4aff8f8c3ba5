package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

func price(amount int64) domain.Money {
	return domain.USD(decimal.NewFromInt(amount))
}

func pricePtr(amount int64) *domain.Money {
	m := price(amount)
	return &m
}

// defaultProducts is the storefront's featured product list.
func defaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "Pilot Disposal Fountain Pen",
			Price:         price(12000),
			OriginalPrice: pricePtr(15000),
			Rating:        4.8,
			Reviews:       156,
			Image:         "https://df3k2q0k3bu2n.cloudfront.net/static/images/PENRPISVP4MBL.webp",
			Category:      domain.CategoryPensAndPencils,
			IsNew:         true,
			IsSale:        true,
		},
		{
			ID:       2,
			Name:     "A'zone Uno Ring Note Book",
			Price:    price(25000),
			Rating:   4.9,
			Reviews:  203,
			Image:    "https://df3k2q0k3bu2n.cloudfront.net/static/images/NOTBAZUNOA5-all.jpg",
			Category: domain.CategoryNotebooks,
		},
		{
			ID:            3,
			Name:          "Pilot Mechanical Pencil Shaker",
			Price:         price(25000),
			OriginalPrice: pricePtr(34990),
			Rating:        4.7,
			Reviews:       89,
			Image:         "https://df3k2q0k3bu2n.cloudfront.net/static/images/MECPPISH1010_sq.jpg",
			Category:      domain.CategoryPensAndPencils,
			IsSale:        true,
		},
		{
			ID:       4,
			Name:     "Steel Metal Ruler 12 Inch",
			Price:    price(17500),
			Rating:   4.6,
			Reviews:  124,
			Image:    "https://df3k2q0k3bu2n.cloudfront.net/static/images/steel-metal-ruler-12-inch_sq.jpg",
			Category: domain.CategoryDeskAccessories,
			IsNew:    true,
		},
		{
			ID:       5,
			Name:     "Staedtler Acrylic Paint 12 Colour",
			Price:    price(78000),
			Rating:   4.8,
			Reviews:  67,
			Image:    "https://df3k2q0k3bu2n.cloudfront.net/static/images/staedtler-acrylic-paint-12-colour-8500c12-1a_sq.jpg",
			Category: domain.CategoryArtMaterials,
		},
		{
			ID:       6,
			Name:     "PaperOne Premium Paper A4",
			Price:    price(32000),
			Rating:   4.7,
			Reviews:  198,
			Image:    "https://df3k2q0k3bu2n.cloudfront.net/static/images/PPCPPONE-2_sq.jpg",
			Category: domain.CategoryNotebooks,
		},
		{
			ID:            7,
			Name:          "Pentel Permanent Marker",
			Price:         price(18000),
			OriginalPrice: pricePtr(25000),
			Rating:        4.5,
			Reviews:       142,
			Image:         "https://df3k2q0k3bu2n.cloudfront.net/static/images/PERMPEN850-060325.jpg",
			Category:      domain.CategoryPensAndPencils,
			IsSale:        true,
		},
		{
			ID:       8,
			Name:     "Deli Scissors 170mm",
			Price:    price(15000),
			Rating:   4,
			Reviews:  76,
			Image:    "https://df3k2q0k3bu2n.cloudfront.net/static/images/E0603_3_sq.jpg",
			Category: domain.CategoryOfficeSupplies,
		},
		{
			ID:       9,
			Name:     "Deli Stapler (25 Sheets)",
			Price:    price(12000),
			Rating:   4.4,
			Reviews:  80,
			Image:    "https://df3k2q0k3bu2n.cloudfront.net/static/images/E1E0312-1_sq.jpg",
			Category: domain.CategoryOfficeSupplies,
		},
		{
			ID:       10,
			Name:     "PVC Arch File 3 Inch A4 No Index",
			Price:    price(18000),
			Rating:   4.6,
			Reviews:  70,
			Image:    "https://df3k2q0k3bu2n.cloudfront.net/static/images/ARCFPVC3INA4-1_sq_WIgEQeU.jpg",
			Category: domain.CategoryOfficeSupplies,
		},
		{
			ID:            11,
			Name:          "Pilot Polymer Mechanical Pencil Lead 2B 0.5mm",
			Price:         price(22000),
			OriginalPrice: pricePtr(25000),
			Rating:        4.5,
			Reviews:       142,
			Image:         "https://df3k2q0k3bu2n.cloudfront.net/static/images/PENLPI0P52B_sq.jpg",
			Category:      domain.CategoryPensAndPencils,
			IsSale:        true,
		},
		{
			ID:       12,
			Name:     "Deli Mesh Desk Organizer",
			Price:    price(40500),
			Rating:   4.6,
			Reviews:  124,
			Image:    "https://df3k2q0k3bu2n.cloudfront.net/static/images/E9175_sq.jpg",
			Category: domain.CategoryDeskAccessories,
			IsNew:    true,
		},
	}
}

package domain

import "github.com/shopspring/decimal"

// Category is one of the fixed storefront categories. CategoryAll is a
// filter sentinel, not a category a product can belong to.
type Category string

const (
	CategoryAll             Category = "All Products"
	CategoryPensAndPencils  Category = "Pens & Pencils"
	CategoryNotebooks       Category = "Notebooks"
	CategoryOfficeSupplies  Category = "Office Supplies"
	CategoryArtMaterials    Category = "Art Materials"
	CategoryDeskAccessories Category = "Desk Accessories"
)

// Categories returns the categories in display order, CategoryAll first.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryPensAndPencils,
		CategoryNotebooks,
		CategoryOfficeSupplies,
		CategoryArtMaterials,
		CategoryDeskAccessories,
	}
}

func (c Category) String() string {
	return string(c)
}

type Product struct {
	ID            int64
	Name          string
	Price         Money
	OriginalPrice *Money // pre-sale price, >= Price when set
	Rating        float64
	Reviews       int
	Image         string
	Category      Category
	IsNew         bool
	IsSale        bool
}

// DiscountPercent derives the display discount from the original price,
// rounded to the nearest whole percent. Zero when there is no original
// price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || p.OriginalPrice.Amount.IsZero() {
		return 0
	}
	diff := p.OriginalPrice.Amount.Sub(p.Price.Amount)
	pct := diff.Div(p.OriginalPrice.Amount).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

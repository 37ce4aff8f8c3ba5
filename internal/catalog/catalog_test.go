package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

func ids(products []domain.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestCatalog_All_PreservesDisplayOrder(t *testing.T) {
	c := New()

	all := c.All()
	assert.Len(t, all, 12)

	want := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if diff := cmp.Diff(want, ids(all)); diff != "" {
		t.Errorf("catalog order mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_Get(t *testing.T) {
	c := New()

	p, err := c.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "Staedtler Acrylic Paint 12 Colour", p.Name)
	assert.Equal(t, domain.CategoryArtMaterials, p.Category)

	_, err = c.Get(999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalog_FilterByCategory(t *testing.T) {
	c := New()

	tests := []struct {
		category domain.Category
		wantIDs  []int64
	}{
		{domain.CategoryAll, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{domain.CategoryPensAndPencils, []int64{1, 3, 7, 11}},
		{domain.CategoryNotebooks, []int64{2, 6}},
		{domain.CategoryOfficeSupplies, []int64{8, 9, 10}},
		{domain.CategoryArtMaterials, []int64{5}},
		{domain.CategoryDeskAccessories, []int64{4, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got := c.FilterByCategory(tt.category)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestCatalog_Search_CaseInsensitiveSubstring(t *testing.T) {
	c := New()

	assert.Equal(t, []int64{1, 3, 11}, ids(c.Search("pilot")))
	assert.Equal(t, []int64{1, 3, 11}, ids(c.Search("PILOT")))
	assert.Equal(t, []int64{8, 9, 12}, ids(c.Search("deli")))
	assert.Empty(t, c.Search("typewriter"))

	// Empty query matches everything
	assert.Len(t, c.Search(""), 12)
}

func TestCatalog_Find_CombinesCategoryAndQuery(t *testing.T) {
	c := New()

	got := c.Find(domain.CategoryPensAndPencils, "pencil")
	assert.Equal(t, []int64{3, 11}, ids(got))

	// Query matches in another category only
	assert.Empty(t, c.Find(domain.CategoryNotebooks, "pilot"))
}

func TestProduct_DiscountPercent(t *testing.T) {
	c := New()

	tests := []struct {
		id   int64
		want int
	}{
		{1, 20},  // 15000 -> 12000
		{3, 29},  // 34990 -> 25000
		{7, 28},  // 25000 -> 18000
		{11, 12}, // 25000 -> 22000
		{2, 0},   // no original price
	}

	for _, tt := range tests {
		p, err := c.Get(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.DiscountPercent(), "product %d", tt.id)
	}
}

func TestCatalog_ProductInvariants(t *testing.T) {
	c := New()

	for _, p := range c.All() {
		assert.Positive(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.False(t, p.Price.Amount.IsNegative(), "product %d price", p.ID)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.Reviews, 0)
		assert.NotEqual(t, domain.CategoryAll, p.Category, "product %d must have a real category", p.ID)

		if p.OriginalPrice != nil {
			assert.True(t, p.OriginalPrice.Amount.GreaterThanOrEqual(p.Price.Amount),
				"product %d original price below sale price", p.ID)
		}
	}
}

package cart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

func product(id int64, name string, price int64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Price:    domain.USD(decimal.NewFromInt(price)),
		Category: domain.CategoryNotebooks,
	}
}

func TestCart_Add_MergesByProductID(t *testing.T) {
	c := New()
	pen := product(1, "Pen", 12000)

	c.Add(pen, 2)
	c.Add(pen, 3)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, c.TotalCount())
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	c := New()

	c.Add(product(3, "Ruler", 17500), 1)
	c.Add(product(1, "Pen", 12000), 1)
	c.Add(product(2, "Notebook", 25000), 1)

	// Re-adding the first product must not move it
	c.Add(product(3, "Ruler", 17500), 4)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(1), items[1].ProductID)
	assert.Equal(t, int64(2), items[2].ProductID)
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := New()
	c.Add(product(1, "Pen", 12000), 2)

	c.UpdateQuantity(1, 7)
	assert.Equal(t, 7, c.Items()[0].Quantity)

	// Unknown product is a no-op
	c.UpdateQuantity(42, 3)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 7, c.TotalCount())
}

func TestCart_Remove(t *testing.T) {
	c := New()
	c.Add(product(1, "Pen", 12000), 1)
	c.Add(product(2, "Notebook", 25000), 1)

	c.Remove(1)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)
}

func TestCart_Remove_AbsentIsNoOp(t *testing.T) {
	c := New()
	c.Add(product(1, "Pen", 12000), 1)

	c.Remove(999)
	assert.Equal(t, 1, c.Len())
}

func TestCart_TotalCount_TracksOperationSequence(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.TotalCount())

	c.Add(product(1, "Pen", 12000), 2)
	c.Add(product(2, "Notebook", 25000), 1)
	assert.Equal(t, 3, c.TotalCount())

	c.Add(product(1, "Pen", 12000), 4)
	assert.Equal(t, 7, c.TotalCount())

	c.UpdateQuantity(2, 5)
	assert.Equal(t, 11, c.TotalCount())

	c.Remove(1)
	assert.Equal(t, 5, c.TotalCount())

	c.Clear()
	assert.Equal(t, 0, c.TotalCount())
	assert.Equal(t, 0, c.Len())
}

func TestCart_LineTotal(t *testing.T) {
	c := New()
	c.Add(product(1, "Pen", 12000), 3)

	assert.Equal(t, "36000.00", c.Items()[0].LineTotal().String())
}

func TestCart_ConcurrentAdds(t *testing.T) {
	c := New()
	pen := product(1, "Pen", 12000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(pen, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 50, c.TotalCount())
}

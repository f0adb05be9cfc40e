package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleGenerator_Generate(t *testing.T) {
	sales := NewSaleGenerator(7, nil).Generate(200)

	require.Len(t, sales, 200)
	for _, sale := range sales {
		require.NoError(t, sale.Validate())
		assert.Contains(t, DefaultSaleCategories, sale.Category)
		assert.True(t, sale.Price.Decimal.GreaterThan(decimal.Zero))
		assert.LessOrEqual(t, sale.Price.Decimal.Exponent(), int32(0))
		assert.GreaterOrEqual(t, sale.Price.Decimal.Exponent(), int32(-2))
		assert.True(t, sale.Quantity.Decimal.IsInteger())
		assert.True(t, sale.Quantity.Decimal.GreaterThanOrEqual(decimal.NewFromInt(1)))
	}
}

func TestSaleGenerator_SameSeedSameSales(t *testing.T) {
	first := NewSaleGenerator(99, nil).Generate(20)
	second := NewSaleGenerator(99, nil).Generate(20)

	for i := range first {
		assert.Equal(t, first[i].Category, second[i].Category)
		assert.True(t, first[i].LineTotal().Equal(second[i].LineTotal()))
	}
}

func TestSaleGenerator_CustomCategories(t *testing.T) {
	sales := NewSaleGenerator(1, []string{"Only"}).Generate(5)

	for _, sale := range sales {
		assert.Equal(t, "Only", sale.Category)
	}
}

func TestSaleGenerator_NonPositiveCount(t *testing.T) {
	assert.Empty(t, NewSaleGenerator(1, nil).Generate(0))
	assert.Empty(t, NewSaleGenerator(1, nil).Generate(-3))
}

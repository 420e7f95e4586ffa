package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

func TestCalculateSingleItemNoDiscountNoTax(t *testing.T) {
	items := []model.LineItem{
		{Description: "Development", Quantity: 1, UnitPrice: 150.00},
	}

	breakdown, err := Calculate(items, model.DiscountSpec{}, model.TaxSpec{})
	require.NoError(t, err)

	assert.Equal(t, 150.00, breakdown.Subtotal)
	assert.Equal(t, 0.00, breakdown.DiscountAmount)
	assert.Equal(t, 0.00, breakdown.TaxAmount)
	assert.Equal(t, 150.00, breakdown.Total)
}

func TestCalculatePercentageDiscountThenTax(t *testing.T) {
	items := []model.LineItem{
		{Description: "Research", Quantity: 1, UnitPrice: 120.00},
		{Description: "Write-up", Quantity: 2, UnitPrice: 40.00},
	}
	discount := model.DiscountSpec{Value: 10, Type: model.DiscountTypePercentage}
	tax := model.TaxSpec{Rate: 5}

	breakdown, err := Calculate(items, discount, tax)
	require.NoError(t, err)

	assert.Equal(t, 200.00, breakdown.Subtotal)
	assert.Equal(t, 20.00, breakdown.DiscountAmount)
	// Tax applies to the discounted base, not the raw subtotal.
	assert.Equal(t, 9.00, breakdown.TaxAmount)
	assert.Equal(t, 189.00, breakdown.Total)
}

func TestCalculateFixedDiscountClampedToSubtotal(t *testing.T) {
	items := []model.LineItem{
		{Description: "Proofreading", Quantity: 1, UnitPrice: 30.00},
	}
	discount := model.DiscountSpec{Value: 50, Type: model.DiscountTypeFixed}

	_, err := Calculate(items, discount, model.TaxSpec{Rate: 15})
	// Discount clamps to the full subtotal, which zeroes the total.
	require.ErrorIs(t, err, ErrNonPositiveTotal)
}

func TestCalculateFixedDiscountWithinSubtotal(t *testing.T) {
	items := []model.LineItem{
		{Description: "Implementation", Quantity: 4, UnitPrice: 50.00},
	}
	discount := model.DiscountSpec{Value: 50, Type: model.DiscountTypeFixed}
	tax := model.TaxSpec{Rate: 10}

	breakdown, err := Calculate(items, discount, tax)
	require.NoError(t, err)

	assert.Equal(t, 200.00, breakdown.Subtotal)
	assert.Equal(t, 50.00, breakdown.DiscountAmount)
	assert.Equal(t, 15.00, breakdown.TaxAmount)
	assert.Equal(t, 165.00, breakdown.Total)
}

func TestCalculateRejectsEmptyAfterFiltering(t *testing.T) {
	items := []model.LineItem{
		{Description: "   ", Quantity: 1, UnitPrice: 100},
		{Description: "Free extra", Quantity: 1, UnitPrice: 0},
		{Description: "Mistyped", Quantity: 0, UnitPrice: 80},
	}

	_, err := Calculate(items, model.DiscountSpec{}, model.TaxSpec{})
	require.ErrorIs(t, err, ErrNoLineItems)
}

func TestCalculateSubtotalIndependentOfOrder(t *testing.T) {
	a := model.LineItem{Description: "Chapter 1", Quantity: 3, UnitPrice: 33.34}
	b := model.LineItem{Description: "Chapter 2", Quantity: 2, UnitPrice: 75.55}
	c := model.LineItem{Description: "Slides", Quantity: 1, UnitPrice: 19.99}

	first, err := Calculate([]model.LineItem{a, b, c}, model.DiscountSpec{}, model.TaxSpec{})
	require.NoError(t, err)
	second, err := Calculate([]model.LineItem{c, a, b}, model.DiscountSpec{}, model.TaxSpec{})
	require.NoError(t, err)

	assert.Equal(t, first.Subtotal, second.Subtotal)
	assert.Equal(t, first.Total, second.Total)
}

func TestCalculateIdempotent(t *testing.T) {
	items := []model.LineItem{
		{Description: "Prototype", Quantity: 2, UnitPrice: 87.65},
	}
	discount := model.DiscountSpec{Value: 12.5, Type: model.DiscountTypePercentage}
	tax := model.TaxSpec{Rate: 14.5}

	first, err := Calculate(items, discount, tax)
	require.NoError(t, err)
	second, err := Calculate(items, discount, tax)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateRoundsOnceAtTheEnd(t *testing.T) {
	items := []model.LineItem{
		{Description: "Tutoring", Quantity: 3, UnitPrice: 33.33},
	}
	discount := model.DiscountSpec{Value: 7, Type: model.DiscountTypePercentage}

	breakdown, err := Calculate(items, discount, model.TaxSpec{})
	require.NoError(t, err)

	assert.Equal(t, 99.99, breakdown.Subtotal)
	assert.Equal(t, 7.00, breakdown.DiscountAmount)
	assert.Equal(t, 92.99, breakdown.Total)
}

func TestFilterItemsPreservesOrder(t *testing.T) {
	items := []model.LineItem{
		{Description: "First", Quantity: 1, UnitPrice: 10},
		{Description: "", Quantity: 1, UnitPrice: 10},
		{Description: "Second", Quantity: 1, UnitPrice: 10},
	}

	valid := FilterItems(items)
	require.Len(t, valid, 2)
	assert.Equal(t, "First", valid[0].Description)
	assert.Equal(t, "Second", valid[1].Description)
}

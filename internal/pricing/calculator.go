package pricing

import (
	"errors"
	"math"
	"strings"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

var (
	ErrNoLineItems      = errors.New("no valid line items")
	ErrNonPositiveTotal = errors.New("quotation total must be positive")
)

// FilterItems drops entries that cannot be billed: blank descriptions,
// non-positive quantities or unit prices. Order of the survivors is preserved.
func FilterItems(items []model.LineItem) []model.LineItem {
	valid := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			continue
		}
		if item.Quantity <= 0 || item.UnitPrice <= 0 {
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

// Calculate produces the pricing breakdown for a set of line items. Discounts
// apply to the subtotal and are clamped so the pre-tax base never goes
// negative; tax applies to the discounted base. Intermediate math keeps full
// float precision, each output field is rounded to cents once at the end.
func Calculate(items []model.LineItem, discount model.DiscountSpec, tax model.TaxSpec) (model.QuotationBreakdown, error) {
	valid := FilterItems(items)
	if len(valid) == 0 {
		return model.QuotationBreakdown{}, ErrNoLineItems
	}

	var subtotal float64
	for _, item := range valid {
		subtotal += item.Amount()
	}

	discountAmount := discountOn(subtotal, discount)
	taxAmount := (subtotal - discountAmount) * tax.Rate / 100
	total := subtotal - discountAmount + taxAmount

	breakdown := model.QuotationBreakdown{
		Subtotal:       round2(subtotal),
		DiscountAmount: round2(discountAmount),
		TaxAmount:      round2(taxAmount),
		Total:          round2(total),
	}
	if breakdown.Total <= 0 {
		return model.QuotationBreakdown{}, ErrNonPositiveTotal
	}
	return breakdown, nil
}

func discountOn(subtotal float64, discount model.DiscountSpec) float64 {
	if discount.Value <= 0 {
		return 0
	}
	var amount float64
	switch discount.Type {
	case model.DiscountTypeFixed:
		amount = discount.Value
	default:
		amount = subtotal * discount.Value / 100
	}
	if amount > subtotal {
		return subtotal
	}
	return amount
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

package calc

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentDiscount computes subtotal * percent / 100, capped at maxAmount
// when a positive cap is supplied.
func PercentDiscount(subtotal, percent decimal.Decimal, maxAmount decimal.NullDecimal) decimal.Decimal {
	discount := subtotal.Mul(percent).Div(hundred)
	if maxAmount.Valid && maxAmount.Decimal.IsPositive() && discount.GreaterThan(maxAmount.Decimal) {
		discount = maxAmount.Decimal
	}
	return discount
}

// ClampDiscount keeps a discount from exceeding the order subtotal, so
// the payable amount never goes negative.
func ClampDiscount(discount, subtotal decimal.Decimal) decimal.Decimal {
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

// OrderAmount is the final payable total.
func OrderAmount(subtotal, discount, shippingFee decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Add(shippingFee)
}

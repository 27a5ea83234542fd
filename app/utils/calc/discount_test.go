package calc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestPercentDiscount(t *testing.T) {
	tests := []struct {
		name      string
		subtotal  decimal.Decimal
		percent   decimal.Decimal
		maxAmount decimal.NullDecimal
		want      decimal.Decimal
	}{
		{name: "plain percent", subtotal: d(200000), percent: d(10), want: d(20000)},
		{name: "capped", subtotal: d(2000000), percent: d(10), maxAmount: decimal.NewNullDecimal(d(100000)), want: d(100000)},
		{name: "under cap", subtotal: d(500000), percent: d(10), maxAmount: decimal.NewNullDecimal(d(100000)), want: d(50000)},
		{name: "zero cap ignored", subtotal: d(500000), percent: d(10), maxAmount: decimal.NewNullDecimal(d(0)), want: d(50000)},
		{name: "null cap ignored", subtotal: d(500000), percent: d(10), want: d(50000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentDiscount(tt.subtotal, tt.percent, tt.maxAmount)
			if !got.Equal(tt.want) {
				t.Errorf("PercentDiscount = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClampDiscount(t *testing.T) {
	if got := ClampDiscount(d(500000), d(120000)); !got.Equal(d(120000)) {
		t.Errorf("ClampDiscount over subtotal = %s, want 120000", got)
	}
	if got := ClampDiscount(d(50000), d(120000)); !got.Equal(d(50000)) {
		t.Errorf("ClampDiscount under subtotal = %s, want 50000", got)
	}
	if got := ClampDiscount(d(120000), d(120000)); !got.Equal(d(120000)) {
		t.Errorf("ClampDiscount equal = %s, want 120000", got)
	}
}

func TestOrderAmount(t *testing.T) {
	got := OrderAmount(d(250000), d(50000), d(0))
	if !got.Equal(d(200000)) {
		t.Errorf("OrderAmount = %s, want 200000", got)
	}

	withShipping := OrderAmount(d(250000), d(50000), d(30000))
	if !withShipping.Equal(d(230000)) {
		t.Errorf("OrderAmount with shipping = %s, want 230000", withShipping)
	}

	// A clamped discount keeps the total at zero, never negative.
	clamped := OrderAmount(d(100000), ClampDiscount(d(500000), d(100000)), d(0))
	if !clamped.IsZero() {
		t.Errorf("OrderAmount clamped = %s, want 0", clamped)
	}
}

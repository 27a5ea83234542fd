package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var vnd = accounting.Accounting{Symbol: "₫", Precision: 0, Thousand: ".", Format: "%v%s"}

// VND renders an amount the way the storefront displays prices,
// e.g. 250000 -> "250.000₫".
func VND(amount decimal.Decimal) string {
	return vnd.FormatMoneyDecimal(amount)
}

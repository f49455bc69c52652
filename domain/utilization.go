package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DeriveUtilization returns balance/limit as a percentage. A limit that is
// zero or negative yields 0.
func DeriveUtilization(balance, limit decimal.Decimal) float64 {
	if !limit.IsPositive() {
		return 0
	}
	return balance.Div(limit).Mul(hundred).InexactFloat64()
}

package service

import "github.com/shopspring/decimal"

var (
	MaxMoneyAmount = decimal.NewFromInt(1_000_000_000_000) // 1 trillion
)

const (
	MaxMissedPayments = 24 // one per month over the trailing two years
	MaxAccountCount   = 1000
	MaxInquiries      = 1000

	// Utilization above this is reported as high in the key factors.
	HighUtilizationPercent = 30.0
	// Credit age below this many years is reported as short.
	ShortHistoryYears = 4
	// Each missed payment removes this much from the payment history percentage.
	MissedPaymentPenaltyPercent = 10
)

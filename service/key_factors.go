package service

import "creditwise/domain"

// KeyFactors summarises the inputs that drive the score the most.
func KeyFactors(in domain.CreditInput) []domain.KeyFactor {
	util := in.Utilization()
	utilStatus := "Healthy"
	if util > HighUtilizationPercent {
		utilStatus = "High"
	}

	onTime := max(0, 100-in.MissedPayments*MissedPaymentPenaltyPercent)
	paymentStatus := "On Time"
	if in.MissedPayments > 0 {
		paymentStatus = "Needs Work"
	}

	ageStatus := "Established"
	if in.CreditHistoryYears < ShortHistoryYears {
		ageStatus = "Short"
	}

	return []domain.KeyFactor{
		{Name: "card_utilization", Value: util, Unit: "%", Status: utilStatus},
		{Name: "payment_history", Value: float64(onTime), Unit: "%", Status: paymentStatus},
		{Name: "credit_age", Value: float64(in.CreditHistoryYears), Unit: "years", Status: ageStatus},
	}
}

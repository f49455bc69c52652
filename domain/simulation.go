package domain

import "github.com/shopspring/decimal"

// SimulationInput is the request body of a what-if simulation.
type SimulationInput struct {
	Profile     CreditInput `json:"profile"`
	Adjustments Adjustments `json:"adjustments"`
}

// SimulationResult is the outcome of scoring a baseline and an adjusted input.
type SimulationResult struct {
	BaselineScore        int             `json:"baseline_score"`
	ProjectedScore       int             `json:"projected_score"`
	Delta                int             `json:"delta"`
	BaselineRating       Rating          `json:"baseline_rating"`
	ProjectedRating      Rating          `json:"projected_rating"`
	BaselineUtilization  float64         `json:"baseline_utilization"`
	ProjectedUtilization float64         `json:"projected_utilization"`
	ProjectedInquiries   int             `json:"projected_inquiries"`
	RemainingCardBalance decimal.Decimal `json:"remaining_card_balance"`
	RemainingLoanBalance decimal.Decimal `json:"remaining_loan_balance"`
	AppliedCardPaydown   decimal.Decimal `json:"applied_card_paydown"`
	AppliedLoanPaydown   decimal.Decimal `json:"applied_loan_paydown"`
	Strategy             string          `json:"strategy,omitempty"`
}

package domain

import "github.com/shopspring/decimal"

// FinancialProfile is the scoring input. It is built fresh for every
// computation and never mutated by the engine.
type FinancialProfile struct {
	MissedPayments       int
	HasDefault           bool
	RevolvingUtilization float64
	CreditHistoryYears   int
	NumCreditCards       int
	NumLoans             int
	RecentInquiries      int
}

// CreditInput holds the raw values a caller collects before scoring.
// AnnualIncome and LoanBalance are informational and never feed the score.
type CreditInput struct {
	AnnualIncome       decimal.Decimal `json:"annual_income"`
	CardLimit          decimal.Decimal `json:"card_limit"`
	CardBalance        decimal.Decimal `json:"card_balance"`
	LoanBalance        decimal.Decimal `json:"loan_balance"`
	CreditHistoryYears int             `json:"credit_history_years" yaml:"credit_history_years" validate:"gte=0,lte=100"`
	MissedPayments     int             `json:"missed_payments" yaml:"missed_payments" validate:"gte=0"`
	HasDefault         bool            `json:"has_default" yaml:"has_default"`
	NumCreditCards     int             `json:"num_credit_cards" yaml:"num_credit_cards" validate:"gte=0"`
	NumLoans           int             `json:"num_loans" yaml:"num_loans" validate:"gte=0"`
	RecentInquiries    int             `json:"recent_inquiries" yaml:"recent_inquiries" validate:"gte=0"`
}

// Utilization returns the revolving utilization percentage of the input.
func (in CreditInput) Utilization() float64 {
	return DeriveUtilization(in.CardBalance, in.CardLimit)
}

// Profile derives the scoring profile from the raw input.
func (in CreditInput) Profile() FinancialProfile {
	return FinancialProfile{
		MissedPayments:       in.MissedPayments,
		HasDefault:           in.HasDefault,
		RevolvingUtilization: in.Utilization(),
		CreditHistoryYears:   in.CreditHistoryYears,
		NumCreditCards:       in.NumCreditCards,
		NumLoans:             in.NumLoans,
		RecentInquiries:      in.RecentInquiries,
	}
}

// Adjustments describe a what-if scenario applied on top of a CreditInput.
type Adjustments struct {
	CardPaydown  decimal.Decimal `json:"card_paydown"`
	LoanPaydown  decimal.Decimal `json:"loan_paydown"`
	AgeInquiries bool            `json:"age_inquiries"`
}

// IsZero reports whether the adjustments leave the input unchanged.
func (a Adjustments) IsZero() bool {
	return !a.CardPaydown.IsPositive() && !a.LoanPaydown.IsPositive() && !a.AgeInquiries
}

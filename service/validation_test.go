package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditwise/domain"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *domain.CreditInput)
		wantErr string
	}{
		{"valid", func(*domain.CreditInput) {}, ""},
		{"zero everything", func(in *domain.CreditInput) { *in = domain.CreditInput{} }, ""},
		{"negative missed payments", func(in *domain.CreditInput) { in.MissedPayments = -1 }, "missed_payments must be at least 0"},
		{"negative inquiries", func(in *domain.CreditInput) { in.RecentInquiries = -3 }, "recent_inquiries must be at least 0"},
		{"history too long", func(in *domain.CreditInput) { in.CreditHistoryYears = 101 }, "credit_history_years must be at most 100"},
		{"too many missed payments", func(in *domain.CreditInput) { in.MissedPayments = MaxMissedPayments + 1 }, "missed_payments exceeds"},
		{"too many cards", func(in *domain.CreditInput) { in.NumCreditCards = MaxAccountCount + 1 }, "account count exceeds"},
		{"negative balance", func(in *domain.CreditInput) { in.CardBalance = decimal.NewFromInt(-5) }, "card_balance must not be negative"},
		{"huge income", func(in *domain.CreditInput) { in.AnnualIncome = MaxMoneyAmount.Add(decimal.NewFromInt(1)) }, "annual_income exceeds"},
		{"balance above limit", func(in *domain.CreditInput) { in.CardBalance = decimal.NewFromInt(900_000) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleInput()
			tt.mutate(&in)

			err := ValidateInput(in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAdjustments(t *testing.T) {
	assert.NoError(t, ValidateAdjustments(domain.Adjustments{}))
	assert.NoError(t, ValidateAdjustments(domain.Adjustments{CardPaydown: decimal.NewFromInt(1_000_000)}))

	err := ValidateAdjustments(domain.Adjustments{LoanPaydown: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "loan_paydown")
}

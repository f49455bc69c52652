package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"creditwise/domain"
)

// ErrInvalidInput is returned for inputs the scoring model cannot accept.
var ErrInvalidInput = errors.New("invalid input")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateInput rejects negative counts and money amounts. Upper bounds only
// guard against absurd values; the scoring model itself accepts anything.
func ValidateInput(in domain.CreditInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}
	if in.MissedPayments > MaxMissedPayments {
		return fmt.Errorf("%w: missed_payments exceeds the maximum of %d", ErrInvalidInput, MaxMissedPayments)
	}
	if in.NumCreditCards > MaxAccountCount || in.NumLoans > MaxAccountCount {
		return fmt.Errorf("%w: account count exceeds the maximum of %d", ErrInvalidInput, MaxAccountCount)
	}
	if in.RecentInquiries > MaxInquiries {
		return fmt.Errorf("%w: recent_inquiries exceeds the maximum of %d", ErrInvalidInput, MaxInquiries)
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"annual_income", in.AnnualIncome},
		{"card_limit", in.CardLimit},
		{"card_balance", in.CardBalance},
		{"loan_balance", in.LoanBalance},
	}
	for _, a := range amounts {
		if err := validateAmount(a.name, a.value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAdjustments rejects negative paydowns. Paydowns larger than the
// balance are allowed and clamped during simulation.
func ValidateAdjustments(adj domain.Adjustments) error {
	if err := validateAmount("card_paydown", adj.CardPaydown); err != nil {
		return err
	}
	return validateAmount("loan_paydown", adj.LoanPaydown)
}

func validateAmount(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
	}
	if v.GreaterThan(MaxMoneyAmount) {
		return fmt.Errorf("%w: %s exceeds the maximum of %s", ErrInvalidInput, name, MaxMoneyAmount.String())
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	urfave "github.com/urfave/cli/v3"

	"creditwise/domain"
)

func profileFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{Name: "income", Usage: "Annual income", Value: "1200000"},
		&urfave.StringFlag{Name: "card-limit", Usage: "Total credit card limit", Value: "500000"},
		&urfave.StringFlag{Name: "card-balance", Usage: "Current credit card balance", Value: "30000"},
		&urfave.StringFlag{Name: "loan-balance", Usage: "Remaining installment loan balance", Value: "2000000"},
		&urfave.IntFlag{Name: "history", Usage: "Age of the oldest account in years", Value: 8},
		&urfave.IntFlag{Name: "missed", Usage: "Missed payments in the last 2 years", Value: 0},
		&urfave.BoolFlag{Name: "default", Usage: "Prior bankruptcy or default"},
		&urfave.IntFlag{Name: "cards", Usage: "Number of credit cards", Value: 3},
		&urfave.IntFlag{Name: "loans", Usage: "Number of installment loans", Value: 1},
		&urfave.IntFlag{Name: "inquiries", Usage: "Hard inquiries in the last 6 months", Value: 1},
	}
}

func parseAmount(cmd *urfave.Command, name string) (decimal.Decimal, error) {
	raw := cmd.String(name)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return d, nil
}

func creditInputFromFlags(cmd *urfave.Command) (domain.CreditInput, error) {
	in := domain.CreditInput{
		CreditHistoryYears: cmd.Int("history"),
		MissedPayments:     cmd.Int("missed"),
		HasDefault:         cmd.Bool("default"),
		NumCreditCards:     cmd.Int("cards"),
		NumLoans:           cmd.Int("loans"),
		RecentInquiries:    cmd.Int("inquiries"),
	}

	amounts := []struct {
		flag string
		dst  *decimal.Decimal
	}{
		{"income", &in.AnnualIncome},
		{"card-limit", &in.CardLimit},
		{"card-balance", &in.CardBalance},
		{"loan-balance", &in.LoanBalance},
	}
	for _, a := range amounts {
		v, err := parseAmount(cmd, a.flag)
		if err != nil {
			return domain.CreditInput{}, err
		}
		*a.dst = v
	}
	return in, nil
}

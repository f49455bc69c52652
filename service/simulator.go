package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"creditwise/domain"
)

// InquiriesAgedOff is how many hard inquiries drop off after waiting six months.
const InquiriesAgedOff = 2

// Simulator projects the score impact of what-if adjustments by scoring the
// baseline and the adjusted input independently.
type Simulator struct {
	engine     *ScoreEngine
	classifier *RatingClassifier
}

func NewSimulator(engine *ScoreEngine, classifier *RatingClassifier) *Simulator {
	return &Simulator{engine: engine, classifier: classifier}
}

// ApplyAdjustments returns a copy of in with the adjustments applied, along
// with the paydown amounts actually used after clamping to the balances.
func ApplyAdjustments(
	in domain.CreditInput,
	adj domain.Adjustments,
) (out domain.CreditInput, cardPaid, loanPaid decimal.Decimal) {
	out = in

	cardPaid = clampAmount(adj.CardPaydown, in.CardBalance)
	out.CardBalance = in.CardBalance.Sub(cardPaid)

	loanPaid = clampAmount(adj.LoanPaydown, in.LoanBalance)
	out.LoanBalance = in.LoanBalance.Sub(loanPaid)

	if adj.AgeInquiries {
		out.RecentInquiries = max(0, in.RecentInquiries-InquiriesAgedOff)
	}
	return out, cardPaid, loanPaid
}

// Simulate scores in and its adjusted copy and reports the difference.
func (s *Simulator) Simulate(
	in domain.CreditInput,
	adj domain.Adjustments,
) domain.SimulationResult {
	projected, cardPaid, loanPaid := ApplyAdjustments(in, adj)

	baselineProfile := in.Profile()
	projectedProfile := projected.Profile()

	baselineScore := s.engine.Compute(baselineProfile)
	projectedScore := s.engine.Compute(projectedProfile)

	result := domain.SimulationResult{
		BaselineScore:        baselineScore,
		ProjectedScore:       projectedScore,
		Delta:                projectedScore - baselineScore,
		BaselineRating:       s.classifier.Classify(baselineScore),
		ProjectedRating:      s.classifier.Classify(projectedScore),
		BaselineUtilization:  baselineProfile.RevolvingUtilization,
		ProjectedUtilization: projectedProfile.RevolvingUtilization,
		ProjectedInquiries:   projected.RecentInquiries,
		RemainingCardBalance: projected.CardBalance,
		RemainingLoanBalance: projected.LoanBalance,
		AppliedCardPaydown:   cardPaid,
		AppliedLoanPaydown:   loanPaid,
	}
	result.Strategy = strategyMessage(result, s.cardPaydownGain(in, cardPaid, baselineScore))
	return result
}

// cardPaydownGain scores the card paydown on its own so a combined scenario
// does not credit aged inquiries to the paydown.
func (s *Simulator) cardPaydownGain(in domain.CreditInput, cardPaid decimal.Decimal, baselineScore int) int {
	if !cardPaid.IsPositive() {
		return 0
	}
	cardOnly := in
	cardOnly.CardBalance = in.CardBalance.Sub(cardPaid)
	return s.engine.Compute(cardOnly.Profile()) - baselineScore
}

func strategyMessage(r domain.SimulationResult, cardGain int) string {
	switch {
	case r.Delta > 0 && cardGain > 0:
		return fmt.Sprintf("Paying %s off your credit cards is the fastest way to gain %d points.",
			r.AppliedCardPaydown.StringFixed(0), cardGain)
	case r.Delta > 0:
		return fmt.Sprintf("Letting recent inquiries age off raises the score by %d points.", r.Delta)
	case r.Delta < 0 && r.ProjectedUtilization == 0 && r.BaselineUtilization > 0:
		return fmt.Sprintf("Clearing every card balance removes the revolving usage signal and costs %d points; keeping a small balance scores higher.",
			-r.Delta)
	case r.Delta < 0:
		return fmt.Sprintf("This scenario lowers the score by %d points.", -r.Delta)
	case r.AppliedLoanPaydown.IsPositive():
		return "Paying off installment loans helps your finances, but rarely boosts your credit score immediately."
	default:
		return "Adjust the paydown amounts or age your inquiries to see potential changes."
	}
}

func clampAmount(v, limit decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, decimal.Min(v, limit))
}

package service

import "creditwise/domain"

const (
	BaseScore = 500
	MinScore  = 300
	MaxScore  = 850
)

// tier is one rung of a factor ladder.
type tier struct {
	matches func(p domain.FinancialProfile) bool
	points  int
}

// factor groups ladders that are each evaluated first-match-wins and summed.
type factor struct {
	name    string
	weight  int
	ladders [][]tier
}

func always(domain.FinancialProfile) bool { return true }

var factors = []factor{
	{
		name:   "payment_history",
		weight: 35,
		ladders: [][]tier{
			{
				{func(p domain.FinancialProfile) bool { return p.MissedPayments == 0 && !p.HasDefault }, 110},
				{func(p domain.FinancialProfile) bool { return p.MissedPayments == 1 }, 60},
				{func(p domain.FinancialProfile) bool { return p.MissedPayments <= 2 }, 30},
				{always, -20},
			},
			{
				{func(p domain.FinancialProfile) bool { return p.HasDefault }, -70},
			},
		},
	},
	{
		name:   "utilization",
		weight: 30,
		ladders: [][]tier{{
			// Zero utilization scores below light usage: no revolving signal at all.
			{func(p domain.FinancialProfile) bool { return p.RevolvingUtilization == 0 }, 60},
			{func(p domain.FinancialProfile) bool { return p.RevolvingUtilization < 10 }, 85},
			{func(p domain.FinancialProfile) bool { return p.RevolvingUtilization < 30 }, 70},
			{func(p domain.FinancialProfile) bool { return p.RevolvingUtilization < 50 }, 40},
			{func(p domain.FinancialProfile) bool { return p.RevolvingUtilization < 75 }, 10},
			{always, -30},
		}},
	},
	{
		name:   "history_length",
		weight: 15,
		ladders: [][]tier{{
			{func(p domain.FinancialProfile) bool { return p.CreditHistoryYears < 2 }, 10},
			{func(p domain.FinancialProfile) bool { return p.CreditHistoryYears < 5 }, 35},
			{func(p domain.FinancialProfile) bool { return p.CreditHistoryYears < 10 }, 55},
			{func(p domain.FinancialProfile) bool { return p.CreditHistoryYears < 20 }, 70},
			{always, 85},
		}},
	},
	{
		name:   "new_credit",
		weight: 10,
		ladders: [][]tier{{
			{func(p domain.FinancialProfile) bool { return p.RecentInquiries == 0 }, 30},
			{func(p domain.FinancialProfile) bool { return p.RecentInquiries <= 1 }, 20},
			{func(p domain.FinancialProfile) bool { return p.RecentInquiries <= 2 }, 10},
			{always, -10},
		}},
	},
	{
		name:   "credit_mix",
		weight: 10,
		ladders: [][]tier{{
			{func(p domain.FinancialProfile) bool { return p.NumCreditCards > 0 && p.NumLoans > 0 }, 40},
			{func(p domain.FinancialProfile) bool { return p.NumCreditCards > 0 || p.NumLoans > 0 }, 20},
		}},
	},
}

func (f factor) points(p domain.FinancialProfile) int {
	total := 0
	for _, ladder := range f.ladders {
		for _, t := range ladder {
			if t.matches(p) {
				total += t.points
				break
			}
		}
	}
	return total
}

// ScoreEngine computes the rule-based credit score. It holds no state and
// is safe for concurrent use.
type ScoreEngine struct{}

func NewScoreEngine() *ScoreEngine {
	return &ScoreEngine{}
}

// Compute returns the score for p, clamped to [MinScore, MaxScore].
func (e *ScoreEngine) Compute(p domain.FinancialProfile) int {
	score := BaseScore
	for _, f := range factors {
		score += f.points(p)
	}
	return clamp(score)
}

// Breakdown returns the points each factor contributes on top of BaseScore,
// in display order. The sum is the unclamped score minus BaseScore.
func (e *ScoreEngine) Breakdown(p domain.FinancialProfile) []domain.FactorContribution {
	out := make([]domain.FactorContribution, 0, len(factors))
	for _, f := range factors {
		out = append(out, domain.FactorContribution{
			Name:   f.name,
			Weight: f.weight,
			Points: f.points(p),
		})
	}
	return out
}

// FactorWeights returns the display weight of every factor.
func FactorWeights() []domain.FactorWeight {
	out := make([]domain.FactorWeight, 0, len(factors))
	for _, f := range factors {
		out = append(out, domain.FactorWeight{Name: f.name, Weight: f.weight})
	}
	return out
}

func clamp(score int) int {
	return max(MinScore, min(MaxScore, score))
}

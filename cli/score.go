package cli

import (
	"context"
	"slices"

	urfave "github.com/urfave/cli/v3"

	"creditwise/domain"
	"creditwise/service"
)

func newScoreCmd() *urfave.Command {
	return &urfave.Command{
		Name:   "score",
		Usage:  "Compute the score and rating for a profile",
		Flags:  profileFlags(),
		Action: cmdScore,
	}
}

func newSimulateCmd() *urfave.Command {
	return &urfave.Command{
		Name:    "simulate",
		Aliases: []string{"what-if"},
		Usage:   "Project the score impact of paying down debt or aging inquiries",
		Flags: slices.Concat(profileFlags(), []urfave.Flag{
			&urfave.StringFlag{Name: "pay-card", Usage: "Amount of credit card debt to pay down", Value: "0"},
			&urfave.StringFlag{Name: "pay-loan", Usage: "Amount of installment loan to pay down", Value: "0"},
			&urfave.BoolFlag{Name: "age-inquiries", Usage: "Wait 6 months so recent inquiries drop off"},
		}),
		Action: cmdSimulate,
	}
}

func newFactorsCmd() *urfave.Command {
	return &urfave.Command{
		Name:   "factors",
		Usage:  "List the scoring factors and their weights",
		Action: cmdFactors,
	}
}

func cmdScore(ctx context.Context, cmd *urfave.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	in, err := creditInputFromFlags(cmd)
	if err != nil {
		return err
	}

	insight := service.NewInsightService(service.InsightConfig{
		APIKey:    cfg.Insight.APIKey,
		Model:     cfg.Insight.Model,
		MaxTokens: cfg.Insight.MaxTokens,
		Timeout:   cfg.Insight.Timeout,
	}, logger)
	svc := service.NewScoringService(nil, insight, nil, logger)

	report, err := svc.Score(ctx, in)
	if err != nil {
		return err
	}
	return encode(cmd, report)
}

func cmdSimulate(ctx context.Context, cmd *urfave.Command) error {
	_, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	in, err := creditInputFromFlags(cmd)
	if err != nil {
		return err
	}

	adj := domain.Adjustments{AgeInquiries: cmd.Bool("age-inquiries")}
	if adj.CardPaydown, err = parseAmount(cmd, "pay-card"); err != nil {
		return err
	}
	if adj.LoanPaydown, err = parseAmount(cmd, "pay-loan"); err != nil {
		return err
	}

	svc := service.NewSimulationService(nil, logger)
	result, err := svc.Simulate(ctx, domain.SimulationInput{Profile: in, Adjustments: adj})
	if err != nil {
		return err
	}
	return encode(cmd, result)
}

func cmdFactors(_ context.Context, cmd *urfave.Command) error {
	return encode(cmd, map[string]any{
		"base_score": service.BaseScore,
		"min_score":  service.MinScore,
		"max_score":  service.MaxScore,
		"factors":    service.FactorWeights(),
		"gauge":      service.Gauge(),
	})
}

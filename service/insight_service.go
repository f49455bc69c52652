package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"creditwise/domain"
)

const (
	defaultInsightModel     = "claude-3-5-haiku-latest"
	defaultInsightMaxTokens = 300
	defaultInsightTimeout   = 20 * time.Second

	insightSystemPrompt = "You are a credit counsellor. You explain rule-based credit scores in plain language, " +
		"without promising outcomes. Revolving card utilization matters far more than installment loan balances, " +
		"and a utilization of exactly zero scores slightly lower than light card usage because the model sees no revolving activity."
)

type InsightConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// InsightService writes the narrative shown next to a score. It asks an LLM
// when an API key is configured and falls back to a fixed template otherwise.
type InsightService struct {
	client    *anthropic.Client
	model     string
	maxTokens int
	timeout   time.Duration
	enabled   bool
	logger    *slog.Logger
	printer   *message.Printer
}

func NewInsightService(cfg InsightConfig, logger *slog.Logger) *InsightService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &InsightService{
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		enabled:   cfg.APIKey != "",
		logger:    logger,
		printer:   message.NewPrinter(language.English),
	}
	if s.model == "" {
		s.model = defaultInsightModel
	}
	if s.maxTokens <= 0 {
		s.maxTokens = defaultInsightMaxTokens
	}
	if s.timeout <= 0 {
		s.timeout = defaultInsightTimeout
	}
	if s.enabled {
		client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
		s.client = &client
	}
	return s
}

// Enabled reports whether insights are generated by the LLM.
func (s *InsightService) Enabled() bool {
	return s.enabled
}

// Explain returns a short narrative for the report. It never fails; LLM
// errors are logged and the template text is returned instead.
func (s *InsightService) Explain(ctx context.Context, in domain.CreditInput, report domain.ScoreReport) string {
	if !s.enabled {
		return s.fallbackInsight(in, report)
	}

	text, err := s.callLLM(ctx, s.buildPrompt(in, report))
	if err != nil {
		s.logger.Warn("insight generation failed, using fallback", "error", err)
		return s.fallbackInsight(in, report)
	}
	return text
}

func (s *InsightService) buildPrompt(in domain.CreditInput, report domain.ScoreReport) string {
	var factors strings.Builder
	for _, f := range report.Breakdown {
		factors.WriteString(fmt.Sprintf("- %s (weight %d%%): %+d points\n", f.Name, f.Weight, f.Points))
	}

	return fmt.Sprintf(`Explain this credit score to the applicant in 3-4 sentences.

SCORE: %d (%s), base %d, range %d-%d

FACTOR CONTRIBUTIONS:
%s
PROFILE:
- Annual income: %s (not part of the score)
- Card limit: %s, card balance: %s, utilization %.1f%%
- Installment loan balance: %s (does not affect utilization)
- Oldest account: %d years, missed payments: %d, prior default: %t
- Credit cards: %d, loans: %d, hard inquiries in 6 months: %d

Name the single factor with the most room for improvement and one concrete action.`,
		report.Score, report.Label, BaseScore, MinScore, MaxScore,
		factors.String(),
		s.amount(in.AnnualIncome),
		s.amount(in.CardLimit), s.amount(in.CardBalance), report.Utilization,
		s.amount(in.LoanBalance),
		in.CreditHistoryYears, in.MissedPayments, in.HasDefault,
		in.NumCreditCards, in.NumLoans, in.RecentInquiries)
}

func (s *InsightService) callLLM(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(s.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		System: []anthropic.TextBlockParam{
			{Text: insightSystemPrompt},
		},
	}

	resp, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("insight request failed: %w", err)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("no insight text in response")
	}
	return strings.TrimSpace(out.String()), nil
}

func (s *InsightService) fallbackInsight(in domain.CreditInput, report domain.ScoreReport) string {
	return fmt.Sprintf("Your income is %s. While income isn't part of the score directly, it supports your %s credit limit. "+
		"Your score is primarily driven by your %.1f%% card utilization. "+
		"Note that your %s loan balance affects the score much less than card debt.",
		s.amount(in.AnnualIncome), s.amount(in.CardLimit), report.Utilization, s.amount(in.LoanBalance))
}

func (s *InsightService) amount(v decimal.Decimal) string {
	return s.printer.Sprintf("%.0f", v.InexactFloat64())
}

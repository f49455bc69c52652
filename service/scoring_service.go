package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"creditwise/domain"
	"creditwise/repository"
)

const cacheKeyVersion = "v1"

type ScoringService struct {
	engine     *ScoreEngine
	classifier *RatingClassifier
	insight    *InsightService
	cache      repository.CacheRepository
	metrics    MetricsRecorder
	logger     *slog.Logger
}

// NewScoringService wires the scoring pipeline. cache, insight and metrics
// are optional.
func NewScoringService(
	cache repository.CacheRepository,
	insight *InsightService,
	metrics MetricsRecorder,
	logger *slog.Logger,
) *ScoringService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoringService{
		engine:     NewScoreEngine(),
		classifier: NewRatingClassifier(),
		insight:    insight,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
	}
}

// Score validates the input and returns the full score report.
func (s *ScoringService) Score(
	ctx context.Context,
	input domain.CreditInput,
) (domain.ScoreReport, error) {
	if err := ValidateInput(input); err != nil {
		return domain.ScoreReport{}, err
	}

	key := cacheKey(input)
	if report, ok := s.cached(ctx, key); ok {
		s.metrics.ObserveScore(report.Label, report.Score)
		return report, nil
	}

	report := s.Report(input)
	if s.insight != nil {
		report.Insight = s.insight.Explain(ctx, input, report)
	}

	// Caching is not critical.
	if s.cache != nil {
		if b, err := json.Marshal(report); err != nil {
			s.logger.Warn("failed to encode score report", "error", err)
		} else if err := s.cache.Set(ctx, key, string(b)); err != nil {
			s.logger.Warn("failed to cache score report", "key", key, "error", err)
		}
	}

	s.metrics.ObserveScore(report.Label, report.Score)
	s.logger.Debug("score computed",
		"score", report.Score,
		"band", report.Label,
		"utilization", report.Utilization,
	)
	return report, nil
}

// Report computes the score report for an already validated input without
// touching the cache or the insight service.
func (s *ScoringService) Report(input domain.CreditInput) domain.ScoreReport {
	profile := input.Profile()
	score := s.engine.Compute(profile)

	return domain.ScoreReport{
		Score:       score,
		Rating:      s.classifier.Classify(score),
		Utilization: profile.RevolvingUtilization,
		Breakdown:   s.engine.Breakdown(profile),
		KeyFactors:  KeyFactors(input),
		Gauge:       Gauge(),
	}
}

func (s *ScoringService) cached(ctx context.Context, key string) (domain.ScoreReport, bool) {
	if s.cache == nil {
		return domain.ScoreReport{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		s.metrics.ObserveCache(false)
		return domain.ScoreReport{}, false
	}

	var report domain.ScoreReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		s.logger.Warn("discarding unreadable cached report", "key", key, "error", err)
		s.metrics.ObserveCache(false)
		return domain.ScoreReport{}, false
	}
	s.metrics.ObserveCache(true)
	return report, true
}

// cacheKey hashes every input field. Decimal amounts are normalised so that
// 30000 and 30000.00 share a key.
func cacheKey(in domain.CreditInput) string {
	h := xxhash.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%d|%d|%t|%d|%d|%d",
		in.AnnualIncome.String(),
		in.CardLimit.String(),
		in.CardBalance.String(),
		in.LoanBalance.String(),
		in.CreditHistoryYears,
		in.MissedPayments,
		in.HasDefault,
		in.NumCreditCards,
		in.NumLoans,
		in.RecentInquiries,
	)
	return "score:" + cacheKeyVersion + ":" + strconv.FormatUint(h.Sum64(), 16)
}

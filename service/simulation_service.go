package service

import (
	"context"
	"log/slog"

	"creditwise/domain"
)

type SimulationService struct {
	simulator *Simulator
	metrics   MetricsRecorder
	logger    *slog.Logger
}

func NewSimulationService(metrics MetricsRecorder, logger *slog.Logger) *SimulationService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulationService{
		simulator: NewSimulator(NewScoreEngine(), NewRatingClassifier()),
		metrics:   metrics,
		logger:    logger,
	}
}

// Simulate validates the baseline and adjustments and projects the score.
func (s *SimulationService) Simulate(
	_ context.Context,
	input domain.SimulationInput,
) (domain.SimulationResult, error) {
	if err := ValidateInput(input.Profile); err != nil {
		return domain.SimulationResult{}, err
	}
	if err := ValidateAdjustments(input.Adjustments); err != nil {
		return domain.SimulationResult{}, err
	}

	result := s.simulator.Simulate(input.Profile, input.Adjustments)

	s.metrics.ObserveSimulation(result.Delta)
	s.logger.Debug("simulation computed",
		"baseline", result.BaselineScore,
		"projected", result.ProjectedScore,
		"delta", result.Delta,
	)
	return result, nil
}

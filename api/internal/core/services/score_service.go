package services

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

// ScoreSimulator produces placeholder risk scores for the landing page button.
// It keeps no state between draws.
type ScoreSimulator struct {
	random func() float64 // uniform in [0, 1)
}

// NewScoreSimulator uses random as its source; nil selects math/rand/v2.
func NewScoreSimulator(random func() float64) *ScoreSimulator {
	if random == nil {
		random = rand.Float64
	}
	return &ScoreSimulator{random: random}
}

// Simulate draws a score uniformly from [60, 99] and derives its band.
func (s *ScoreSimulator) Simulate() domain.ScoreResult {
	span := domain.MaxSimulatedScore - domain.MinSimulatedScore + 1
	score := int(math.Floor(s.random()*float64(span))) + domain.MinSimulatedScore

	return domain.ScoreResult{
		RiskScore: score,
		RiskBand:  domain.BandFor(score),
		Model:     domain.ScoreModelVersion,
	}
}

// Render formats a result as two-space indented JSON.
func (s *ScoreSimulator) Render(result domain.ScoreResult) (string, error) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render score: %w", err)
	}
	return string(out), nil
}

// Run handles one click: draw, render and write into the output element.
func (s *ScoreSimulator) Run(output *domain.Element) (domain.ScoreResult, error) {
	result := s.Simulate()
	text, err := s.Render(result)
	if err != nil {
		return result, err
	}
	output.SetText(text)
	return result, nil
}

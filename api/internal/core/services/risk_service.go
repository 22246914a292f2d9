package services

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

// RiskService is the RiskLens weighted scoring model.
type RiskService struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewRiskService(logger *slog.Logger) *RiskService {
	return &RiskService{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Calculate scores a validated request. Each factor is capped at its weight.
func (s *RiskService) Calculate(ctx context.Context, req domain.RiskRequest) *domain.RiskAssessment {
	amountWeight := math.Min((req.Amount/50000)*25, 25)
	sectorWeight := (float64(req.SectorRiskLevel) / 5) * 20
	delayWeight := math.Min((float64(req.PaymentDelayDays)/60)*25, 25)
	behaviorWeight := (float64(100-req.CustomerScore) / 100) * 15
	exposureWeight := req.ExposureRatio * 15

	score := amountWeight + sectorWeight + delayWeight + behaviorWeight + exposureWeight
	level := LevelFor(score)

	s.logger.InfoContext(ctx, "Risk calculated",
		slog.Float64("risk_score", score),
		slog.String("level", string(level)),
		slog.String("sector", req.Sector),
	)

	return &domain.RiskAssessment{
		RequestID:    uuid.New(),
		ModelVersion: domain.RiskModelVersion,
		RiskScore:    round2(score),
		RiskLevel:    level,
		RiskFactors: domain.RiskFactors{
			AmountWeight:   round2(amountWeight),
			SectorWeight:   round2(sectorWeight),
			DelayWeight:    round2(delayWeight),
			BehaviorWeight: round2(behaviorWeight),
			ExposureWeight: round2(exposureWeight),
		},
		Confidence: domain.RiskConfidence,
		Timestamp:  s.now(),
	}
}

// LevelFor buckets a RiskLens score: below 30 Low, below 60 Medium, else High.
func LevelFor(score float64) domain.RiskLevel {
	switch {
	case score < 30:
		return domain.RiskLevelLow
	case score < 60:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelHigh
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/irgordon/zentra/api/internal/core/domain"
	"github.com/irgordon/zentra/api/internal/core/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRiskService_Calculate_Medium(t *testing.T) {
	svc := services.NewRiskService(discardLogger())

	res := svc.Calculate(context.Background(), domain.RiskRequest{
		Amount:           25000,
		Sector:           "retail",
		SectorRiskLevel:  3,
		PaymentDelayDays: 30,
		CustomerScore:    80,
		ExposureRatio:    0.5,
	})

	assert.NotEqual(t, uuid.Nil, res.RequestID)
	assert.Equal(t, "1.2", res.ModelVersion)
	assert.InDelta(t, 12.5, res.RiskFactors.AmountWeight, 1e-9)
	assert.InDelta(t, 12.0, res.RiskFactors.SectorWeight, 1e-9)
	assert.InDelta(t, 12.5, res.RiskFactors.DelayWeight, 1e-9)
	assert.InDelta(t, 3.0, res.RiskFactors.BehaviorWeight, 1e-9)
	assert.InDelta(t, 7.5, res.RiskFactors.ExposureWeight, 1e-9)
	assert.InDelta(t, 47.5, res.RiskScore, 1e-9)
	assert.Equal(t, domain.RiskLevelMedium, res.RiskLevel)
	assert.Equal(t, 0.93, res.Confidence)
	assert.False(t, res.Timestamp.IsZero())
}

func TestRiskService_Calculate_CapsWeights(t *testing.T) {
	svc := services.NewRiskService(discardLogger())

	res := svc.Calculate(context.Background(), domain.RiskRequest{
		Amount:           9_000_000,
		Sector:           "construction",
		SectorRiskLevel:  5,
		PaymentDelayDays: 365,
		CustomerScore:    0,
		ExposureRatio:    1,
	})

	assert.InDelta(t, 25.0, res.RiskFactors.AmountWeight, 1e-9)
	assert.InDelta(t, 25.0, res.RiskFactors.DelayWeight, 1e-9)
	assert.InDelta(t, 100.0, res.RiskScore, 1e-9)
	assert.Equal(t, domain.RiskLevelHigh, res.RiskLevel)
}

func TestRiskService_Calculate_RequestIDsAreUnique(t *testing.T) {
	svc := services.NewRiskService(discardLogger())
	req := domain.RiskRequest{Amount: 1, Sector: "x", SectorRiskLevel: 1, CustomerScore: 100}

	a := svc.Calculate(context.Background(), req)
	b := svc.Calculate(context.Background(), req)

	assert.NotEqual(t, a.RequestID, b.RequestID)
	assert.Equal(t, domain.RiskLevelLow, a.RiskLevel)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, domain.RiskLevelLow, services.LevelFor(29.99))
	assert.Equal(t, domain.RiskLevelMedium, services.LevelFor(30))
	assert.Equal(t, domain.RiskLevelMedium, services.LevelFor(59.99))
	assert.Equal(t, domain.RiskLevelHigh, services.LevelFor(60))
}

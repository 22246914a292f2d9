package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel is the RiskLens classification of a computed score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

const (
	RiskModelVersion = "1.2"
	RiskConfidence   = 0.93
)

// RiskRequest is a validated input of the RiskLens scoring model.
type RiskRequest struct {
	Amount           float64
	Sector           string
	SectorRiskLevel  int
	PaymentDelayDays int
	CustomerScore    int
	ExposureRatio    float64
}

// RiskFactors breaks a score down into its weighted components.
type RiskFactors struct {
	AmountWeight   float64 `json:"amount_weight"`
	SectorWeight   float64 `json:"sector_weight"`
	DelayWeight    float64 `json:"delay_weight"`
	BehaviorWeight float64 `json:"behavior_weight"`
	ExposureWeight float64 `json:"exposure_weight"`
}

// RiskAssessment is the response of the RiskLens scoring endpoint.
type RiskAssessment struct {
	RequestID    uuid.UUID   `json:"request_id"`
	ModelVersion string      `json:"model_version"`
	RiskScore    float64     `json:"risk_score"`
	RiskLevel    RiskLevel   `json:"risk_level"`
	RiskFactors  RiskFactors `json:"risk_factors"`
	Confidence   float64     `json:"confidence"`
	Timestamp    time.Time   `json:"timestamp"`
}

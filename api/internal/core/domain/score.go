package domain

// RiskBand is the coarse bucket shown next to a simulated score.
type RiskBand string

const (
	RiskBandLow RiskBand = "LOW"
	RiskBandMid RiskBand = "MID"
)

const (
	ScoreModelVersion = "v1"

	// MinSimulatedScore and MaxSimulatedScore bound the simulated draw (inclusive).
	MinSimulatedScore = 60
	MaxSimulatedScore = 99

	// Scores strictly above the threshold fall in the LOW band.
	lowBandThreshold = 80
)

// ScoreResult is a single simulated risk score. Field order is the render order.
type ScoreResult struct {
	RiskScore int      `json:"risk_score"`
	RiskBand  RiskBand `json:"risk_band"`
	Model     string   `json:"model"`
}

// BandFor maps a score onto its risk band.
func BandFor(score int) RiskBand {
	if score > lowBandThreshold {
		return RiskBandLow
	}
	return RiskBandMid
}

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irgordon/zentra/api/internal/core/domain"
	"github.com/irgordon/zentra/api/internal/core/services"
)

func fixedRandom(v float64) func() float64 {
	return func() float64 { return v }
}

func TestScoreSimulator_ThousandClicks(t *testing.T) {
	sim := services.NewScoreSimulator(nil)

	for i := 0; i < 1000; i++ {
		res := sim.Simulate()

		require.GreaterOrEqual(t, res.RiskScore, 60)
		require.LessOrEqual(t, res.RiskScore, 99)
		require.Equal(t, res.RiskScore > 80, res.RiskBand == domain.RiskBandLow, "score %d band %s", res.RiskScore, res.RiskBand)
		require.Equal(t, "v1", res.Model)
	}
}

func TestScoreSimulator_Bounds(t *testing.T) {
	cases := []struct {
		draw  float64
		score int
		band  domain.RiskBand
	}{
		{0, 60, domain.RiskBandMid},
		{0.5, 80, domain.RiskBandMid},
		{0.525, 81, domain.RiskBandLow},
		{0.9999999, 99, domain.RiskBandLow},
	}

	for _, tc := range cases {
		res := services.NewScoreSimulator(fixedRandom(tc.draw)).Simulate()
		assert.Equal(t, tc.score, res.RiskScore, "draw %v", tc.draw)
		assert.Equal(t, tc.band, res.RiskBand, "draw %v", tc.draw)
	}
}

func TestScoreSimulator_RunRendersIndentedJSON(t *testing.T) {
	sim := services.NewScoreSimulator(fixedRandom(0.75)) // 90
	out := domain.NewElement(domain.ElemScoreOutput)

	res, err := sim.Run(out)
	require.NoError(t, err)
	assert.Equal(t, 90, res.RiskScore)

	want := "{\n  \"risk_score\": 90,\n  \"risk_band\": \"LOW\",\n  \"model\": \"v1\"\n}"
	assert.Equal(t, want, out.Text())
}

func TestScoreSimulator_RunOverwritesPreviousOutput(t *testing.T) {
	out := domain.NewElement(domain.ElemScoreOutput)

	_, err := services.NewScoreSimulator(fixedRandom(0.75)).Run(out)
	require.NoError(t, err)
	_, err = services.NewScoreSimulator(fixedRandom(0)).Run(out)
	require.NoError(t, err)

	assert.Contains(t, out.Text(), `"risk_score": 60`)
	assert.Contains(t, out.Text(), `"risk_band": "MID"`)
}

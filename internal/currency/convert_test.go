package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

func init() {
	logger.IsTest = true
}

func TestFormat_USDIgnoresTable(t *testing.T) {
	rates := types.RateTable{"USD": 2, "EUR": 0.92}

	// The USD path never multiplies, even if the table carries a USD entry.
	assert.Equal(t, "$1,500", Format(1500, "USD", rates))
}

func TestFormat_NilRatesFallsBackToRawAmount(t *testing.T) {
	assert.Equal(t, "€1,500", Format(1500, "EUR", nil))
}

func TestFormat_ConvertsAndRounds(t *testing.T) {
	rates := types.RateTable{"EUR": 0.92, "JPY": 157, "PKR": 278.5}

	assert.Equal(t, "€1,380", Format(1500, "EUR", rates))
	assert.Equal(t, "¥235,500", Format(1500, "JPY", rates))
	assert.Equal(t, "₨417,750", Format(1500, "PKR", rates))
}

func TestFormat_RoundsHalfAwayFromZero(t *testing.T) {
	rates := types.RateTable{"EUR": 0.5}

	// 999 * 0.5 = 499.5 rounds up to 500, not to even.
	assert.Equal(t, "€500", Format(999, "EUR", rates))
}

func TestFormat_MissingRateMarksUSDFallback(t *testing.T) {
	rates := types.RateTable{"EUR": 0.92}

	assert.Equal(t, "$1,500 (USD)", Format(1500, "XYZ", rates))
}

func TestFormat_Deterministic(t *testing.T) {
	rates := types.RateTable{"EUR": 0.92}

	first := Format(1234.56, "EUR", rates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Format(1234.56, "EUR", rates))
	}
}

func TestToUSD_Identity(t *testing.T) {
	got, err := ToUSD(1500, "USD", nil)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got)
}

func TestToUSD_Converts(t *testing.T) {
	got, err := ToUSD(920, "EUR", types.RateTable{"EUR": 0.92})
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, got, 1e-9)
}

func TestToUSD_NilRates(t *testing.T) {
	_, err := ToUSD(920, "EUR", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ValidationError))
}

func TestToUSD_UnknownCurrency(t *testing.T) {
	_, err := ToUSD(920, "XYZ", types.RateTable{"EUR": 0.92})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ValidationError))
}

func TestToUSD_NonPositiveRateRejected(t *testing.T) {
	_, err := ToUSD(920, "EUR", types.RateTable{"EUR": 0})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ValidationError))
}

package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

func normalizeString(t *testing.T, raw, destination string) ([]types.TripPlan, error) {
	t.Helper()
	return Normalize(json.RawMessage(raw), destination, types.CanonicalPlanOrder)
}

func TestNormalize_Basic(t *testing.T) {
	raw := `{"tripPlans":[
		{"planName":"Budget Plan","destination":"paris","totalCost":900,
		 "summary":"A lean city break.",
		 "budgetBreakdown":{"flights":40,"hotels":30,"activities":20,"food":10},
		 "flights":[{"airline":"Transavia","price":250,"bookingLink":"https://example.com/f","description":"Direct"}],
		 "hotels":[{"name":"Hotel Jeanne","price":400,"rating":3,"bookingLink":"https://example.com/h","description":"Central"}],
		 "activities":[],"restaurants":[]}
	]}`

	plans, err := normalizeString(t, raw, "Paris, France")
	require.NoError(t, err)
	require.Len(t, plans, 1)

	plan := plans[0]
	assert.Equal(t, "Budget Plan", plan.PlanName)
	assert.Equal(t, "Paris, France", plan.Destination, "the request destination must overwrite the model's echo")
	assert.Equal(t, 900.0, plan.TotalCost)
	assert.Equal(t, 40.0, plan.BudgetBreakdown.Flights)
	require.Len(t, plan.Flights, 1)
	assert.Equal(t, "Transavia", plan.Flights[0].Airline)
}

func TestNormalize_CanonicalOrder(t *testing.T) {
	raw := `{"tripPlans":[
		{"planName":"Luxury Plan","totalCost":3000},
		{"planName":"Budget Plan","totalCost":800},
		{"planName":"Moderate Plan","totalCost":1500}
	]}`

	plans, err := normalizeString(t, raw, "Rome, Italy")
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "Budget Plan", plans[0].PlanName)
	assert.Equal(t, "Moderate Plan", plans[1].PlanName)
	assert.Equal(t, "Luxury Plan", plans[2].PlanName)
}

func TestNormalize_UnknownPlanNamesSortLast(t *testing.T) {
	raw := `{"tripPlans":[
		{"planName":"Mystery Plan","totalCost":100},
		{"planName":"Budget Plan","totalCost":800},
		{"planName":"Another Oddity","totalCost":200}
	]}`

	plans, err := normalizeString(t, raw, "Rome, Italy")
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "Budget Plan", plans[0].PlanName)
	// Unknown names keep arrival order after the recognized ones.
	assert.Equal(t, "Mystery Plan", plans[1].PlanName)
	assert.Equal(t, "Another Oddity", plans[2].PlanName)
}

func TestNormalize_DropsIncompleteRecords(t *testing.T) {
	raw := `{"tripPlans":[
		{"planName":"","totalCost":500},
		{"planName":"No Cost Plan"},
		{"planName":"Negative Plan","totalCost":-5},
		{"planName":"Moderate Plan","totalCost":1500}
	]}`

	plans, err := normalizeString(t, raw, "Kyoto, Japan")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Moderate Plan", plans[0].PlanName)
}

func TestNormalize_MalformedRecordDoesNotAbortBatch(t *testing.T) {
	raw := `{"tripPlans":[
		{"planName":"Budget Plan","totalCost":"not a number"},
		{"planName":"Luxury Plan","totalCost":3000}
	]}`

	plans, err := normalizeString(t, raw, "Bali, Indonesia")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Luxury Plan", plans[0].PlanName)
}

func TestNormalize_ZeroCostIsValid(t *testing.T) {
	raw := `{"tripPlans":[{"planName":"Budget Plan","totalCost":0}]}`

	plans, err := normalizeString(t, raw, "Rome, Italy")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 0.0, plans[0].TotalCost)
}

func TestNormalize_EmptyTripPlans(t *testing.T) {
	_, err := normalizeString(t, `{"tripPlans":[]}`, "Rome, Italy")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.NoPlansError))
}

func TestNormalize_MissingTripPlansKey(t *testing.T) {
	_, err := normalizeString(t, `{"plans":[]}`, "Rome, Italy")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.NoPlansError))
}

func TestNormalize_AllRecordsDropped(t *testing.T) {
	_, err := normalizeString(t, `{"tripPlans":[{"planName":""},{"totalCost":5}]}`, "Rome, Italy")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.NoPlansError))
}

func TestNormalize_SingleObjectListFields(t *testing.T) {
	// The generator sometimes emits a lone object where an array was asked
	// for; it must come out as a one-element slice.
	raw := `{"tripPlans":[
		{"planName":"Budget Plan","totalCost":900,
		 "flights":{"airline":"Solo Air","price":100,"bookingLink":"https://example.com","description":"One"},
		 "hotels":[]}
	]}`

	plans, err := normalizeString(t, raw, "Paris, France")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Len(t, plans[0].Flights, 1)
	assert.Equal(t, "Solo Air", plans[0].Flights[0].Airline)
}

func TestNormalize_NilListsBecomeEmptySlices(t *testing.T) {
	raw := `{"tripPlans":[{"planName":"Budget Plan","totalCost":900}]}`

	plans, err := normalizeString(t, raw, "Paris, France")
	require.NoError(t, err)
	require.Len(t, plans, 1)

	plan := plans[0]
	assert.NotNil(t, plan.Flights)
	assert.NotNil(t, plan.Hotels)
	assert.NotNil(t, plan.Activities)
	assert.NotNil(t, plan.Restaurants)
	assert.Empty(t, plan.Flights)
}

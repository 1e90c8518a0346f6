package planner

import (
	"encoding/json"
	"sort"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

// rawPlan is the tolerant decoding shape for one generated plan record.
// List-valued fields accept either a single object or an array, and
// optional fields are pointers so absence is distinguishable from zero.
type rawPlan struct {
	PlanName        string                           `json:"planName"`
	Destination     string                           `json:"destination"`
	TotalCost       *float64                         `json:"totalCost"`
	Summary         string                           `json:"summary"`
	BudgetBreakdown *rawBreakdown                    `json:"budgetBreakdown"`
	Flights         types.FlexList[types.Flight]     `json:"flights"`
	Hotels          types.FlexList[types.Hotel]      `json:"hotels"`
	Activities      types.FlexList[types.Activity]   `json:"activities"`
	Restaurants     types.FlexList[types.Restaurant] `json:"restaurants"`
}

type rawBreakdown struct {
	Flights    *float64 `json:"flights"`
	Hotels     *float64 `json:"hotels"`
	Activities *float64 `json:"activities"`
	Food       *float64 `json:"food"`
}

// Normalize validates the extracted JSON against the plan schema and returns
// the ordered plan sequence. destination always overwrites whatever the
// generator echoed; order is the canonical category ordering.
//
// A record that fails to decode or is missing its identity fields (planName,
// totalCost) is dropped rather than aborting the batch. Only when no record
// survives does Normalize fail, with NoPlansError.
func Normalize(raw json.RawMessage, destination string, order []string) ([]types.TripPlan, error) {
	var envelope struct {
		TripPlans []json.RawMessage `json:"tripPlans"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, apperrors.NoPlans("tripPlans is not an array of plan records")
	}
	if len(envelope.TripPlans) == 0 {
		return nil, apperrors.NoPlans("response contained no tripPlans records")
	}

	log := logger.GetLogger()
	plans := make([]types.TripPlan, 0, len(envelope.TripPlans))

	for i, rec := range envelope.TripPlans {
		var rp rawPlan
		if err := json.Unmarshal(rec, &rp); err != nil {
			log.Warnw("Dropping malformed plan record", "index", i, "error", err)
			continue
		}

		if rp.PlanName == "" || rp.TotalCost == nil || *rp.TotalCost < 0 {
			log.Warnw("Dropping plan record missing identity fields",
				"index", i,
				"planName", rp.PlanName,
			)
			continue
		}

		plans = append(plans, types.TripPlan{
			PlanName:        rp.PlanName,
			Destination:     destination, // never trust the model's echo
			TotalCost:       *rp.TotalCost,
			Summary:         rp.Summary,
			BudgetBreakdown: normalizeBreakdown(rp.BudgetBreakdown),
			Flights:         emptyIfNil([]types.Flight(rp.Flights)),
			Hotels:          emptyIfNil([]types.Hotel(rp.Hotels)),
			Activities:      emptyIfNil([]types.Activity(rp.Activities)),
			Restaurants:     emptyIfNil([]types.Restaurant(rp.Restaurants)),
		})
	}

	if len(plans) == 0 {
		return nil, apperrors.NoPlans("all plan records were dropped during normalization")
	}

	sortPlans(plans, order)
	return plans, nil
}

func normalizeBreakdown(rb *rawBreakdown) types.BudgetBreakdown {
	if rb == nil {
		return types.BudgetBreakdown{}
	}
	return types.BudgetBreakdown{
		Flights:    orZero(rb.Flights),
		Hotels:     orZero(rb.Hotels),
		Activities: orZero(rb.Activities),
		Food:       orZero(rb.Food),
	}
}

func orZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func emptyIfNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

// sortPlans orders plans by their canonical index in order. Unrecognized
// plan names sort after all recognized ones, keeping their arrival order.
func sortPlans(plans []types.TripPlan, order []string) {
	idx := make(map[string]int, len(order))
	for i, name := range order {
		idx[name] = i
	}

	rank := func(p types.TripPlan) int {
		if i, ok := idx[p.PlanName]; ok {
			return i
		}
		return len(order)
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return rank(plans[i]) < rank(plans[j])
	})
}

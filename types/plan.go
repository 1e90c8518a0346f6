package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CanonicalPlanOrder is the fixed category ordering for generated plans.
// Plans with names outside this set sort after the known ones, keeping
// their arrival order.
var CanonicalPlanOrder = []string{
	"Budget Plan",
	"Moderate Plan",
	"Luxury Plan",
}

// GroundingAttribution is a citation (source URI + title) backing claims in
// a generated plan. Within one generation batch every plan carries the same
// deduplicated list.
type GroundingAttribution struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type Flight struct {
	Airline     string  `json:"airline"`
	Price       float64 `json:"price"`
	BookingLink string  `json:"bookingLink"`
	Description string  `json:"description"`
}

type Hotel struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"` // 5-night total, USD
	Rating      int     `json:"rating"`
	BookingLink string  `json:"bookingLink"`
	Description string  `json:"description"`
}

type Activity struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"` // 0 = free
	BookingLink string  `json:"bookingLink"`
	Description string  `json:"description"`
}

type Restaurant struct {
	Name            string   `json:"name"`
	Cuisine         string   `json:"cuisine"`
	AveragePrice    float64  `json:"averagePrice"` // per person, USD
	BookingLink     string   `json:"bookingLink"`
	MenuSuggestions []string `json:"menuSuggestions"`
}

// BudgetBreakdown holds the four cost-share percentages of a plan. They
// should sum to 100, but drift is tolerated at display time.
type BudgetBreakdown struct {
	Flights    float64 `json:"flights"`
	Hotels     float64 `json:"hotels"`
	Activities float64 `json:"activities"`
	Food       float64 `json:"food"`
}

// TripPlan is one candidate itinerary returned by a generation request.
// All monetary fields are USD; display-currency conversion happens only at
// presentation time and never mutates stored values.
type TripPlan struct {
	PlanName              string                 `json:"planName"`
	Destination           string                 `json:"destination"`
	TotalCost             float64                `json:"totalCost"`
	Summary               string                 `json:"summary"`
	BudgetBreakdown       BudgetBreakdown        `json:"budgetBreakdown"`
	Flights               []Flight               `json:"flights"`
	Hotels                []Hotel                `json:"hotels"`
	Activities            []Activity             `json:"activities"`
	Restaurants           []Restaurant           `json:"restaurants"`
	GroundingAttributions []GroundingAttribution `json:"groundingAttributions"`
}

// DuplicateKey is the loose composite key used by the saved-trips store to
// detect already-saved plans.
func (p *TripPlan) DuplicateKey() string {
	return fmt.Sprintf("%s|%s|%.0f", p.PlanName, p.Destination, p.TotalCost)
}

// FlexList tolerates the upstream generator emitting either a single object
// or an array for a list-valued field. It always normalizes to a slice; the
// ambiguity never propagates past decoding.
type FlexList[T any] []T

func (l *FlexList[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	if trimmed[0] == '[' {
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		*l = many
		return nil
	}

	var one T
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return err
	}
	*l = FlexList[T]{one}
	return nil
}

package planner

import (
	"fmt"
	"math"
	"strings"
)

// Budget ratio targets for the three plan tiers, relative to the requested
// budget.
const (
	budgetTierRatio   = 0.85
	moderateTierRatio = 1.0
	luxuryTierRatio   = 1.2
)

// BuildPrompt renders the generation request for one trip. It instructs the
// generator to produce exactly three plans along fixed budget-ratio targets
// and to respond with a single JSON object keyed "tripPlans".
func BuildPrompt(origin, destination string, budgetUSD float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert travel agent AI. Your task is to generate a comprehensive, realistic, and bookable 5-day travel itinerary from %s to %s with a target budget around $%.0f USD.\n\n",
		origin, destination, math.Round(budgetUSD))

	b.WriteString("CRITICAL INSTRUCTION: You MUST use real-time search to find accurate information for flights, hotels, activities, and restaurants. All generated information, especially business names, prices, and booking links, MUST come from real search results. Do not invent or hallucinate any details. Verify business names exist at the destination.\n\n")

	b.WriteString("Generate THREE distinct and complete trip plans in a JSON array, each catering to a different travel style:\n")
	fmt.Fprintf(&b, "1. 'Budget Plan': the best value, targeting roughly $%.0f USD total.\n", math.Round(budgetUSD*budgetTierRatio))
	fmt.Fprintf(&b, "2. 'Moderate Plan': a balanced plan with popular sights and comfortable stays, targeting roughly $%.0f USD total.\n", math.Round(budgetUSD*moderateTierRatio))
	fmt.Fprintf(&b, "3. 'Luxury Plan': premium experiences, luxury hotels, or unique activities, targeting roughly $%.0f USD total.\n\n", math.Round(budgetUSD*luxuryTierRatio))

	b.WriteString("For EACH of the three plans, you must generate the following:\n")
	b.WriteString("1. The exact 'planName' listed above.\n")
	b.WriteString("2. The 'destination'.\n")
	b.WriteString("3. A total estimated 'totalCost' in USD.\n")
	b.WriteString("4. A 'budgetBreakdown' as percentages for flights, hotels, activities, and food. The sum must be 100.\n")
	b.WriteString("5. A short, enticing 'summary' for the trip package.\n")
	b.WriteString("6. A 'flights' list with one recommended flight, including airline, price, bookingLink, and a short description.\n")
	b.WriteString("7. A 'hotels' list with one recommended hotel for a 5-night stay, including name, price, rating (1-5), bookingLink, and description.\n")
	b.WriteString("8. An 'activities' list of 3-5 recommendations, each with a name, description, price (0 if free), and bookingLink.\n")
	b.WriteString("9. A 'restaurants' list of 3-5 recommendations, each with a name, cuisine, averagePrice per person, bookingLink, and up to 3 menuSuggestions.\n")
	b.WriteString("10. For every item, provide a real booking link.\n\n")

	b.WriteString("You must respond ONLY with a single JSON object with a single key \"tripPlans\", which contains the array of the three plan objects. Do not include any introductory text, explanations, code block formatting (like ```json), or markdown. The JSON should be directly parsable.\n")

	return b.String()
}

package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_TierTargets(t *testing.T) {
	prompt := BuildPrompt("Lahore, Pakistan", "Paris, France", 2000)

	assert.Contains(t, prompt, "from Lahore, Pakistan to Paris, France")
	assert.Contains(t, prompt, "around $2000 USD")
	assert.Contains(t, prompt, "'Budget Plan': the best value, targeting roughly $1700 USD")
	assert.Contains(t, prompt, "'Moderate Plan': a balanced plan with popular sights and comfortable stays, targeting roughly $2000 USD")
	assert.Contains(t, prompt, "'Luxury Plan': premium experiences, luxury hotels, or unique activities, targeting roughly $2400 USD")
}

func TestBuildPrompt_RequestsBareJSON(t *testing.T) {
	prompt := BuildPrompt("A", "B", 1000)

	assert.Contains(t, prompt, `single key "tripPlans"`)
	assert.Contains(t, prompt, "real-time search")
}

func TestBuildPrompt_RoundsFractionalBudgets(t *testing.T) {
	prompt := BuildPrompt("A", "B", 999.6)

	// 999.6 rounds to 1000 in the headline target.
	assert.Contains(t, prompt, "around $1000 USD")
}

package planner

import (
	"github.com/samber/lo"

	"github.com/codeby-aftab/trip-ai-backend/types"
)

// DedupAttributions merges raw attribution candidates into a single unique
// list. Candidates missing a URI or title are dropped; duplicates sharing a
// URI keep only the first-seen entry, preserving order. The caller attaches
// the resulting list to every plan in the batch: all plans in one response
// share one citation pool.
func DedupAttributions(candidates []types.GroundingAttribution) []types.GroundingAttribution {
	complete := lo.Filter(candidates, func(a types.GroundingAttribution, _ int) bool {
		return a.URI != "" && a.Title != ""
	})

	return lo.UniqBy(complete, func(a types.GroundingAttribution) string {
		return a.URI
	})
}

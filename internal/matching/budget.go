// internal/matching/budget.go

package matching

import "fmt"

// budgetRange is a budget with the optional bounds resolved to workable
// defaults (missing min -> 0, missing max -> 10000).
type budgetRange struct {
	currency string
	min      float64
	max      float64
}

func resolveBudget(p *Profile) *budgetRange {
	b := p.budget()
	if b == nil {
		return nil
	}
	return &budgetRange{
		currency: b.Currency,
		min:      derefFloat(b.Min, 0),
		max:      derefFloat(b.Max, 10000),
	}
}

// scoreBudget rates financial alignment: 70% range overlap, 30% midpoint
// closeness. Both sides must expose a budget or the score is the neutral
// 50; mismatched currencies are a flat 30.
func scoreBudget(seeker, candidate *Profile) (float64, []Explanation) {
	seekerBudget := resolveBudget(seeker)
	candidateBudget := resolveBudget(candidate)

	if seekerBudget == nil || candidateBudget == nil {
		return neutralBudgetScore, []Explanation{{
			Category: "Budget",
			Reason:   "Budget information incomplete - cannot fully assess",
			Impact:   ImpactNeutral,
			Score:    neutralBudgetScore,
		}}
	}

	if seekerBudget.currency != candidateBudget.currency {
		return 30, []Explanation{{
			Category: "Budget",
			Reason:   fmt.Sprintf("Different currencies (%s vs %s)", seekerBudget.currency, candidateBudget.currency),
			Impact:   ImpactNegative,
			Score:    30,
		}}
	}

	overlap := rangeOverlap(seekerBudget.min, seekerBudget.max, candidateBudget.min, candidateBudget.max)

	// Midpoint alignment: how close are their ideal price points?
	seekerMid := (seekerBudget.min + seekerBudget.max) / 2
	candidateMid := (candidateBudget.min + candidateBudget.max) / 2
	maxBudget := seekerBudget.max
	if candidateBudget.max > maxBudget {
		maxBudget = candidateBudget.max
	}
	var midpointDiff float64
	if maxBudget > 0 {
		midpointDiff = abs(seekerMid-candidateMid) / maxBudget
	}
	midpointScore := 100 * (1 - midpointDiff*2)
	if midpointScore < 0 {
		midpointScore = 0
	}

	score := overlap*70 + midpointScore*0.3

	explanation := Explanation{Category: "Budget", Score: round1(score)}
	switch {
	case score >= 85:
		explanation.Reason = fmt.Sprintf("Excellent budget match (%.0f-%.0f %s overlaps well)",
			seekerBudget.min, seekerBudget.max, seekerBudget.currency)
		explanation.Impact = ImpactPositive
	case score >= 60:
		explanation.Reason = "Good budget overlap with some flexibility needed"
		explanation.Impact = ImpactNeutral
	case score >= 40:
		explanation.Reason = "Limited budget overlap - may need to negotiate"
		explanation.Impact = ImpactNeutral
	default:
		explanation.Reason = fmt.Sprintf("Significant budget mismatch (your %.0f-%.0f vs their %.0f-%.0f %s)",
			seekerBudget.min, seekerBudget.max, candidateBudget.min, candidateBudget.max, seekerBudget.currency)
		explanation.Impact = ImpactNegative
	}

	return score, []Explanation{explanation}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

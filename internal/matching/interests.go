// internal/matching/interests.go

package matching

import (
	"fmt"
	"strings"
)

// scoreInterests blends overlap ratio with an absolute-count bonus, so two
// profiles with short interest lists are not punished for having little to
// overlap.
func scoreInterests(seeker, candidate *Profile) (float64, []Explanation) {
	seekerInterests := seeker.interests()
	candidateInterests := candidate.interests()

	if len(seekerInterests) == 0 {
		return neutralInterestsScore, []Explanation{{
			Category: "Interests",
			Reason:   "No interests specified in your profile",
			Impact:   ImpactNeutral,
			Score:    neutralInterestsScore,
		}}
	}
	if len(candidateInterests) == 0 {
		return neutralInterestsScore, []Explanation{{
			Category: "Interests",
			Reason:   "Candidate has no interests listed",
			Impact:   ImpactNeutral,
			Score:    neutralInterestsScore,
		}}
	}

	shared := sharedInterests(seeker, candidate)

	union := make(map[string]struct{}, len(seekerInterests)+len(candidateInterests))
	for _, interest := range seekerInterests {
		union[strings.ToLower(strings.TrimSpace(interest))] = struct{}{}
	}
	for _, interest := range candidateInterests {
		union[strings.ToLower(strings.TrimSpace(interest))] = struct{}{}
	}

	var overlapRatio float64
	if len(union) > 0 {
		overlapRatio = float64(len(shared)) / float64(len(union))
	}

	countBonus := float64(len(shared) * 6)
	if countBonus > 30 {
		countBonus = 30
	}
	score := overlapRatio*70 + countBonus
	if score > 100 {
		score = 100
	}

	var explanation Explanation
	switch {
	case len(shared) >= 4:
		display := strings.Join(shared[:4], ", ")
		if len(shared) > 4 {
			display += fmt.Sprintf(" +%d more", len(shared)-4)
		}
		explanation = Explanation{
			Category: "Interests",
			Reason:   "Strong interest overlap: " + display,
			Impact:   ImpactPositive,
			Score:    round1(score),
		}
	case len(shared) >= 2:
		explanation = Explanation{
			Category: "Interests",
			Reason:   fmt.Sprintf("Share %d interests: %s", len(shared), strings.Join(shared, ", ")),
			Impact:   ImpactPositive,
			Score:    round1(score),
		}
	case len(shared) == 1:
		explanation = Explanation{
			Category: "Interests",
			Reason:   "One shared interest: " + shared[0],
			Impact:   ImpactNeutral,
			Score:    round1(score),
		}
	default:
		explanation = Explanation{
			Category: "Interests",
			Reason:   "No overlapping interests - different hobbies",
			Impact:   ImpactNeutral,
			Score:    round1(score),
		}
	}

	return score, []Explanation{explanation}
}

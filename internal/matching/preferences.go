// internal/matching/preferences.go
// Preferences category: age range, gender preference, lease duration and
// language overlap. Each sub-factor contributes only when the data to judge
// it exists; the weighted average runs over the sub-factors that fired.

package matching

import (
	"fmt"
	"strings"
)

const (
	prefWeightAge       = 30
	prefWeightGender    = 20
	prefWeightLease     = 25
	prefWeightLanguages = 25

	defaultLeaseMonths = 12
)

func leaseMonthsOrDefault(prefs *Preferences) int {
	if prefs.LeaseDurationMonths != nil {
		return *prefs.LeaseDurationMonths
	}
	return defaultLeaseMonths
}

func scorePreferences(seeker, candidate *Profile) (float64, []Explanation) {
	var (
		scores       []float64
		weights      []float64
		explanations []Explanation
	)

	seekerPrefs := seeker.preferences()
	candidatePrefs := candidate.preferences()

	// Age preference.
	if seekerPrefs != nil && len(seekerPrefs.AgeRange) > 0 && candidate.Age != nil {
		minAge := seekerPrefs.AgeRange[0]
		maxAge := 100
		if len(seekerPrefs.AgeRange) > 1 {
			maxAge = seekerPrefs.AgeRange[1]
		}
		age := *candidate.Age

		if minAge <= age && age <= maxAge {
			scores = append(scores, 100)
			explanations = append(explanations, Explanation{
				Category: "Preferences",
				Reason:   fmt.Sprintf("Candidate age %d within your preferred range", age),
				Impact:   ImpactPositive,
				Score:    100,
			})
		} else {
			diff := age - maxAge
			if age < minAge {
				diff = minAge - age
			}
			score := float64(100 - diff*10)
			if score < 20 {
				score = 20
			}
			scores = append(scores, score)
			if score < 60 {
				explanations = append(explanations, Explanation{
					Category: "Preferences",
					Reason:   fmt.Sprintf("Candidate age %d outside your preferred %d-%d range", age, minAge, maxAge),
					Impact:   ImpactNegative,
					Score:    score,
				})
			}
		}
		weights = append(weights, prefWeightAge)
	}

	// Gender preference. A mismatch is discounted, not excluded; hard gender
	// constraints go through deal-breakers instead.
	if seekerPrefs != nil && seekerPrefs.Gender != nil && candidate.Gender != nil {
		if *seekerPrefs.Gender == *candidate.Gender {
			scores = append(scores, 100)
		} else {
			scores = append(scores, 50)
		}
		weights = append(weights, prefWeightGender)
	}

	// Lease duration. An unset duration means the standard 12-month lease,
	// so any two profiles with preference data always compare here.
	if seekerPrefs != nil && candidatePrefs != nil {
		seekerLease := leaseMonthsOrDefault(seekerPrefs)
		candidateLease := leaseMonthsOrDefault(candidatePrefs)
		diff := seekerLease - candidateLease
		if diff < 0 {
			diff = -diff
		}

		switch {
		case diff == 0:
			scores = append(scores, 100)
			explanations = append(explanations, Explanation{
				Category: "Preferences",
				Reason:   fmt.Sprintf("Same lease duration preference (%d months)", seekerLease),
				Impact:   ImpactPositive,
				Score:    100,
			})
		case diff <= 3:
			scores = append(scores, 80)
		case diff <= 6:
			scores = append(scores, 60)
		default:
			scores = append(scores, 40)
			explanations = append(explanations, Explanation{
				Category: "Preferences",
				Reason:   fmt.Sprintf("Different lease preferences (%d vs %d months)", seekerLease, candidateLease),
				Impact:   ImpactNegative,
				Score:    40,
			})
		}
		weights = append(weights, prefWeightLease)
	}

	// Languages. The weight joins only alongside a score so the two slices
	// can never drift out of step.
	if shared := sharedLanguages(seeker, candidate); len(shared) > 0 {
		langScore := float64(60 + len(shared)*20)
		if langScore > 100 {
			langScore = 100
		}
		scores = append(scores, langScore)
		weights = append(weights, prefWeightLanguages)
		if len(shared) >= 2 {
			display := shared
			if len(display) > 3 {
				display = display[:3]
			}
			explanations = append(explanations, Explanation{
				Category: "Preferences",
				Reason:   fmt.Sprintf("Share %d languages: %s", len(shared), strings.Join(display, ", ")),
				Impact:   ImpactPositive,
				Score:    langScore,
			})
		}
	} else if len(seeker.Languages) > 0 && len(candidate.Languages) > 0 {
		scores = append(scores, 30)
		weights = append(weights, prefWeightLanguages)
		explanations = append(explanations, Explanation{
			Category: "Preferences",
			Reason:   "No common languages - communication may be difficult",
			Impact:   ImpactNegative,
			Score:    30,
		})
	}

	if len(scores) == 0 {
		return neutralPreferencesScore, []Explanation{{
			Category: "Preferences",
			Reason:   "Preference information incomplete",
			Impact:   ImpactNeutral,
			Score:    neutralPreferencesScore,
		}}
	}

	return weightedAverage(scores, weights, neutralPreferencesScore), explanations
}

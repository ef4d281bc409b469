// internal/matching/lifestyle.go
// Lifestyle category: weighted blend of smoking, pets and the five ordinal
// flatmate traits. Smoking and pets always contribute via their
// compatibility tables; an ordinal trait joins the blend only when at
// least one side declared it.

package matching

import "fmt"

func scoreLifestyle(seeker, candidate *Profile) (float64, []Explanation) {
	var (
		scores       []float64
		weights      []float64
		explanations []Explanation
	)

	seekerPrefs := seeker.lifestylePrefs()
	candidatePrefs := candidate.lifestylePrefs()
	seekerTraits := seeker.flatmateTraits()
	candidateTraits := candidate.flatmateTraits()

	add := func(score, weight float64) {
		scores = append(scores, score)
		weights = append(weights, weight)
	}

	// 1. Smoking (weight 20) - major lifestyle factor.
	smokingScore := smokingCompatibility(seekerPrefs, candidatePrefs)
	add(smokingScore, 20)
	if smokingScore < 50 {
		explanations = append(explanations, Explanation{
			Category: "Lifestyle",
			Reason:   "Smoking preference conflict",
			Impact:   ImpactNegative,
			Score:    smokingScore,
		})
	} else if smokingScore >= 90 && !seekerPrefs.smokesOrDefault() && !candidatePrefs.smokesOrDefault() {
		explanations = append(explanations, Explanation{
			Category: "Lifestyle",
			Reason:   "Both non-smokers - clean air environment",
			Impact:   ImpactPositive,
			Score:    smokingScore,
		})
	}

	// 2. Pets (weight 15).
	petsScore := petsCompatibility(seekerPrefs, candidatePrefs)
	add(petsScore, 15)
	if petsScore < 50 {
		explanations = append(explanations, Explanation{
			Category: "Lifestyle",
			Reason:   "Pet preference mismatch - needs discussion",
			Impact:   ImpactNegative,
			Score:    petsScore,
		})
	} else if candidatePrefs.hasPetsOrDefault() && seekerPrefs.okWithPetsOrDefault() {
		explanations = append(explanations, Explanation{
			Category: "Lifestyle",
			Reason:   "You're open to pets - candidate has pets",
			Impact:   ImpactPositive,
			Score:    petsScore,
		})
	}

	// 3. Cleanliness (weight 25) - daily impact.
	var seekerClean, candidateClean *int
	if seekerTraits != nil && seekerTraits.Cleanliness != nil {
		seekerClean = indexOrNil(cleanlinessIndex(*seekerTraits.Cleanliness))
	}
	if candidateTraits != nil && candidateTraits.Cleanliness != nil {
		candidateClean = indexOrNil(cleanlinessIndex(*candidateTraits.Cleanliness))
	}
	if seekerClean != nil || candidateClean != nil {
		cleanlinessScore := ordinalDistanceScore(seekerClean, candidateClean)
		add(cleanlinessScore, 25)
		if cleanlinessScore >= 85 {
			value := CleanlinessModerate
			if candidateTraits != nil && candidateTraits.Cleanliness != nil {
				value = *candidateTraits.Cleanliness
			}
			explanations = append(explanations, Explanation{
				Category: "Lifestyle",
				Reason:   fmt.Sprintf("Similar cleanliness standards (%s)", value),
				Impact:   ImpactPositive,
				Score:    cleanlinessScore,
			})
		} else if cleanlinessScore < 50 {
			explanations = append(explanations, Explanation{
				Category: "Lifestyle",
				Reason:   "Different cleanliness expectations - potential friction",
				Impact:   ImpactNegative,
				Score:    cleanlinessScore,
			})
		}
	}

	// 4. Social level (weight 15).
	var seekerSocial, candidateSocial *int
	if seekerTraits != nil && seekerTraits.SocialLevel != nil {
		seekerSocial = indexOrNil(socialLevelIndex(*seekerTraits.SocialLevel))
	}
	if candidateTraits != nil && candidateTraits.SocialLevel != nil {
		candidateSocial = indexOrNil(socialLevelIndex(*candidateTraits.SocialLevel))
	}
	if seekerSocial != nil || candidateSocial != nil {
		socialScore := ordinalDistanceScore(seekerSocial, candidateSocial)
		add(socialScore, 15)
		if socialScore >= 80 && seekerSocial != nil {
			explanations = append(explanations, Explanation{
				Category: "Lifestyle",
				Reason:   "Compatible social levels",
				Impact:   ImpactPositive,
				Score:    socialScore,
			})
		}
	}

	// 5. Guests frequency (weight 10).
	var seekerGuests, candidateGuests *int
	if seekerTraits != nil && seekerTraits.GuestsFrequency != nil {
		seekerGuests = indexOrNil(guestsFrequencyIndex(*seekerTraits.GuestsFrequency))
	}
	if candidateTraits != nil && candidateTraits.GuestsFrequency != nil {
		candidateGuests = indexOrNil(guestsFrequencyIndex(*candidateTraits.GuestsFrequency))
	}
	if seekerGuests != nil || candidateGuests != nil {
		guestsScore := ordinalDistanceScore(seekerGuests, candidateGuests)
		add(guestsScore, 10)
		if guestsScore < 50 {
			explanations = append(explanations, Explanation{
				Category: "Lifestyle",
				Reason:   "Different guest frequency preferences",
				Impact:   ImpactNegative,
				Score:    guestsScore,
			})
		}
	}

	// 6. Noise tolerance (weight 10).
	var seekerNoise, candidateNoise *int
	if seekerTraits != nil && seekerTraits.NoiseTolerance != nil {
		seekerNoise = indexOrNil(noiseToleranceIndex(*seekerTraits.NoiseTolerance))
	}
	if candidateTraits != nil && candidateTraits.NoiseTolerance != nil {
		candidateNoise = indexOrNil(noiseToleranceIndex(*candidateTraits.NoiseTolerance))
	}
	if seekerNoise != nil || candidateNoise != nil {
		noiseScore := ordinalDistanceScore(seekerNoise, candidateNoise)
		add(noiseScore, 10)
		if noiseScore < 40 {
			explanations = append(explanations, Explanation{
				Category: "Lifestyle",
				Reason:   "Very different noise tolerance - may cause conflicts",
				Impact:   ImpactNegative,
				Score:    noiseScore,
			})
		}
	}

	// 7. Cooking frequency (weight 5).
	var seekerCooking, candidateCooking *int
	if seekerTraits != nil && seekerTraits.CookingFrequency != nil {
		seekerCooking = indexOrNil(cookingFrequencyIndex(*seekerTraits.CookingFrequency))
	}
	if candidateTraits != nil && candidateTraits.CookingFrequency != nil {
		candidateCooking = indexOrNil(cookingFrequencyIndex(*candidateTraits.CookingFrequency))
	}
	if seekerCooking != nil || candidateCooking != nil {
		cookingScore := ordinalDistanceScore(seekerCooking, candidateCooking)
		add(cookingScore, 5)
		if cookingScore >= 80 && seekerTraits != nil && seekerTraits.CookingFrequency != nil {
			if freq := *seekerTraits.CookingFrequency; freq == CookingDaily || freq == CookingOften {
				explanations = append(explanations, Explanation{
					Category: "Lifestyle",
					Reason:   "Both enjoy cooking - can share kitchen time",
					Impact:   ImpactPositive,
					Score:    cookingScore,
				})
			}
		}
	}

	return weightedAverage(scores, weights, neutralLifestyleScore), explanations
}

// smokingCompatibility: both non-smokers 100, both smokers 95, mixed pair
// 70 when the non-smoker tolerates smoking and 15 when they don't.
func smokingCompatibility(seekerPrefs, candidatePrefs *LifestylePreferences) float64 {
	seekerSmokes := seekerPrefs.smokesOrDefault()
	candidateSmokes := candidatePrefs.smokesOrDefault()

	switch {
	case !seekerSmokes && !candidateSmokes:
		return 100
	case !seekerSmokes && candidateSmokes:
		if seekerPrefs.okWithSmokingOrDefault() {
			return 70
		}
		return 15
	case seekerSmokes && !candidateSmokes:
		if candidatePrefs.okWithSmokingOrDefault() {
			return 70
		}
		return 15
	default:
		return 95 // both smokers
	}
}

// petsCompatibility: neither has pets 100, both 90, one-sided 85 when the
// pet-free side is tolerant and 20 when they aren't.
func petsCompatibility(seekerPrefs, candidatePrefs *LifestylePreferences) float64 {
	seekerHasPets := seekerPrefs.hasPetsOrDefault()
	candidateHasPets := candidatePrefs.hasPetsOrDefault()

	switch {
	case !seekerHasPets && !candidateHasPets:
		return 100
	case seekerHasPets && !candidateHasPets:
		if candidatePrefs.okWithPetsOrDefault() {
			return 85
		}
		return 20
	case !seekerHasPets && candidateHasPets:
		if seekerPrefs.okWithPetsOrDefault() {
			return 85
		}
		return 20
	default:
		return 90 // both have pets
	}
}

// ordinalDistanceScore rates two positions on an ordered scale: exact
// match 100, adjacent 80, further max(20, 100-25*distance). A missing or
// unrecognized value on either side is a neutral 50.
func ordinalDistanceScore(idx1, idx2 *int) float64 {
	if idx1 == nil || idx2 == nil {
		return 50
	}
	distance := *idx1 - *idx2
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return 100
	case 1:
		return 80
	default:
		score := 100 - float64(distance)*25
		if score < 20 {
			return 20
		}
		return score
	}
}

// indexOrNil converts a scale lookup to an optional index: -1 (unknown
// enum value) becomes nil so the comparison degrades to neutral.
func indexOrNil(idx int) *int {
	if idx < 0 {
		return nil
	}
	return &idx
}

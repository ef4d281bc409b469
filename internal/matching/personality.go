// internal/matching/personality.go
// Personality category: four independent axes (introvert/extrovert,
// early bird/night owl, neat/messy, quiet/talkative). An axis contributes
// only when at least one side carries a tag on it; per-axis weights are
// renormalized over the axes actually present. Tags are unconstrained in
// cardinality - a profile may hold contradictory tags and the scorer must
// not assume mutual exclusion.

package matching

func scorePersonality(seeker, candidate *Profile) (float64, []Explanation) {
	seekerTags := seeker.personality()
	candidateTags := candidate.personality()

	if len(seekerTags) == 0 && len(candidateTags) == 0 {
		return neutralPersonalityScore, []Explanation{{
			Category: "Personality",
			Reason:   "Personality traits not specified",
			Impact:   ImpactNeutral,
			Score:    neutralPersonalityScore,
		}}
	}

	var (
		scores       []float64
		weights      []float64
		explanations []Explanation
	)

	// 1. Introvert/Extrovert (weight 30).
	seekerIntro := seeker.hasPersonality(PersonalityIntrovert)
	seekerExtro := seeker.hasPersonality(PersonalityExtrovert)
	candIntro := candidate.hasPersonality(PersonalityIntrovert)
	candExtro := candidate.hasPersonality(PersonalityExtrovert)

	if seekerIntro || seekerExtro || candIntro || candExtro {
		switch {
		case seekerIntro && candIntro:
			scores = append(scores, 95)
			explanations = append(explanations, Explanation{
				Category: "Personality",
				Reason:   "Both introverts - will respect each other's space",
				Impact:   ImpactPositive,
				Score:    95,
			})
		case seekerExtro && candExtro:
			scores = append(scores, 90)
			explanations = append(explanations, Explanation{
				Category: "Personality",
				Reason:   "Both extroverts - great for socializing together",
				Impact:   ImpactPositive,
				Score:    90,
			})
		case (seekerIntro && candExtro) || (seekerExtro && candIntro):
			scores = append(scores, 55)
			explanations = append(explanations, Explanation{
				Category: "Personality",
				Reason:   "Introvert-extrovert mix may require adjustment",
				Impact:   ImpactNeutral,
				Score:    55,
			})
		default:
			scores = append(scores, 70)
		}
		weights = append(weights, 30)
	}

	// 2. Early bird/Night owl (weight 35) - affects daily life the most.
	seekerEarly := seeker.hasPersonality(PersonalityEarlyBird)
	seekerNight := seeker.hasPersonality(PersonalityNightOwl)
	candEarly := candidate.hasPersonality(PersonalityEarlyBird)
	candNight := candidate.hasPersonality(PersonalityNightOwl)

	if seekerEarly || seekerNight || candEarly || candNight {
		switch {
		case seekerEarly && candEarly:
			scores = append(scores, 100)
			explanations = append(explanations, Explanation{
				Category: "Personality",
				Reason:   "Both early birds - synchronized morning routines",
				Impact:   ImpactPositive,
				Score:    100,
			})
		case seekerNight && candNight:
			scores = append(scores, 100)
			explanations = append(explanations, Explanation{
				Category: "Personality",
				Reason:   "Both night owls - late night compatibility",
				Impact:   ImpactPositive,
				Score:    100,
			})
		case (seekerEarly && candNight) || (seekerNight && candEarly):
			scores = append(scores, 35)
			explanations = append(explanations, Explanation{
				Category: "Personality",
				Reason:   "Opposite sleep schedules - potential noise conflicts",
				Impact:   ImpactNegative,
				Score:    35,
			})
		default:
			scores = append(scores, 70)
		}
		weights = append(weights, 35)
	}

	// 3. Neat/Messy (weight 25).
	seekerNeat := seeker.hasPersonality(PersonalityNeat)
	seekerMessy := seeker.hasPersonality(PersonalityMessy)
	candNeat := candidate.hasPersonality(PersonalityNeat)
	candMessy := candidate.hasPersonality(PersonalityMessy)

	if seekerNeat || seekerMessy || candNeat || candMessy {
		switch {
		case seekerNeat && candNeat:
			scores = append(scores, 100)
			explanations = append(explanations, Explanation{
				Category: "Personality",
				Reason:   "Both value tidiness - clean shared spaces",
				Impact:   ImpactPositive,
				Score:    100,
			})
		case seekerMessy && candMessy:
			scores = append(scores, 85)
		case (seekerNeat && candMessy) || (seekerMessy && candNeat):
			scores = append(scores, 40)
			explanations = append(explanations, Explanation{
				Category: "Personality",
				Reason:   "Different tidiness standards - may cause tension",
				Impact:   ImpactNegative,
				Score:    40,
			})
		default:
			scores = append(scores, 70)
		}
		weights = append(weights, 25)
	}

	// 4. Quiet/Talkative (weight 10).
	seekerQuiet := seeker.hasPersonality(PersonalityQuiet)
	seekerTalk := seeker.hasPersonality(PersonalityTalkative)
	candQuiet := candidate.hasPersonality(PersonalityQuiet)
	candTalk := candidate.hasPersonality(PersonalityTalkative)

	if seekerQuiet || seekerTalk || candQuiet || candTalk {
		switch {
		case seekerQuiet && candQuiet:
			scores = append(scores, 90)
		case seekerTalk && candTalk:
			scores = append(scores, 85)
		case seekerQuiet && candTalk:
			scores = append(scores, 50)
			explanations = append(explanations, Explanation{
				Category: "Personality",
				Reason:   "Quiet-talkative mix - balance your communication styles",
				Impact:   ImpactNeutral,
				Score:    50,
			})
		case seekerTalk && candQuiet:
			scores = append(scores, 50)
		default:
			scores = append(scores, 70)
		}
		weights = append(weights, 10)
	}

	return weightedAverage(scores, weights, neutralPersonalityScore), explanations
}
